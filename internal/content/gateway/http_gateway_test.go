package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/gateway"
	"cms-console/internal/content/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   map[string]any
}

var _ = Describe("HTTPGateway", func() {
	const userID = domain.UserID("340282366920938463463374607431768211455")

	var (
		ctx      context.Context
		server   *httptest.Server
		recorded []recordedRequest
		status   int
		reply    string
		gw       *gateway.HTTPGateway
	)

	BeforeEach(func() {
		ctx = context.Background()
		recorded = nil
		status = http.StatusOK
		reply = ""

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request := recordedRequest{
				Method: r.Method,
				Path:   r.URL.Path,
				Query:  map[string]string{},
			}
			for key := range r.URL.Query() {
				request.Query[key] = r.URL.Query().Get(key)
			}
			payload, _ := io.ReadAll(r.Body)
			if len(payload) > 0 {
				_ = json.Unmarshal(payload, &request.Body)
			}
			recorded = append(recorded, request)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(reply))
		}))

		var err error
		gw, err = gateway.NewHTTPGateway(gateway.Config{BaseURL: server.URL})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	It("should require a base url", func() {
		_, err := gateway.NewHTTPGateway(gateway.Config{BaseURL: "not a url"})

		Expect(err).To(MatchError(gateway.ErrMissingBaseURL))
	})

	Context("Login", func() {
		It("should send the credentials as query parameters", func() {
			reply = `{"user_id": 340282366920938463463374607431768211455}`

			id, err := gw.Login(ctx, usecases.Credentials{Username: "ada", Password: "secret"})

			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(userID))
			Expect(recorded).To(HaveLen(1))
			Expect(recorded[0].Method).To(Equal(http.MethodPost))
			Expect(recorded[0].Path).To(Equal("/login"))
			Expect(recorded[0].Query).To(HaveKeyWithValue("username", "ada"))
			Expect(recorded[0].Query).To(HaveKeyWithValue("password", "secret"))
		})

		It("should surface the server message on rejection", func() {
			status = http.StatusBadRequest
			reply = `{"message": "wrong password"}`

			_, err := gw.Login(ctx, usecases.Credentials{Username: "ada", Password: "nope"})

			Expect(err).To(MatchError(usecases.ErrNetwork))
			Expect(usecases.ErrorMessage(err)).To(Equal("wrong password"))

			var gatewayErr *usecases.GatewayError
			Expect(errors.As(err, &gatewayErr)).To(BeTrue())
			Expect(gatewayErr.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("should treat a successful reply without user id as a failure", func() {
			reply = `{"message": "Internal Server Error"}`

			_, err := gw.Login(ctx, usecases.Credentials{Username: "ada", Password: "secret"})

			Expect(err).To(MatchError(usecases.ErrNetwork))
			Expect(usecases.ErrorMessage(err)).To(Equal("Internal Server Error"))
		})
	})

	Context("Register", func() {
		It("should fill in the default permissions", func() {
			reply = `{"user_id": 7}`

			id, err := gw.Register(ctx, usecases.Registration{Username: "ada", Password: "secret"})

			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(domain.UserID("7")))
			Expect(recorded[0].Path).To(Equal("/register"))
			Expect(recorded[0].Body).To(HaveKeyWithValue("username", "ada"))
			Expect(recorded[0].Body).To(HaveKey("permissions"))
			Expect(recorded[0].Body["permissions"]).To(HaveKeyWithValue("all collection permissions",
				map[string]any{"all": true}))
		})
	})

	Context("Logout", func() {
		It("should send the user id", func() {
			reply = `{"user_id": 7}`

			Expect(gw.Logout(ctx, "7")).To(Succeed())
			Expect(recorded[0].Method).To(Equal(http.MethodGet))
			Expect(recorded[0].Path).To(Equal("/logout"))
			Expect(recorded[0].Query).To(HaveKeyWithValue("user_id", "7"))
		})
	})

	Context("ListCollections", func() {
		It("should decode structured and schemaless collections", func() {
			reply = `{"collections": [
				{"users": {"structure": {
					"name": {"type": "string", "constraints": {"unique": true}},
					"age": {"type": "int", "constraints": {"nullable": true,
						"value constraint": {"order": ">", "value": {"data": 17, "type": "int"}}}}
				}}},
				{"notes": {"structure": null}}
			]}`

			collections, err := gw.ListCollections(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(collections).To(HaveLen(2))

			users := collections[0]
			Expect(users.Name).To(Equal("users"))
			Expect(users.Schemaless).To(BeFalse())
			Expect(users.FieldNames()).To(Equal([]string{"name", "age"}))
			Expect(users.Structure[0].IsUnique()).To(BeTrue())
			Expect(users.Structure[1].IsNullable()).To(BeTrue())
			Expect(users.Structure[1].ValueConstraints()).To(ConsistOf(
				domain.NewValueConstraint(domain.OrderGreater, "17", domain.FieldTypeInt),
			))

			Expect(collections[1].Name).To(Equal("notes"))
			Expect(collections[1].Schemaless).To(BeTrue())
		})

		It("should skip collections whose structure cannot be read", func() {
			reply = `{"collections": [
				{"broken": {"structure": {"x": {"type": "matrix", "constraints": {}}}}},
				{"notes": {"structure": null}}
			]}`

			collections, err := gw.ListCollections(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(collections).To(HaveLen(1))
			Expect(collections[0].Name).To(Equal("notes"))
		})

		It("should not let a cancelled caller fail the shared listing", func() {
			reply = `{"collections": [{"notes": {"structure": null}}]}`
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			collections, err := gw.ListCollections(cancelled)

			Expect(err).NotTo(HaveOccurred())
			Expect(collections).To(HaveLen(1))
		})

		It("should finish a listing whose caller goes away mid-flight", func() {
			arrived := make(chan struct{})
			release := make(chan struct{})
			slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-arrived:
				default:
					close(arrived)
				}
				<-release
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"collections": [{"notes": {"structure": null}}]}`))
			}))
			defer slow.Close()
			slowGateway, err := gateway.NewHTTPGateway(gateway.Config{BaseURL: slow.URL})
			Expect(err).NotTo(HaveOccurred())

			leaving, cancel := context.WithCancel(ctx)
			done := make(chan error, 1)
			go func() {
				_, err := slowGateway.ListCollections(leaving)
				done <- err
			}()
			Eventually(arrived).Should(BeClosed())
			cancel()
			close(release)

			Eventually(done).Should(Receive(BeNil()))
			collections, err := slowGateway.ListCollections(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(collections).To(HaveLen(1))
		})

		It("should wrap transport failures", func() {
			server.Close()

			_, err := gw.ListCollections(ctx)

			Expect(err).To(MatchError(usecases.ErrNetwork))
		})
	})

	Context("CreateCollection", func() {
		It("should post the payload for the user", func() {
			collection, err := domain.NewCollectionBuilder().
				WithName("users").
				WithField(domain.CollectionField{
					Name:        "name",
					Type:        domain.FieldTypeString,
					Constraints: []domain.Constraint{domain.UniqueConstraint()},
				}).
				Build()
			Expect(err).NotTo(HaveOccurred())
			payload, err := domain.NewCreateCollectionPayload(collection)
			Expect(err).NotTo(HaveOccurred())

			Expect(gw.CreateCollection(ctx, userID, payload)).To(Succeed())

			Expect(recorded[0].Path).To(Equal("/create_new_collection"))
			Expect(recorded[0].Query).To(HaveKeyWithValue("user_id", userID.String()))
			Expect(recorded[0].Body).To(HaveKeyWithValue("collection_name", "users"))
			Expect(recorded[0].Body).To(HaveKeyWithValue("collection_structure", map[string]any{
				"name": map[string]any{
					"type":        "string",
					"constraints": map[string]any{"unique": true},
				},
			}))
		})
	})

	Context("records", func() {
		It("should list documents keeping numbers exact", func() {
			reply = `{"documents": [{"document_name": "ada", "data": {"age": 36, "tags": ["a"]}}]}`

			records, err := gw.ListRecords(ctx, userID, "users")

			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Name).To(Equal("ada"))
			Expect(records[0].Data).To(HaveKeyWithValue("age", json.Number("36")))
			Expect(recorded[0].Query).To(HaveKeyWithValue("collection_name", "users"))
		})

		It("should insert with POST and update with PUT", func() {
			record := domain.RawRecord{Name: "ada", Data: map[string]any{"age": int64(36)}}

			Expect(gw.InsertRecord(ctx, userID, "users", record)).To(Succeed())
			Expect(gw.UpdateRecord(ctx, userID, "users", record)).To(Succeed())

			Expect(recorded).To(HaveLen(2))
			Expect(recorded[0].Method).To(Equal(http.MethodPost))
			Expect(recorded[1].Method).To(Equal(http.MethodPut))
			Expect(recorded[1].Body).To(HaveKeyWithValue("document_name", "ada"))
			Expect(recorded[1].Body).To(HaveKeyWithValue("data", map[string]any{"age": float64(36)}))
		})

		It("should report missing documents as not found", func() {
			status = http.StatusNotFound
			reply = `{"message": "document not found"}`

			err := gw.DeleteRecord(ctx, userID, "users", "ghost")

			Expect(err).To(MatchError(usecases.ErrRecordNotFound))
			Expect(err).To(MatchError(usecases.ErrNetwork))
			Expect(recorded[0].Method).To(Equal(http.MethodDelete))
			Expect(recorded[0].Query).To(HaveKeyWithValue("document_name", "ghost"))
		})
	})
})
