package usecases_test

import (
	"context"
	"encoding/json"
	"errors"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/persistence"
	"cms-console/internal/content/state"
	"cms-console/internal/content/usecases"
	mockusecases "cms-console/test/unit/doubles/content/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("RecordService", func() {
	var (
		ctx         context.Context
		ctrl        *gomock.Controller
		gateway     *mockusecases.MockRecordGateway
		collections *mockusecases.MockCollectionService
		store       *persistence.CacheStateStore
		service     *usecases.SimpleRecordService
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		gateway = mockusecases.NewMockRecordGateway(ctrl)
		collections = mockusecases.NewMockCollectionService(ctrl)
		store = newStore()
		logIn(ctx, store)
		service = usecases.NewRecordService(gateway, collections, store)

		collections.EXPECT().GetCollection(gomock.Any(), testUserID, "users").Return(usersCollection(), nil).AnyTimes()
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.It("should propagate a missing collection", func() {
		collections.EXPECT().GetCollection(gomock.Any(), testUserID, "ghost").Return(domain.Collection{}, usecases.ErrSchemaNotFound)

		_, err := service.ListRecords(ctx, testUserID, "ghost")

		gomega.Expect(err).To(gomega.MatchError(usecases.ErrSchemaNotFound))
	})

	ginkgo.Context("ListRecords", func() {
		ginkgo.It("should classify documents against the structure", func() {
			gateway.EXPECT().ListRecords(gomock.Any(), testUserID, "users").Return([]domain.RawRecord{
				{Name: "ada", Data: map[string]any{
					"name":    "Ada",
					"age":     json.Number("36"),
					"hobbies": []any{"math"},
				}},
			}, nil)

			records, err := service.ListRecords(ctx, testUserID, "users")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(records).To(gomega.HaveLen(1))
			gomega.Expect(records[0].KnownFields).To(gomega.HaveKeyWithValue("age", domain.KnownField{
				Type:     domain.FieldTypeInt,
				Value:    "36",
				Nullable: true,
			}))
			gomega.Expect(records[0].UnknownFields).To(gomega.Equal(map[string]string{"hobbies": `["math"]`}))

			cached, ok := currentState(ctx, store).RecordsOf("users")
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(cached).To(gomega.HaveLen(1))
		})

		ginkgo.It("should record a failed listing", func() {
			gateway.EXPECT().ListRecords(gomock.Any(), testUserID, "users").
				Return(nil, errors.Join(usecases.ErrNetwork, &usecases.GatewayError{StatusCode: 400, Message: "no permission"}))

			_, err := service.ListRecords(ctx, testUserID, "users")

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrNetwork))
			current := currentState(ctx, store)
			gomega.Expect(current.RecordsStatus).To(gomega.Equal(state.Resource{Status: state.StatusError, Error: "no permission"}))
			gomega.Expect(current.RecordsCollection).To(gomega.Equal("users"))
		})
	})

	ginkgo.Context("NewRecord", func() {
		ginkgo.It("should create a blank record from the structure", func() {
			record, err := service.NewRecord(ctx, testUserID, "users", "grace")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.FieldNames()).To(gomega.Equal([]string{"age", "name"}))
			gomega.Expect(record.KnownFields["age"].Value).To(gomega.BeEmpty())
		})

		ginkgo.It("should require a name", func() {
			_, err := service.NewRecord(ctx, testUserID, "users", " ")

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrInvalidRecord))
		})
	})

	ginkgo.Context("ValidateRecord", func() {
		ginkgo.It("should report a reason per invalid field", func() {
			fieldErrors, err := service.ValidateRecord(ctx, testUserID, "users", usecases.RecordInput{
				Name:   "ada",
				Values: map[string]string{"name": "", "age": "3.5", "note": "anything"},
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fieldErrors.Fields()).To(gomega.Equal([]string{"age", "name"}))
			gomega.Expect(fieldErrors["age"]).To(gomega.MatchError(domain.ErrInvalidInt))
			gomega.Expect(fieldErrors["name"]).To(gomega.MatchError(domain.ErrInvalidString))
		})

		ginkgo.It("should check value constraints after the type", func() {
			fieldErrors, err := service.ValidateRecord(ctx, testUserID, "users", usecases.RecordInput{
				Name:   "kid",
				Values: map[string]string{"name": "Tim", "age": "12"},
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fieldErrors).To(gomega.HaveKey("age"))
			gomega.Expect(fieldErrors["age"]).To(gomega.MatchError(domain.ErrValueConstraintViolated))
		})

		ginkgo.It("should accept null on nullable fields", func() {
			fieldErrors, err := service.ValidateRecord(ctx, testUserID, "users", usecases.RecordInput{
				Name:   "ada",
				Values: map[string]string{"name": "Ada", "age": "null"},
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fieldErrors).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("SaveRecord", func() {
		ginkgo.It("should convert known fields and keep extra fields as text", func() {
			gateway.EXPECT().UpdateRecord(gomock.Any(), testUserID, "users", domain.RawRecord{
				Name: "ada",
				Data: map[string]any{"name": "Ada", "age": int64(36), "note": "42"},
			}).Return(nil)

			record, err := service.SaveRecord(ctx, testUserID, "users", usecases.RecordInput{
				Name:   "ada",
				Values: map[string]string{"name": "Ada", "age": "36", "note": "42"},
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.UnknownFields).To(gomega.HaveKeyWithValue("note", "42"))
			gomega.Expect(currentState(ctx, store).UpdateRecord.Status).To(gomega.Equal(state.StatusComplete))
		})

		ginkgo.It("should insert new records and send null for null-like values", func() {
			gateway.EXPECT().InsertRecord(gomock.Any(), testUserID, "users", domain.RawRecord{
				Name: "grace",
				Data: map[string]any{"name": "Grace", "age": nil},
			}).Return(nil)

			_, err := service.SaveRecord(ctx, testUserID, "users", usecases.RecordInput{
				Name:   "grace",
				Values: map[string]string{"name": "Grace", "age": ""},
				Create: true,
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should not call the service with invalid values", func() {
			_, err := service.SaveRecord(ctx, testUserID, "users", usecases.RecordInput{
				Name:   "ada",
				Values: map[string]string{"name": "Ada", "age": "old"},
			})

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrInvalidRecord))

			var fieldErrors domain.FieldErrors
			gomega.Expect(errors.As(err, &fieldErrors)).To(gomega.BeTrue())
			gomega.Expect(fieldErrors.Fields()).To(gomega.Equal([]string{"age"}))
		})

		ginkgo.It("should require a record name", func() {
			_, err := service.SaveRecord(ctx, testUserID, "users", usecases.RecordInput{})

			gomega.Expect(err).To(gomega.MatchError(domain.ErrEmptyRecordName))
		})

		ginkgo.It("should record a rejected update", func() {
			gateway.EXPECT().UpdateRecord(gomock.Any(), testUserID, "users", gomock.Any()).
				Return(errors.Join(usecases.ErrNetwork, &usecases.GatewayError{StatusCode: 400, Message: "unique violated"}))

			_, err := service.SaveRecord(ctx, testUserID, "users", usecases.RecordInput{
				Name:   "ada",
				Values: map[string]string{"name": "Ada"},
			})

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrNetwork))
			gomega.Expect(currentState(ctx, store).UpdateRecord.Error).To(gomega.Equal("unique violated"))
		})
	})

	ginkgo.Context("DeleteRecord", func() {
		ginkgo.It("should remove the record from the cached listing", func() {
			gateway.EXPECT().ListRecords(gomock.Any(), testUserID, "users").Return([]domain.RawRecord{
				{Name: "ada", Data: map[string]any{"name": "Ada"}},
				{Name: "grace", Data: map[string]any{"name": "Grace"}},
			}, nil)
			gateway.EXPECT().DeleteRecord(gomock.Any(), testUserID, "users", "ada").Return(nil)

			_, err := service.ListRecords(ctx, testUserID, "users")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(service.DeleteRecord(ctx, testUserID, "users", "ada")).To(gomega.Succeed())

			cached, ok := currentState(ctx, store).RecordsOf("users")
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(cached).To(gomega.HaveLen(1))
			gomega.Expect(cached[0].Name).To(gomega.Equal("grace"))
		})

		ginkgo.It("should pass not found through", func() {
			gateway.EXPECT().DeleteRecord(gomock.Any(), testUserID, "users", "ghost").Return(usecases.ErrRecordNotFound)

			err := service.DeleteRecord(ctx, testUserID, "users", "ghost")

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRecordNotFound))
		})
	})
})
