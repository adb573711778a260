package httpapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/httpapi"
	"cms-console/internal/content/usecases"
	mockusecases "cms-console/test/unit/doubles/content/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CollectionController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockCollectionService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		users       domain.Collection
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockCollectionService(ctrl)
		router = http.NewServeMux()
		httpapi.NewCollectionController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()

		users = domain.Collection{
			Name: "users",
			Structure: []domain.CollectionField{
				{Name: "name", Type: domain.FieldTypeString, Constraints: []domain.Constraint{domain.UniqueConstraint()}},
				{Name: "age", Type: domain.FieldTypeInt, Constraints: []domain.Constraint{
					domain.NewValueConstraint(domain.OrderGreater, "17", domain.FieldTypeInt),
				}},
			},
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should require the user header", func() {
		request := httptest.NewRequest("GET", "/v1/collections", nil)
		router.ServeHTTP(recorder, request)

		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
	})

	Context("listCollections", func() {
		It("should render fields in structure order with display constraints", func() {
			mockService.EXPECT().ListCollections(gomock.Any(), domain.UserID("7")).Return([]domain.Collection{users}, nil)

			request := httptest.NewRequest("GET", "/v1/collections", nil)
			request.Header.Set(userHeader, "7")
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"data": [{
				"name": "users",
				"schemaless": false,
				"fields": [
					{"name": "name", "type": "String", "display_type": "String", "nullable": false, "unique": true, "any": false, "constraints": ["Unique"]},
					{"name": "age", "type": "Int", "display_type": "Int", "nullable": false, "unique": false, "any": false, "constraints": [" > 17 Int"]}
				]
			}]}`))
		})
	})

	Context("getCollection", func() {
		It("should answer 404 for unknown collections", func() {
			mockService.EXPECT().GetCollection(gomock.Any(), domain.UserID("7"), "ghost").
				Return(domain.Collection{}, usecases.ErrSchemaNotFound)

			request := httptest.NewRequest("GET", "/v1/collections/ghost", nil)
			request.Header.Set(userHeader, "7")
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("createCollection", func() {
		It("should pass the draft to the service", func() {
			expected := domain.CollectionDraft{
				Name: "users",
				Fields: []domain.FieldDraft{{
					Name:             "age",
					Type:             "Int",
					Flags:            []string{"Nullable"},
					ValueConstraints: []domain.ValueConstraintDraft{{Order: ">", Value: "17"}},
				}},
			}
			mockService.EXPECT().CreateCollection(gomock.Any(), domain.UserID("7"), expected).Return(users, nil)

			body := `{"name": "users", "fields": [{"name": "age", "type": "Int", "flags": ["Nullable"],
				"value_constraints": [{"order": ">", "value": "17"}]}]}`
			request := httptest.NewRequest("POST", "/v1/collections", strings.NewReader(body))
			request.Header.Set(userHeader, "7")
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})

		It("should reject unknown orders before calling the service", func() {
			body := `{"name": "users", "fields": [{"name": "age", "type": "Int",
				"value_constraints": [{"order": ">=", "value": "17"}]}]}`
			request := httptest.NewRequest("POST", "/v1/collections", strings.NewReader(body))
			request.Header.Set(userHeader, "7")
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring(`fields[0].value_constraints[0].order`))
		})

		It("should answer 400 for drafts the domain rejects", func() {
			mockService.EXPECT().CreateCollection(gomock.Any(), domain.UserID("7"), gomock.Any()).
				Return(domain.Collection{}, errors.Join(usecases.ErrInvalidCollection, domain.ErrDuplicateFieldName))

			body := `{"name": "users", "fields": [{"name": "a", "type": "Int"}, {"name": "a", "type": "Int"}]}`
			request := httptest.NewRequest("POST", "/v1/collections", strings.NewReader(body))
			request.Header.Set(userHeader, "7")
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
