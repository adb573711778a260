package domain_test

import (
	"encoding/json"

	"cms-console/internal/content/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Create collection payload", func() {
	Context("BuildWirePayload", func() {
		It("should produce an empty structure when there are no fields", func() {
			payload, err := domain.BuildWirePayload("users", nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(payload.CollectionName).To(Equal("users"))
			Expect(payload.CollectionStructure).NotTo(BeNil())
			Expect(*payload.CollectionStructure).To(BeEmpty())

			encoded, err := json.Marshal(payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(encoded).To(MatchJSON(`{"collection_name":"users","collection_structure":{}}`))
		})

		It("should write lowercase types and structured constraints", func() {
			payload, err := domain.BuildWirePayload("users", []domain.CollectionField{
				{Name: "email", Type: domain.FieldTypeString, Constraints: []domain.Constraint{domain.UniqueConstraint()}},
				{Name: "age", Type: domain.FieldTypeInt, Constraints: []domain.Constraint{
					domain.NullableConstraint(),
					domain.NewValueConstraint(domain.OrderGreater, "17", domain.FieldTypeInt),
				}},
			})
			Expect(err).NotTo(HaveOccurred())

			encoded, err := json.Marshal(payload)

			Expect(err).NotTo(HaveOccurred())
			Expect(encoded).To(MatchJSON(`{
				"collection_name": "users",
				"collection_structure": {
					"email": {"type": "string", "constraints": {"unique": true}},
					"age": {"type": "int", "constraints": {
						"nullable": true,
						"value constraint": {"order": ">", "value": {"data": "17", "type": "int"}}
					}}
				}
			}`))
		})

		It("should not deduplicate field names", func() {
			payload, err := domain.BuildWirePayload("users", []domain.CollectionField{
				{Name: "email", Type: domain.FieldTypeString},
				{Name: "email", Type: domain.FieldTypeInt},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(*payload.CollectionStructure).To(HaveLen(1))
			Expect((*payload.CollectionStructure)["email"].Type).To(Equal("int"))
		})
	})

	Context("NewCreateCollectionPayload", func() {
		It("should omit the structure for a schemaless collection", func() {
			collection, err := domain.NewCollectionBuilder().WithName("logs").Schemaless().Build()
			Expect(err).NotTo(HaveOccurred())

			payload, err := domain.NewCreateCollectionPayload(collection)

			Expect(err).NotTo(HaveOccurred())
			Expect(payload.CollectionStructure).To(BeNil())
			encoded, err := json.Marshal(payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(encoded).To(MatchJSON(`{"collection_name":"logs"}`))
		})

		It("should keep an empty structure for a structured collection without fields", func() {
			collection, err := domain.NewCollectionBuilder().WithName("logs").Build()
			Expect(err).NotTo(HaveOccurred())

			payload, err := domain.NewCreateCollectionPayload(collection)

			Expect(err).NotTo(HaveOccurred())
			Expect(payload.CollectionStructure).NotTo(BeNil())
			Expect(*payload.CollectionStructure).To(BeEmpty())
		})
	})
})
