package domain_test

import (
	"cms-console/internal/content/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RecordValidator", func() {
	Context("IsValid", func() {
		DescribeTable("empty values",
			func(fieldType domain.FieldType) {
				Expect(domain.IsValid("", fieldType, true, false)).To(BeTrue())
				Expect(domain.IsValid("", fieldType, false, false)).To(BeFalse())
			},
			Entry("string", domain.FieldTypeString),
			Entry("int", domain.FieldTypeInt),
			Entry("float", domain.FieldTypeFloat),
			Entry("bool", domain.FieldTypeBool),
			Entry("array", domain.FieldTypeArray),
			Entry("object", domain.FieldTypeObject),
		)

		DescribeTable("the any escape hatch",
			func(value string, fieldType domain.FieldType) {
				Expect(domain.IsValid(value, fieldType, false, true)).To(BeTrue())
			},
			Entry("text in an int", "abc", domain.FieldTypeInt),
			Entry("empty string", "", domain.FieldTypeString),
			Entry("unbalanced array", "[1,", domain.FieldTypeArray),
			Entry("number in a bool", "1", domain.FieldTypeBool),
		)

		It("should accept integral values and reject fractions for int fields", func() {
			Expect(domain.IsValid("12", domain.FieldTypeInt, false, false)).To(BeTrue())
			Expect(domain.IsValid("12.5", domain.FieldTypeInt, false, false)).To(BeFalse())
			Expect(domain.Validate("12.5", domain.FieldTypeInt, false, false)).To(MatchError(domain.ErrInvalidInt))
		})

		It("should only check brackets for arrays", func() {
			Expect(domain.IsValid("[1,2,3", domain.FieldTypeArray, false, false)).To(BeFalse())
			Expect(domain.IsValid("[1,2,3]", domain.FieldTypeArray, false, false)).To(BeTrue())
			Expect(domain.IsValid("[1,,]", domain.FieldTypeArray, false, false)).To(BeTrue())
			Expect(domain.Validate("1,2", domain.FieldTypeArray, false, false)).To(MatchError(domain.ErrMalformedJSON))
		})

		It("should only check braces for objects", func() {
			Expect(domain.IsValid(` {"a": 1} `, domain.FieldTypeObject, false, false)).To(BeTrue())
			Expect(domain.IsValid(`[]`, domain.FieldTypeObject, false, false)).To(BeFalse())
		})

		It("should accept integers beyond the int64 range", func() {
			Expect(domain.IsValid("10000000000000000000", domain.FieldTypeInt, false, false)).To(BeTrue())
			Expect(domain.IsValid("-1e19", domain.FieldTypeInt, false, false)).To(BeTrue())
		})

		It("should accept null-like values on nullable fields only", func() {
			Expect(domain.IsValid("NULL", domain.FieldTypeInt, true, false)).To(BeTrue())
			Expect(domain.IsValid("null", domain.FieldTypeInt, false, false)).To(BeFalse())
		})

		It("should reject a type-invalid value on a nullable field", func() {
			Expect(domain.Validate("abc", domain.FieldTypeFloat, true, false)).To(MatchError(domain.ErrInvalidFloat))
		})

		It("should accept bools in any casing", func() {
			Expect(domain.IsValid("True", domain.FieldTypeBool, false, false)).To(BeTrue())
			Expect(domain.Validate("yes", domain.FieldTypeBool, false, false)).To(MatchError(domain.ErrInvalidBool))
		})
	})

	Context("CheckValueConstraint", func() {
		ageField := domain.CollectionField{
			Name: "age",
			Type: domain.FieldTypeInt,
			Constraints: []domain.Constraint{
				domain.NullableConstraint(),
				domain.NewValueConstraint(domain.OrderGreater, "17", domain.FieldTypeInt),
			},
		}

		It("should compare numbers numerically", func() {
			Expect(domain.CheckValueConstraint(ageField, "18")).To(Succeed())
			Expect(domain.CheckValueConstraint(ageField, "17")).To(MatchError(domain.ErrValueConstraintViolated))
			Expect(domain.CheckValueConstraint(ageField, "10000000000000000000")).To(Succeed())
			Expect(domain.CheckValueConstraint(ageField, "9")).To(MatchError(domain.ErrValueConstraintViolated))
		})

		It("should skip null-like values on nullable fields", func() {
			Expect(domain.CheckValueConstraint(ageField, "")).To(Succeed())
		})

		It("should compare strings lexically", func() {
			field := domain.CollectionField{
				Name:        "code",
				Type:        domain.FieldTypeString,
				Constraints: []domain.Constraint{domain.NewValueConstraint(domain.OrderLess, "m", domain.FieldTypeString)},
			}

			Expect(domain.CheckValueConstraint(field, "apple")).To(Succeed())
			Expect(domain.CheckValueConstraint(field, "zebra")).To(MatchError(domain.ErrValueConstraintViolated))
		})

		It("should compare bools for equality whatever the order", func() {
			field := domain.CollectionField{
				Name:        "active",
				Type:        domain.FieldTypeBool,
				Constraints: []domain.Constraint{domain.NewValueConstraint(domain.OrderGreater, "true", domain.FieldTypeBool)},
			}

			Expect(domain.CheckValueConstraint(field, "TRUE")).To(Succeed())
			Expect(domain.CheckValueConstraint(field, "false")).To(MatchError(domain.ErrValueConstraintViolated))
		})

		It("should compare floats against int operands", func() {
			field := domain.CollectionField{
				Name:        "ratio",
				Type:        domain.FieldTypeFloat,
				Constraints: []domain.Constraint{domain.NewValueConstraint(domain.OrderEqual, "2", domain.FieldTypeInt)},
			}

			Expect(domain.CheckValueConstraint(field, "2.0")).To(Succeed())
			Expect(domain.CheckValueConstraint(field, "2.5")).To(MatchError(domain.ErrValueConstraintViolated))
		})
	})

	Context("ValidateRecord", func() {
		It("should collect a reason per invalid field", func() {
			collection := domain.Collection{Name: "users", Structure: []domain.CollectionField{
				{Name: "age", Type: domain.FieldTypeInt, Constraints: []domain.Constraint{
					domain.NewValueConstraint(domain.OrderGreater, "17", domain.FieldTypeInt),
				}},
				{Name: "score", Type: domain.FieldTypeFloat},
				{Name: "email", Type: domain.FieldTypeString},
			}}
			record := domain.Record{
				Name: "r1",
				KnownFields: map[string]domain.KnownField{
					"age":   {Type: domain.FieldTypeInt, Value: "12"},
					"score": {Type: domain.FieldTypeFloat, Value: "high"},
					"email": {Type: domain.FieldTypeString, Value: "a@b.com"},
				},
			}

			errs := domain.ValidateRecord(record, collection)

			Expect(errs.Fields()).To(Equal([]string{"age", "score"}))
			Expect(errs["age"]).To(MatchError(domain.ErrValueConstraintViolated))
			Expect(errs["score"]).To(MatchError(domain.ErrInvalidFloat))
			Expect(errs).To(MatchError(domain.ErrInvalidFloat))
			Expect(errs.Error()).To(ContainSubstring("score: value is not a float"))
		})

		It("should return no errors for a valid record", func() {
			record := domain.Record{KnownFields: map[string]domain.KnownField{
				"note": {Type: domain.FieldTypeString, Value: "", Nullable: true},
			}}

			Expect(domain.ValidateRecord(record, domain.Collection{})).To(BeEmpty())
		})
	})
})
