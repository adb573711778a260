package state_test

import (
	"cms-console/internal/content/domain"
	"cms-console/internal/content/state"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reduce", func() {
	var current state.ConsoleState

	BeforeEach(func() {
		current = state.Reduce(state.New(), state.SessionStarted{User: domain.User{ID: "42", Username: "ada"}})
	})

	Context("session", func() {
		It("should start with every resource idle", func() {
			initial := state.New()

			Expect(initial.Session.IsIdle()).To(BeTrue())
			Expect(initial.CollectionsStatus.IsIdle()).To(BeTrue())
			Expect(initial.RecordsStatus.IsIdle()).To(BeTrue())
			Expect(initial.IsAuthenticated()).To(BeFalse())
		})

		It("should remember the user on login", func() {
			Expect(current.IsAuthenticated()).To(BeTrue())
			Expect(current.User.Username).To(Equal("ada"))
			Expect(current.Session.Status).To(Equal(state.StatusComplete))
		})

		It("should drop everything on logout", func() {
			current = state.Reduce(current, state.CollectionsLoaded{Collections: []domain.Collection{{Name: "users"}}})

			next := state.Reduce(current, state.SessionEnded{})

			Expect(next).To(Equal(state.New()))
		})
	})

	Context("collections", func() {
		It("should move through loading to complete", func() {
			loading := state.Reduce(current, state.CollectionsRequested{})
			Expect(loading.CollectionsStatus.Status).To(Equal(state.StatusLoading))

			loaded := state.Reduce(loading, state.CollectionsLoaded{})
			Expect(loaded.CollectionsStatus.Status).To(Equal(state.StatusComplete))
			Expect(loaded.Collections).NotTo(BeNil())
			Expect(loaded.Collections).To(BeEmpty())
		})

		It("should keep the collections when loading fails", func() {
			current = state.Reduce(current, state.CollectionsLoaded{Collections: []domain.Collection{{Name: "users"}}})

			next := state.Reduce(current, state.CollectionsFailed{Message: "boom"})

			Expect(next.CollectionsStatus).To(Equal(state.Resource{Status: state.StatusError, Error: "boom"}))
			Expect(next.Collections).To(HaveLen(1))
		})

		It("should add a created collection only to a loaded listing", func() {
			created := domain.Collection{Name: "logs", Schemaless: true}

			notLoaded := state.Reduce(current, state.CollectionAdded{Collection: created})
			Expect(notLoaded.Collections).To(BeNil())
			Expect(notLoaded.CreateCollection.IsComplete()).To(BeTrue())

			loaded := state.Reduce(current, state.CollectionsLoaded{Collections: []domain.Collection{{Name: "users"}}})
			next := state.Reduce(loaded, state.CollectionAdded{Collection: created})
			Expect(next.Collections).To(HaveLen(2))
			Expect(loaded.Collections).To(HaveLen(1))

			found, ok := next.Collection("logs")
			Expect(ok).To(BeTrue())
			Expect(found.Schemaless).To(BeTrue())
		})
	})

	Context("records", func() {
		records := []domain.Record{{Name: "r1"}, {Name: "r2"}}

		BeforeEach(func() {
			current = state.Reduce(current, state.RecordsRequested{Collection: "users"})
			current = state.Reduce(current, state.RecordsLoaded{Collection: "users", Records: records})
		})

		It("should expose records only for the collection they were loaded for", func() {
			loaded, ok := current.RecordsOf("users")
			Expect(ok).To(BeTrue())
			Expect(loaded).To(HaveLen(2))

			_, ok = current.RecordsOf("orders")
			Expect(ok).To(BeFalse())
		})

		It("should clear records when another collection is requested", func() {
			next := state.Reduce(current, state.RecordsRequested{Collection: "orders"})

			Expect(next.Records).To(BeNil())
			Expect(next.RecordsStatus.Status).To(Equal(state.StatusLoading))
		})

		It("should replace a saved record and append a new one", func() {
			updated := domain.Record{Name: "r1", UnknownFields: map[string]string{"a": "b"}}

			next := state.Reduce(current, state.RecordSaved{Collection: "users", Record: updated})
			next = state.Reduce(next, state.RecordSaved{Collection: "users", Record: domain.Record{Name: "r3"}})

			Expect(next.Records).To(HaveLen(3))
			record, ok := next.Record("users", "r1")
			Expect(ok).To(BeTrue())
			Expect(record.UnknownFields).To(HaveKeyWithValue("a", "b"))
			Expect(current.Records[0].UnknownFields).To(BeNil())
		})

		It("should remove a deleted record", func() {
			next := state.Reduce(current, state.RecordRemoved{Collection: "users", Name: "r1"})

			Expect(next.Records).To(HaveLen(1))
			Expect(current.Records).To(HaveLen(2))
		})

		It("should record update failures without touching the records", func() {
			next := state.Reduce(current, state.RecordUpdateFailed{Message: "conflict"})

			Expect(next.UpdateRecord.Status).To(Equal(state.StatusError))
			Expect(next.UpdateRecord.Error).To(Equal("conflict"))
			Expect(next.Records).To(Equal(current.Records))
		})
	})
})
