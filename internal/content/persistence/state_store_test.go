package persistence_test

import (
	"context"
	"sync"
	"time"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/persistence"
	"cms-console/internal/content/state"
	"cms-console/internal/infra/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CacheStateStore", func() {
	const userID = domain.UserID("340282366920938463463374607431768211455")

	var (
		ctx     context.Context
		backend *cache.RistrettoCache
		store   *persistence.CacheStateStore
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		backend, err = cache.New(nil)
		Expect(err).NotTo(HaveOccurred())

		store, err = persistence.NewCacheStateStore(&persistence.CacheStateStoreConfig{
			Cache:     backend,
			KeyPrefix: "console:state:",
			TTL:       time.Hour,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		backend.Close()
	})

	It("should require a cache", func() {
		_, err := persistence.NewCacheStateStore(&persistence.CacheStateStoreConfig{})

		Expect(err).To(HaveOccurred())
	})

	It("should return a fresh state for unknown users", func() {
		current, err := store.Snapshot(ctx, userID)

		Expect(err).NotTo(HaveOccurred())
		Expect(current).To(Equal(state.New()))
	})

	It("should persist dispatched actions", func() {
		collection := domain.Collection{
			Name: "users",
			Structure: []domain.CollectionField{{
				Name: "age",
				Type: domain.FieldTypeInt,
				Constraints: []domain.Constraint{
					domain.NullableConstraint(),
					domain.NewValueConstraint(domain.OrderGreater, "17", domain.FieldTypeInt),
				},
			}},
		}
		record := domain.Record{
			Name:          "r1",
			KnownFields:   map[string]domain.KnownField{"age": {Type: domain.FieldTypeInt, Value: "21", Nullable: true}},
			UnknownFields: map[string]string{"nick": "bob"},
		}

		_, err := store.Dispatch(ctx, userID, state.SessionStarted{User: domain.User{ID: userID, Username: "ada"}})
		Expect(err).NotTo(HaveOccurred())
		_, err = store.Dispatch(ctx, userID, state.CollectionsLoaded{Collections: []domain.Collection{collection}})
		Expect(err).NotTo(HaveOccurred())
		dispatched, err := store.Dispatch(ctx, userID, state.RecordsLoaded{Collection: "users", Records: []domain.Record{record}})
		Expect(err).NotTo(HaveOccurred())

		current, err := store.Snapshot(ctx, userID)

		Expect(err).NotTo(HaveOccurred())
		Expect(current).To(Equal(dispatched))
		Expect(current.User.Username).To(Equal("ada"))
		Expect(current.Collections).To(Equal([]domain.Collection{collection}))
		Expect(current.Records).To(Equal([]domain.Record{record}))
	})

	It("should keep schemaless collections apart from empty ones", func() {
		collections := []domain.Collection{
			{Name: "logs", Schemaless: true},
			{Name: "empty", Structure: []domain.CollectionField{}},
		}

		_, err := store.Dispatch(ctx, userID, state.CollectionsLoaded{Collections: collections})
		Expect(err).NotTo(HaveOccurred())

		current, err := store.Snapshot(ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		logs, _ := current.Collection("logs")
		empty, _ := current.Collection("empty")
		Expect(logs.Schemaless).To(BeTrue())
		Expect(empty.Schemaless).To(BeFalse())
	})

	It("should forget discarded sessions", func() {
		_, err := store.Dispatch(ctx, userID, state.SessionStarted{User: domain.User{ID: userID}})
		Expect(err).NotTo(HaveOccurred())

		Expect(store.Discard(ctx, userID)).To(Succeed())

		current, err := store.Snapshot(ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(current.IsAuthenticated()).To(BeFalse())
	})

	It("should not lose concurrent updates of the same user", func() {
		_, err := store.Dispatch(ctx, userID, state.RecordsLoaded{Collection: "users"})
		Expect(err).NotTo(HaveOccurred())

		var wg sync.WaitGroup
		for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				defer GinkgoRecover()
				_, err := store.Dispatch(ctx, userID, state.RecordSaved{Collection: "users", Record: domain.Record{Name: name}})
				Expect(err).NotTo(HaveOccurred())
			}(name)
		}
		wg.Wait()

		current, err := store.Snapshot(ctx, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(current.Records).To(HaveLen(8))
	})

	It("should fail when the state cannot be stored", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Dispatch(cancelled, userID, state.CollectionsRequested{})

		Expect(err).To(MatchError(persistence.ErrStateNotStored))
	})

	It("should reject values it did not write", func() {
		backend.Set(ctx, "console:state:"+userID.String(), "not msgpack", time.Hour)

		_, err := store.Snapshot(ctx, userID)

		Expect(err).To(MatchError(persistence.ErrCorruptedState))
	})
})
