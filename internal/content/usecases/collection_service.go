package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/state"
)

func NewCollectionService(gateway CollectionGateway, store StateStore) *SimpleCollectionService {
	return &SimpleCollectionService{
		gateway: gateway,
		store:   store,
	}
}

var _ CollectionService = &SimpleCollectionService{}

type SimpleCollectionService struct {
	gateway CollectionGateway
	store   StateStore
}

func (s *SimpleCollectionService) ListCollections(ctx context.Context, userID domain.UserID) ([]domain.Collection, error) {
	if _, err := snapshot(ctx, s.store, userID); err != nil {
		return nil, err
	}
	return s.fetch(ctx, userID)
}

func (s *SimpleCollectionService) fetch(ctx context.Context, userID domain.UserID) ([]domain.Collection, error) {
	dispatch(ctx, s.store, userID, state.CollectionsRequested{})

	collections, err := s.gateway.ListCollections(ctx)
	if err != nil {
		slog.Error("listing collections", slog.String("error", err.Error()))
		dispatch(ctx, s.store, userID, state.CollectionsFailed{Message: ErrorMessage(err)})
		return nil, err
	}

	dispatch(ctx, s.store, userID, state.CollectionsLoaded{Collections: collections})
	return collections, nil
}

// GetCollection looks the collection up in the last listing, fetching the
// listing first if it was never loaded.
func (s *SimpleCollectionService) GetCollection(ctx context.Context, userID domain.UserID, name string) (domain.Collection, error) {
	current, err := snapshot(ctx, s.store, userID)
	if err != nil {
		return domain.Collection{}, err
	}

	collections := current.Collections
	if !current.CollectionsStatus.IsComplete() {
		if collections, err = s.fetch(ctx, userID); err != nil {
			return domain.Collection{}, err
		}
	}

	for _, collection := range collections {
		if collection.Name == name {
			return collection, nil
		}
	}

	slog.Warn("collection not found", slog.String("name", name))
	return domain.Collection{}, ErrSchemaNotFound
}

func (s *SimpleCollectionService) CreateCollection(ctx context.Context, userID domain.UserID, draft domain.CollectionDraft) (domain.Collection, error) {
	if _, err := snapshot(ctx, s.store, userID); err != nil {
		return domain.Collection{}, err
	}

	collection, err := draft.ToCollection()
	if err != nil {
		slog.Warn("invalid collection draft", slog.String("name", draft.Name), slog.String("error", err.Error()))
		return domain.Collection{}, fmt.Errorf("%w: %w", ErrInvalidCollection, err)
	}

	payload, err := domain.NewCreateCollectionPayload(collection)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("%w: %w", ErrInvalidCollection, err)
	}

	dispatch(ctx, s.store, userID, state.CollectionCreationRequested{})

	if err := s.gateway.CreateCollection(ctx, userID, payload); err != nil {
		slog.Error("creating collection", slog.String("name", collection.Name), slog.String("error", err.Error()))
		dispatch(ctx, s.store, userID, state.CollectionCreationFailed{Message: ErrorMessage(err)})
		return domain.Collection{}, err
	}

	dispatch(ctx, s.store, userID, state.CollectionAdded{Collection: collection})

	slog.Info("collection created",
		slog.String("name", collection.Name),
		slog.Int("fields", len(collection.Structure)),
		slog.Bool("schemaless", collection.Schemaless))

	return collection, nil
}
