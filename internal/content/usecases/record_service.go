package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/state"
)

func NewRecordService(gateway RecordGateway, collections CollectionService, store StateStore) *SimpleRecordService {
	return &SimpleRecordService{
		gateway:     gateway,
		collections: collections,
		store:       store,
	}
}

var _ RecordService = &SimpleRecordService{}

type SimpleRecordService struct {
	gateway     RecordGateway
	collections CollectionService
	store       StateStore
}

// ListRecords fetches the documents of a collection and classifies them
// against its current structure.
func (s *SimpleRecordService) ListRecords(ctx context.Context, userID domain.UserID, name string) ([]domain.Record, error) {
	collection, err := s.collections.GetCollection(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	dispatch(ctx, s.store, userID, state.RecordsRequested{Collection: name})

	raw, err := s.gateway.ListRecords(ctx, userID, name)
	if err != nil {
		slog.Error("listing records", slog.String("collection", name), slog.String("error", err.Error()))
		dispatch(ctx, s.store, userID, state.RecordsFailed{Collection: name, Message: ErrorMessage(err)})
		return nil, err
	}

	records := make([]domain.Record, len(raw))
	for i, document := range raw {
		records[i] = domain.NewRecordFromWire(document, collection)
	}

	dispatch(ctx, s.store, userID, state.RecordsLoaded{Collection: name, Records: records})
	return records, nil
}

func (s *SimpleRecordService) NewRecord(ctx context.Context, userID domain.UserID, name string, recordName string) (domain.Record, error) {
	collection, err := s.collections.GetCollection(ctx, userID, name)
	if err != nil {
		return domain.Record{}, err
	}

	record, err := domain.NewBlankRecord(recordName, collection)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return record, nil
}

func (s *SimpleRecordService) ValidateRecord(ctx context.Context, userID domain.UserID, name string, input RecordInput) (domain.FieldErrors, error) {
	collection, err := s.collections.GetCollection(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	record := domain.NewRecordFromInput(input.Name, input.Values, collection)
	return domain.ValidateRecord(record, collection), nil
}

// SaveRecord validates the edited values, converts them to their wire form
// and inserts or updates the document.
func (s *SimpleRecordService) SaveRecord(ctx context.Context, userID domain.UserID, name string, input RecordInput) (domain.Record, error) {
	if strings.TrimSpace(input.Name) == "" {
		return domain.Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, domain.ErrEmptyRecordName)
	}

	collection, err := s.collections.GetCollection(ctx, userID, name)
	if err != nil {
		return domain.Record{}, err
	}

	record := domain.NewRecordFromInput(input.Name, input.Values, collection)
	if fieldErrors := domain.ValidateRecord(record, collection); len(fieldErrors) > 0 {
		slog.Warn("invalid record", slog.String("collection", name), slog.String("error", fieldErrors.Error()))
		return domain.Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, fieldErrors)
	}

	data, err := record.ToWireData()
	if err != nil {
		slog.Warn("converting record", slog.String("collection", name), slog.String("error", err.Error()))
		return domain.Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	dispatch(ctx, s.store, userID, state.RecordUpdateRequested{})

	document := domain.RawRecord{Name: record.Name, Data: data}
	if input.Create {
		err = s.gateway.InsertRecord(ctx, userID, name, document)
	} else {
		err = s.gateway.UpdateRecord(ctx, userID, name, document)
	}
	if err != nil {
		slog.Error("saving record",
			slog.String("collection", name),
			slog.String("record", record.Name),
			slog.String("error", err.Error()))
		dispatch(ctx, s.store, userID, state.RecordUpdateFailed{Message: ErrorMessage(err)})
		return domain.Record{}, err
	}

	dispatch(ctx, s.store, userID, state.RecordSaved{Collection: name, Record: record})

	slog.Info("record saved", slog.String("collection", name), slog.String("record", record.Name))
	return record, nil
}

func (s *SimpleRecordService) DeleteRecord(ctx context.Context, userID domain.UserID, name string, recordName string) error {
	if _, err := s.collections.GetCollection(ctx, userID, name); err != nil {
		return err
	}

	dispatch(ctx, s.store, userID, state.RecordUpdateRequested{})

	if err := s.gateway.DeleteRecord(ctx, userID, name, recordName); err != nil {
		slog.Error("deleting record",
			slog.String("collection", name),
			slog.String("record", recordName),
			slog.String("error", err.Error()))
		dispatch(ctx, s.store, userID, state.RecordUpdateFailed{Message: ErrorMessage(err)})
		return err
	}

	dispatch(ctx, s.store, userID, state.RecordRemoved{Collection: name, Name: recordName})
	return nil
}
