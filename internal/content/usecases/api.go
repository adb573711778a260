package usecases

import (
	"context"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/state"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/content/usecases/api_mock.go -package=usecases

type SessionService interface {
	Login(context.Context, Credentials) (domain.User, error)
	Signup(context.Context, Registration) (domain.User, error)
	Logout(context.Context, domain.UserID) error
	CurrentState(context.Context, domain.UserID) (state.ConsoleState, error)
}

type CollectionService interface {
	ListCollections(context.Context, domain.UserID) ([]domain.Collection, error)
	GetCollection(ctx context.Context, userID domain.UserID, name string) (domain.Collection, error)
	CreateCollection(context.Context, domain.UserID, domain.CollectionDraft) (domain.Collection, error)
}

type RecordService interface {
	ListRecords(ctx context.Context, userID domain.UserID, collection string) ([]domain.Record, error)
	NewRecord(ctx context.Context, userID domain.UserID, collection string, name string) (domain.Record, error)
	ValidateRecord(ctx context.Context, userID domain.UserID, collection string, input RecordInput) (domain.FieldErrors, error)
	SaveRecord(ctx context.Context, userID domain.UserID, collection string, input RecordInput) (domain.Record, error)
	DeleteRecord(ctx context.Context, userID domain.UserID, collection string, name string) error
}

// RecordInput is a record as edited in the console: every value is the text
// typed by the user. Fields the collection declares are converted to their
// type on save, the others are stored as text.
type RecordInput struct {
	Name   string
	Values map[string]string
	Create bool
}
