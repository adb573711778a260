package usecases

import (
	"context"
	"errors"
	"fmt"

	"cms-console/internal/content/domain"
)

//go:generate mockgen -source=gateway_port.go -destination=../../../test/unit/doubles/content/usecases/gateway_port_mock.go -package=usecases -mock_names=UserGateway=MockUserGateway,CollectionGateway=MockCollectionGateway,RecordGateway=MockRecordGateway

var (
	ErrSchemaNotFound    = errors.New("collection not found")
	ErrRecordNotFound    = errors.New("record not found")
	ErrNetwork           = errors.New("content service request failed")
	ErrUnauthenticated   = errors.New("not logged in")
	ErrInvalidRecord     = errors.New("invalid record")
	ErrInvalidCollection = errors.New("invalid collection")
)

// GatewayError carries the status and the text returned by the content
// service. Gateways wrap it in ErrNetwork.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("content service responded with status %d", e.StatusCode)
	}
	return e.Message
}

// ErrorMessage returns the server provided text when there is one.
func ErrorMessage(err error) string {
	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		return gatewayErr.Error()
	}
	return err.Error()
}

type Credentials struct {
	Username string
	Password string
}

// Registration carries the permission document understood by the content
// service as is.
type Registration struct {
	Username    string
	Password    string
	Permissions map[string]any
}

// DefaultPermissions grants every collection permission and no database
// permission.
func DefaultPermissions() map[string]any {
	return map[string]any{
		"db permissions":                  map[string]any{},
		"all collection permissions":      map[string]any{"all": true},
		"specific collection permissions": map[string]any{},
	}
}

type UserGateway interface {
	Login(context.Context, Credentials) (domain.UserID, error)
	Register(context.Context, Registration) (domain.UserID, error)
	Logout(context.Context, domain.UserID) error
}

type CollectionGateway interface {
	ListCollections(context.Context) ([]domain.Collection, error)
	CreateCollection(context.Context, domain.UserID, domain.CreateCollectionPayload) error
}

type RecordGateway interface {
	ListRecords(ctx context.Context, userID domain.UserID, collection string) ([]domain.RawRecord, error)
	InsertRecord(ctx context.Context, userID domain.UserID, collection string, record domain.RawRecord) error
	UpdateRecord(ctx context.Context, userID domain.UserID, collection string, record domain.RawRecord) error
	DeleteRecord(ctx context.Context, userID domain.UserID, collection string, name string) error
}
