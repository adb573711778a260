//go:build wireinject
// +build wireinject

package wire

import (
	"cms-console/internal/content/gateway"
	"cms-console/internal/content/httpapi"
	"cms-console/internal/content/persistence"
	"cms-console/internal/content/usecases"

	"github.com/google/wire"
)

var GatewayPortsSet = wire.NewSet(
	wire.Bind(new(usecases.UserGateway), new(*gateway.HTTPGateway)),
	wire.Bind(new(usecases.CollectionGateway), new(*gateway.HTTPGateway)),
	wire.Bind(new(usecases.RecordGateway), new(*gateway.HTTPGateway)),
)

var CollectionServiceSet = wire.NewSet(
	GatewayPortsSet,
	usecases.NewCollectionService,
	wire.Bind(new(usecases.CollectionService), new(*usecases.SimpleCollectionService)),
)

func InitializeStateStore() (*persistence.CacheStateStore, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		provideStateStoreConfig,
		persistence.NewCacheStateStore,
	)
	return nil, nil
}

func InitializeGateway() (*gateway.HTTPGateway, error) {
	wire.Build(
		provideAppConfig,
		provideGatewayConfig,
		gateway.NewHTTPGateway,
	)
	return nil, nil
}

func InitializeSessionController(store usecases.StateStore, remote *gateway.HTTPGateway) (*httpapi.SessionController, error) {
	wire.Build(
		GatewayPortsSet,
		usecases.NewSessionService,
		wire.Bind(new(usecases.SessionService), new(*usecases.SimpleSessionService)),
		httpapi.NewSessionController,
	)
	return nil, nil
}

func InitializeCollectionController(store usecases.StateStore, remote *gateway.HTTPGateway) (*httpapi.CollectionController, error) {
	wire.Build(
		CollectionServiceSet,
		httpapi.NewCollectionController,
	)
	return nil, nil
}

func InitializeRecordController(store usecases.StateStore, remote *gateway.HTTPGateway) (*httpapi.RecordController, error) {
	wire.Build(
		CollectionServiceSet,
		usecases.NewRecordService,
		wire.Bind(new(usecases.RecordService), new(*usecases.SimpleRecordService)),
		httpapi.NewRecordController,
	)
	return nil, nil
}

func InitializeFieldController() (*httpapi.FieldController, error) {
	wire.Build(
		httpapi.NewFieldController,
	)
	return nil, nil
}
