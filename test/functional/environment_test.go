package functional

import (
	"net/http"

	"cms-console/internal/content/gateway"
	"cms-console/internal/content/httpapi"
	"cms-console/internal/content/persistence"
	"cms-console/internal/content/usecases"
	"cms-console/internal/infra/cache"
	"cms-console/internal/infra/httpserver"
	"cms-console/internal/mockcms"
)

func newContentServiceHandler() http.Handler {
	return httpserver.NewHandler(httpserver.Options{}, mockcms.NewController(mockcms.NewStore()))
}

func newConsoleHandler(contentServiceURL string) (http.Handler, error) {
	backend, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, err
	}

	storeConfig := persistence.DefaultCacheStateStoreConfig()
	storeConfig.Cache = backend
	store, err := persistence.NewCacheStateStore(storeConfig)
	if err != nil {
		return nil, err
	}

	remote, err := gateway.NewHTTPGateway(gateway.Config{BaseURL: contentServiceURL})
	if err != nil {
		return nil, err
	}

	sessions := usecases.NewSessionService(remote, store)
	collections := usecases.NewCollectionService(remote, store)
	records := usecases.NewRecordService(remote, collections, store)

	return httpserver.NewHandler(
		httpserver.Options{},
		httpapi.NewSessionController(sessions),
		httpapi.NewCollectionController(collections),
		httpapi.NewRecordController(records),
		httpapi.NewFieldController(),
	), nil
}
