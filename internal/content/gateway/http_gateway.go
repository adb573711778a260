package gateway

import (
	"bytes"
	"cms-console/internal/content/domain"
	"cms-console/internal/content/gateway/internal"
	"cms-console/internal/content/usecases"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	_defaultTimeout = 10 * time.Second
	_maxBodySize    = 8 << 20
)

var ErrMissingBaseURL = errors.New("content service base url is required")

type Config struct {
	BaseURL string
	Timeout time.Duration
}

var (
	_ usecases.UserGateway       = &HTTPGateway{}
	_ usecases.CollectionGateway = &HTTPGateway{}
	_ usecases.RecordGateway     = &HTTPGateway{}
)

func NewHTTPGateway(config Config) (*HTTPGateway, error) {
	return NewHTTPGatewayWithClient(config, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

// NewHTTPGatewayWithClient uses client as is apart from the timeout, which is
// taken from config when the client has none.
func NewHTTPGatewayWithClient(config Config, client *http.Client) (*HTTPGateway, error) {
	base, err := url.Parse(strings.TrimSpace(config.BaseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, ErrMissingBaseURL
	}

	if client.Timeout == 0 {
		client.Timeout = config.Timeout
		if client.Timeout == 0 {
			client.Timeout = _defaultTimeout
		}
	}

	metrics, err := newGatewayMetrics()
	if err != nil {
		return nil, fmt.Errorf("creating gateway metrics: %w", err)
	}

	return &HTTPGateway{
		base:    base,
		client:  client,
		metrics: metrics,
	}, nil
}

type HTTPGateway struct {
	base    *url.URL
	client  *http.Client
	metrics *gatewayMetrics
	// concurrent schema listings share one round trip
	listing singleflight.Group
}

func (g *HTTPGateway) Login(ctx context.Context, credentials usecases.Credentials) (domain.UserID, error) {
	query := url.Values{}
	query.Set("username", credentials.Username)
	query.Set("password", credentials.Password)

	var response internal.UserResponse
	if err := g.do(ctx, "login", http.MethodPost, "/login", query, nil, &response); err != nil {
		return "", err
	}
	return userIDFrom(response)
}

func (g *HTTPGateway) Register(ctx context.Context, registration usecases.Registration) (domain.UserID, error) {
	permissions := registration.Permissions
	if permissions == nil {
		permissions = usecases.DefaultPermissions()
	}
	body := internal.RegisterRequest{
		Username:    registration.Username,
		Password:    registration.Password,
		Permissions: permissions,
	}

	var response internal.UserResponse
	if err := g.do(ctx, "register", http.MethodPost, "/register", nil, body, &response); err != nil {
		return "", err
	}
	return userIDFrom(response)
}

func (g *HTTPGateway) Logout(ctx context.Context, userID domain.UserID) error {
	query := url.Values{}
	query.Set("user_id", userID.String())
	return g.do(ctx, "logout", http.MethodGet, "/logout", query, nil, nil)
}

func (g *HTTPGateway) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	// the shared call outlives any single caller; the client timeout still bounds it
	shared := context.WithoutCancel(ctx)
	result, err, _ := g.listing.Do("collections", func() (any, error) {
		return g.listCollections(shared)
	})
	if err != nil {
		return nil, err
	}
	listed := result.([]domain.Collection)
	collections := make([]domain.Collection, len(listed))
	copy(collections, listed)
	return collections, nil
}

func (g *HTTPGateway) listCollections(ctx context.Context) ([]domain.Collection, error) {
	var response internal.CollectionsResponse
	if err := g.do(ctx, "list_collections", http.MethodGet, "/collections", nil, nil, &response); err != nil {
		return nil, err
	}
	if response.Collections == nil && response.Message != "" {
		return nil, fmt.Errorf("%w: %w", usecases.ErrNetwork, &usecases.GatewayError{
			StatusCode: http.StatusOK,
			Message:    response.Message,
		})
	}

	collections := make([]domain.Collection, 0, len(response.Collections))
	for _, entry := range response.Collections {
		names := make([]string, 0, len(entry))
		for name := range entry {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			collection, err := toCollection(name, entry[name])
			if err != nil {
				slog.Warn("skipping collection with unreadable structure",
					slog.String("collection", name),
					slog.String("error", err.Error()),
				)
				continue
			}
			collections = append(collections, collection)
		}
	}
	return collections, nil
}

func (g *HTTPGateway) CreateCollection(ctx context.Context, userID domain.UserID, payload domain.CreateCollectionPayload) error {
	query := url.Values{}
	query.Set("user_id", userID.String())
	return g.do(ctx, "create_collection", http.MethodPost, "/create_new_collection", query, payload, nil)
}

func (g *HTTPGateway) ListRecords(ctx context.Context, userID domain.UserID, collection string) ([]domain.RawRecord, error) {
	var response internal.DocumentsResponse
	err := g.do(ctx, "list_records", http.MethodGet, "/collection", collectionQuery(userID, collection), nil, &response)
	if err != nil {
		return nil, err
	}
	if response.Documents == nil && response.Message != "" {
		return nil, fmt.Errorf("%w: %w", usecases.ErrNetwork, &usecases.GatewayError{
			StatusCode: http.StatusOK,
			Message:    response.Message,
		})
	}

	records := make([]domain.RawRecord, len(response.Documents))
	for i, document := range response.Documents {
		data := document.Data
		if data == nil {
			data = map[string]any{}
		}
		records[i] = domain.RawRecord{Name: document.DocumentName, Data: data}
	}
	return records, nil
}

func (g *HTTPGateway) InsertRecord(ctx context.Context, userID domain.UserID, collection string, record domain.RawRecord) error {
	return g.writeRecord(ctx, "insert_record", http.MethodPost, userID, collection, record)
}

func (g *HTTPGateway) UpdateRecord(ctx context.Context, userID domain.UserID, collection string, record domain.RawRecord) error {
	return g.writeRecord(ctx, "update_record", http.MethodPut, userID, collection, record)
}

func (g *HTTPGateway) DeleteRecord(ctx context.Context, userID domain.UserID, collection string, name string) error {
	query := collectionQuery(userID, collection)
	query.Set("document_name", name)
	return recordNotFound(g.do(ctx, "delete_record", http.MethodDelete, "/collection", query, nil, nil))
}

func (g *HTTPGateway) writeRecord(
	ctx context.Context,
	operation, method string,
	userID domain.UserID,
	collection string,
	record domain.RawRecord,
) error {
	data := record.Data
	if data == nil {
		data = map[string]any{}
	}
	body := internal.Document{DocumentName: record.Name, Data: data}
	return recordNotFound(g.do(ctx, operation, method, "/collection", collectionQuery(userID, collection), body, nil))
}

// do sends one request and decodes a successful response into out when out is
// not nil. Failures come back wrapped in usecases.ErrNetwork.
func (g *HTTPGateway) do(
	ctx context.Context,
	operation, method, path string,
	query url.Values,
	body any,
	out any,
) error {
	endpoint := g.base.JoinPath(path)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", operation, err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", operation, err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	response, err := g.client.Do(request)
	if err != nil {
		g.metrics.record(ctx, operation, 0, start)
		slog.Error("calling content service",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %w", usecases.ErrNetwork, err)
	}
	defer response.Body.Close()
	g.metrics.record(ctx, operation, response.StatusCode, start)

	payload, err := io.ReadAll(io.LimitReader(response.Body, _maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: reading %s response: %w", usecases.ErrNetwork, operation, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		gatewayErr := &usecases.GatewayError{
			StatusCode: response.StatusCode,
			Message:    errorMessage(payload),
		}
		slog.Warn("content service rejected request",
			slog.String("operation", operation),
			slog.Int("status", response.StatusCode),
			slog.String("message", gatewayErr.Message),
		)
		return fmt.Errorf("%w: %w", usecases.ErrNetwork, gatewayErr)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %w", usecases.ErrNetwork, operation, err)
	}
	return nil
}

func collectionQuery(userID domain.UserID, collection string) url.Values {
	query := url.Values{}
	query.Set("user_id", userID.String())
	query.Set("collection_name", collection)
	return query
}

func userIDFrom(response internal.UserResponse) (domain.UserID, error) {
	if response.UserID == "" {
		message := response.Message
		if message == "" {
			message = "response carries no user id"
		}
		return "", fmt.Errorf("%w: %w", usecases.ErrNetwork, &usecases.GatewayError{
			StatusCode: http.StatusOK,
			Message:    message,
		})
	}
	userID, err := domain.ParseUserID(response.UserID.String())
	if err != nil {
		return "", fmt.Errorf("%w: %w", usecases.ErrNetwork, err)
	}
	return userID, nil
}

func toCollection(name string, info internal.CollectionInfo) (domain.Collection, error) {
	if len(info.Structure) == 0 || string(bytes.TrimSpace(info.Structure)) == "null" {
		return domain.Collection{Name: name, Schemaless: true}, nil
	}
	structure, err := domain.DecodeStructure(info.Structure)
	if err != nil {
		return domain.Collection{}, err
	}
	return domain.Collection{Name: name, Structure: structure}, nil
}

func errorMessage(payload []byte) string {
	var response internal.ErrorResponse
	if err := json.Unmarshal(payload, &response); err == nil && response.Message != "" {
		return response.Message
	}
	return strings.TrimSpace(string(payload))
}

func recordNotFound(err error) error {
	var gatewayErr *usecases.GatewayError
	if errors.As(err, &gatewayErr) && gatewayErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", usecases.ErrRecordNotFound, err)
	}
	return err
}
