package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const userIDHeader = "X-User-ID"

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) Signup(username, password string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/session/signup", "", map[string]any{
		"username": username,
		"password": password,
	})
}

func (d *APIDriver) Login(username, password string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/session/login", "", map[string]any{
		"username": username,
		"password": password,
	})
}

func (d *APIDriver) Logout(userID string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/session/logout", userID, nil)
}

func (d *APIDriver) GetState(userID string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/session/state", userID, nil)
}

func (d *APIDriver) ListCollections(userID string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/collections", userID, nil)
}

func (d *APIDriver) GetCollection(userID, name string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/collections/"+url.PathEscape(name), userID, nil)
}

func (d *APIDriver) CreateCollection(userID string, draft map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/collections", userID, draft)
}

func (d *APIDriver) ListRecords(userID, collection string) (*http.Response, error) {
	return d.do(http.MethodGet, recordsPath(collection), userID, nil)
}

func (d *APIDriver) NewRecord(userID, collection, name string) (*http.Response, error) {
	query := url.Values{}
	query.Set("name", name)
	return d.do(http.MethodGet, recordsPath(collection)+"/new?"+query.Encode(), userID, nil)
}

func (d *APIDriver) ValidateRecord(userID, collection, name string, values map[string]string) (*http.Response, error) {
	return d.do(http.MethodPost, recordsPath(collection)+"/validate", userID, map[string]any{
		"name":   name,
		"values": values,
	})
}

func (d *APIDriver) CreateRecord(userID, collection, name string, values map[string]string) (*http.Response, error) {
	return d.do(http.MethodPost, recordsPath(collection), userID, map[string]any{
		"name":   name,
		"values": values,
	})
}

func (d *APIDriver) UpdateRecord(userID, collection, name string, values map[string]string) (*http.Response, error) {
	return d.do(http.MethodPut, recordsPath(collection)+"/"+url.PathEscape(name), userID, map[string]any{
		"values": values,
	})
}

func (d *APIDriver) DeleteRecord(userID, collection, name string) (*http.Response, error) {
	return d.do(http.MethodDelete, recordsPath(collection)+"/"+url.PathEscape(name), userID, nil)
}

func (d *APIDriver) ValidateField(value, fieldType string, nullable, isAny bool) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/fields/validate", "", map[string]any{
		"value":    value,
		"type":     fieldType,
		"nullable": nullable,
		"any":      isAny,
	})
}

func recordsPath(collection string) string {
	return "/v1/collections/" + url.PathEscape(collection) + "/records"
}

func (d *APIDriver) do(method, path, userID string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reqBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(reqBody)
	}

	req, err := http.NewRequest(method, d.baseURL+path, reader)
	if err != nil {
		panic(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(userIDHeader, userID)
	}
	return d.client.Do(req)
}
