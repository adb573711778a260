package state

import "cms-console/internal/content/domain"

type AsyncStatus string

const (
	StatusIdle     AsyncStatus = "idle"
	StatusLoading  AsyncStatus = "loading"
	StatusComplete AsyncStatus = "complete"
	StatusError    AsyncStatus = "error"
)

// Resource tracks one asynchronous operation. Error holds the last failure
// message and is cleared when the operation starts again.
type Resource struct {
	Status AsyncStatus `msgpack:"status" json:"status"`
	Error  string      `msgpack:"error,omitempty" json:"error,omitempty"`
}

func (r Resource) IsIdle() bool {
	return r.Status == "" || r.Status == StatusIdle
}

func (r Resource) IsComplete() bool {
	return r.Status == StatusComplete
}

// ConsoleState is everything the console remembers for one session.
type ConsoleState struct {
	User    domain.User `msgpack:"user"`
	Session Resource    `msgpack:"session"`

	Collections       []domain.Collection `msgpack:"collections"`
	CollectionsStatus Resource            `msgpack:"collections_status"`
	CreateCollection  Resource            `msgpack:"create_collection"`

	RecordsCollection string          `msgpack:"records_collection"`
	Records           []domain.Record `msgpack:"records"`
	RecordsStatus     Resource        `msgpack:"records_status"`
	UpdateRecord      Resource        `msgpack:"update_record"`
}

func New() ConsoleState {
	return ConsoleState{
		Session:           Resource{Status: StatusIdle},
		CollectionsStatus: Resource{Status: StatusIdle},
		CreateCollection:  Resource{Status: StatusIdle},
		RecordsStatus:     Resource{Status: StatusIdle},
		UpdateRecord:      Resource{Status: StatusIdle},
	}
}

func (s ConsoleState) IsAuthenticated() bool {
	return !s.User.ID.IsZero()
}

func (s ConsoleState) Collection(name string) (domain.Collection, bool) {
	for _, collection := range s.Collections {
		if collection.Name == name {
			return collection, true
		}
	}
	return domain.Collection{}, false
}

// RecordsOf returns the cached records only when they were loaded for name.
func (s ConsoleState) RecordsOf(name string) ([]domain.Record, bool) {
	if s.RecordsCollection != name || !s.RecordsStatus.IsComplete() {
		return nil, false
	}
	return s.Records, true
}

func (s ConsoleState) Record(collection, name string) (domain.Record, bool) {
	records, ok := s.RecordsOf(collection)
	if !ok {
		return domain.Record{}, false
	}
	for _, record := range records {
		if record.Name == name {
			return record, true
		}
	}
	return domain.Record{}, false
}
