package state

import (
	"slices"

	"cms-console/internal/content/domain"
)

var (
	loading  = Resource{Status: StatusLoading}
	complete = Resource{Status: StatusComplete}
)

func failed(message string) Resource {
	return Resource{Status: StatusError, Error: message}
}

// Reduce returns the state that results from applying action to current.
// current is never modified.
func Reduce(current ConsoleState, action Action) ConsoleState {
	next := current

	switch a := action.(type) {
	case SessionRequested:
		next.Session = loading
	case SessionStarted:
		next = New()
		next.User = a.User
		next.Session = complete
	case SessionFailed:
		next.Session = failed(a.Message)
	case SessionEnded:
		next = New()

	case CollectionsRequested:
		next.CollectionsStatus = loading
	case CollectionsLoaded:
		next.Collections = slices.Clone(a.Collections)
		if next.Collections == nil {
			next.Collections = []domain.Collection{}
		}
		next.CollectionsStatus = complete
	case CollectionsFailed:
		next.CollectionsStatus = failed(a.Message)

	case CollectionCreationRequested:
		next.CreateCollection = loading
	case CollectionAdded:
		// Only a loaded listing is extended; otherwise the next fetch brings it in.
		if current.CollectionsStatus.IsComplete() {
			next.Collections = append(slices.Clone(current.Collections), a.Collection)
		}
		next.CreateCollection = complete
	case CollectionCreationFailed:
		next.CreateCollection = failed(a.Message)

	case RecordsRequested:
		if a.Collection != current.RecordsCollection {
			next.Records = nil
		}
		next.RecordsCollection = a.Collection
		next.RecordsStatus = loading
	case RecordsLoaded:
		next.RecordsCollection = a.Collection
		next.Records = slices.Clone(a.Records)
		if next.Records == nil {
			next.Records = []domain.Record{}
		}
		next.RecordsStatus = complete
	case RecordsFailed:
		next.RecordsCollection = a.Collection
		next.RecordsStatus = failed(a.Message)

	case RecordUpdateRequested:
		next.UpdateRecord = loading
	case RecordSaved:
		if current.RecordsCollection == a.Collection && current.RecordsStatus.IsComplete() {
			next.Records = upsertRecord(current.Records, a.Record)
		}
		next.UpdateRecord = complete
	case RecordRemoved:
		if current.RecordsCollection == a.Collection {
			next.Records = slices.DeleteFunc(slices.Clone(current.Records), func(r domain.Record) bool {
				return r.Name == a.Name
			})
		}
		next.UpdateRecord = complete
	case RecordUpdateFailed:
		next.UpdateRecord = failed(a.Message)
	}

	return next
}

func upsertRecord(records []domain.Record, record domain.Record) []domain.Record {
	result := slices.Clone(records)
	for i := range result {
		if result[i].Name == record.Name {
			result[i] = record
			return result
		}
	}
	return append(result, record)
}
