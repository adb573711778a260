package state

import "cms-console/internal/content/domain"

// Action describes one state transition. Reduce is the only place actions
// are applied.
type Action interface {
	isAction()
}

type SessionRequested struct{}

type SessionStarted struct {
	User domain.User
}

type SessionFailed struct {
	Message string
}

type SessionEnded struct{}

type CollectionsRequested struct{}

type CollectionsLoaded struct {
	Collections []domain.Collection
}

type CollectionsFailed struct {
	Message string
}

type CollectionCreationRequested struct{}

type CollectionAdded struct {
	Collection domain.Collection
}

type CollectionCreationFailed struct {
	Message string
}

type RecordsRequested struct {
	Collection string
}

type RecordsLoaded struct {
	Collection string
	Records    []domain.Record
}

type RecordsFailed struct {
	Collection string
	Message    string
}

type RecordUpdateRequested struct{}

type RecordSaved struct {
	Collection string
	Record     domain.Record
}

type RecordRemoved struct {
	Collection string
	Name       string
}

type RecordUpdateFailed struct {
	Message string
}

func (SessionRequested) isAction()            {}
func (SessionStarted) isAction()              {}
func (SessionFailed) isAction()               {}
func (SessionEnded) isAction()                {}
func (CollectionsRequested) isAction()        {}
func (CollectionsLoaded) isAction()           {}
func (CollectionsFailed) isAction()           {}
func (CollectionCreationRequested) isAction() {}
func (CollectionAdded) isAction()             {}
func (CollectionCreationFailed) isAction()    {}
func (RecordsRequested) isAction()            {}
func (RecordsLoaded) isAction()               {}
func (RecordsFailed) isAction()               {}
func (RecordUpdateRequested) isAction()       {}
func (RecordSaved) isAction()                 {}
func (RecordRemoved) isAction()               {}
func (RecordUpdateFailed) isAction()          {}
