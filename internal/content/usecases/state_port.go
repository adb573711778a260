package usecases

import (
	"context"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/state"
)

//go:generate mockgen -source=state_port.go -destination=../../../test/unit/doubles/content/usecases/state_port_mock.go -package=usecases -mock_names=StateStore=MockStateStore

// StateStore keeps one ConsoleState per user. Dispatch applies an action
// through state.Reduce with a single writer per user and returns the new state.
type StateStore interface {
	Snapshot(context.Context, domain.UserID) (state.ConsoleState, error)
	Dispatch(context.Context, domain.UserID, state.Action) (state.ConsoleState, error)
	Discard(context.Context, domain.UserID) error
}
