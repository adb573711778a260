package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/state"
)

func NewSessionService(users UserGateway, store StateStore) *SimpleSessionService {
	return &SimpleSessionService{
		users: users,
		store: store,
	}
}

var _ SessionService = &SimpleSessionService{}

type SimpleSessionService struct {
	users UserGateway
	store StateStore
}

func (s *SimpleSessionService) Login(ctx context.Context, credentials Credentials) (domain.User, error) {
	userID, err := s.users.Login(ctx, credentials)
	if err != nil {
		slog.Warn("logging in", slog.String("username", credentials.Username), slog.String("error", err.Error()))
		return domain.User{}, err
	}
	return s.start(ctx, domain.User{ID: userID, Username: credentials.Username})
}

func (s *SimpleSessionService) Signup(ctx context.Context, registration Registration) (domain.User, error) {
	userID, err := s.users.Register(ctx, registration)
	if err != nil {
		slog.Warn("signing up", slog.String("username", registration.Username), slog.String("error", err.Error()))
		return domain.User{}, err
	}
	return s.start(ctx, domain.User{ID: userID, Username: registration.Username})
}

func (s *SimpleSessionService) start(ctx context.Context, user domain.User) (domain.User, error) {
	if _, err := s.store.Dispatch(ctx, user.ID, state.SessionStarted{User: user}); err != nil {
		slog.Error("starting session", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("starting session: %w", err)
	}

	slog.Info("session started", slog.String("user_id", user.ID.String()))
	return user, nil
}

func (s *SimpleSessionService) Logout(ctx context.Context, userID domain.UserID) error {
	if _, err := snapshot(ctx, s.store, userID); err != nil {
		return err
	}
	dispatch(ctx, s.store, userID, state.SessionRequested{})

	if err := s.users.Logout(ctx, userID); err != nil {
		slog.Error("logging out", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		dispatch(ctx, s.store, userID, state.SessionFailed{Message: ErrorMessage(err)})
		return err
	}

	if err := s.store.Discard(ctx, userID); err != nil {
		slog.Error("discarding session", slog.String("error", err.Error()))
		return fmt.Errorf("discarding session: %w", err)
	}

	slog.Info("session ended", slog.String("user_id", userID.String()))
	return nil
}

func (s *SimpleSessionService) CurrentState(ctx context.Context, userID domain.UserID) (state.ConsoleState, error) {
	return snapshot(ctx, s.store, userID)
}

// snapshot loads the session state and rejects users that never logged in
// through the console.
func snapshot(ctx context.Context, store StateStore, userID domain.UserID) (state.ConsoleState, error) {
	if userID.IsZero() {
		return state.ConsoleState{}, ErrUnauthenticated
	}
	current, err := store.Snapshot(ctx, userID)
	if err != nil {
		slog.Error("loading session state", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return state.ConsoleState{}, fmt.Errorf("loading session state: %w", err)
	}
	if !current.IsAuthenticated() {
		return state.ConsoleState{}, ErrUnauthenticated
	}
	return current, nil
}

// dispatch applies a status transition. Failures are logged only.
func dispatch(ctx context.Context, store StateStore, userID domain.UserID, action state.Action) {
	if _, err := store.Dispatch(ctx, userID, action); err != nil {
		slog.Error("updating session state",
			slog.String("user_id", userID.String()),
			slog.String("action", fmt.Sprintf("%T", action)),
			slog.String("error", err.Error()))
	}
}
