package usecases

import (
	"context"

	"blogreader/internal/adapters/session"
	"blogreader/pkg/log"
)

// LoginUseCase exchanges credentials for a bearer token and binds it to the
// browser session. Together with LogoutUseCase it is the only place
// authentication state changes.
type LoginUseCase struct {
	api      AuthAPI
	sessions session.Store
}

// NewLoginUseCase creates a new LoginUseCase.
func NewLoginUseCase(api AuthAPI, sessions session.Store) *LoginUseCase {
	return &LoginUseCase{api: api, sessions: sessions}
}

// Execute signs the session in. The backend's rejection reason travels up
// unchanged for display.
func (uc *LoginUseCase) Execute(ctx context.Context, sessionID, email, password string) error {
	token, err := uc.api.Login(ctx, email, password)
	if err != nil {
		log.WarnCtx(ctx, "login rejected", "error", err)
		return err
	}

	if err := uc.sessions.Save(ctx, sessionID, token); err != nil {
		log.ErrorCtx(ctx, "session save failed", "error", err)
		return err
	}
	return nil
}

// LogoutUseCase clears the session credential.
type LogoutUseCase struct {
	sessions session.Store
}

// NewLogoutUseCase creates a new LogoutUseCase.
func NewLogoutUseCase(sessions session.Store) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions}
}

// Execute signs the session out. Clearing an anonymous session is a no-op.
func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) error {
	return uc.sessions.Clear(ctx, sessionID)
}
