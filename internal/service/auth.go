package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/instrumentation"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/models"
)

type authService struct {
	*base
}

func NewAuthService(taskManager adapter.TaskManagerAdapter, metrics *instrumentation.Metrics, log *logger.Logger) AuthService {
	return &authService{base: newBase(taskManager, metrics, log)}
}

func (a *authService) Register(ctx context.Context, sess *models.Session, params models.RegisterRequest) (models.Identity, error) {
	ctx, c := a.begin(ctx, "auth.register")

	resp, err := a.adapter.Register(ctx, params)
	if err != nil {
		return models.Identity{}, c.end(fmt.Errorf("register: %w", err))
	}

	identity, err := establish(sess, resp)
	return identity, c.end(err)
}

func (a *authService) Login(ctx context.Context, sess *models.Session, username, password string) (models.Identity, error) {
	ctx, c := a.begin(ctx, "auth.login")

	resp, err := a.adapter.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return models.Identity{}, c.end(fmt.Errorf("login: %w", err))
	}

	identity, err := establish(sess, resp)
	return identity, c.end(err)
}

func (a *authService) Logout(sess *models.Session) {
	sess.Clear()
	a.logger.Info().Str("operation", "auth.logout").Msg("session cleared")
}

// establish stores the credentials of resp in sess, or leaves sess untouched
// when resp carries no token.
func establish(sess *models.Session, resp models.AuthResponse) (models.Identity, error) {
	if resp.Token == "" {
		return models.Identity{}, ErrEmptyToken
	}

	identity := resp.Identity()
	sess.Set(resp.Token, identity)
	return identity, nil
}
