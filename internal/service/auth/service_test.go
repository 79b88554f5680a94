package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
	"github.com/Valeria-CPaz/app-agendamento/pkg/security"
)

type fakeSettingsRepo struct {
	settings *model.UserSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*model.UserSettings, error) {
	if f.settings == nil {
		return nil, repository.ErrNotFound
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s *model.UserSettings) error {
	f.settings = s
	return nil
}

func newTestService(t *testing.T, password string) (*Service, *fakeSettingsRepo) {
	t.Helper()
	hasher := security.NewBcryptHasher(4)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	repo := &fakeSettingsRepo{settings: &model.UserSettings{
		Email:        "dra@consultorio.com.br",
		PasswordHash: hash,
	}}
	return NewService(repo, hasher, "test-secret", time.Hour), repo
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _ := newTestService(t, "senha-segura")

	token, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "dra@consultorio.com.br",
		Password: "senha-segura",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "dra@consultorio.com.br", claims.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newTestService(t, "senha-segura")

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "dra@consultorio.com.br",
		Password: "senha-errada",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsWrongEmail(t *testing.T) {
	svc, _ := newTestService(t, "senha-segura")

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "outra@consultorio.com.br",
		Password: "senha-segura",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithoutProfileFails(t *testing.T) {
	hasher := security.NewBcryptHasher(4)
	svc := NewService(&fakeSettingsRepo{}, hasher, "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "dra@consultorio.com.br",
		Password: "senha-segura",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t, "senha-segura")

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	svc, _ := newTestService(t, "senha-segura")
	other, _ := newTestService(t, "senha-segura")
	other.secret = []byte("another-secret")

	token, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "dra@consultorio.com.br",
		Password: "senha-segura",
	})
	require.NoError(t, err)

	_, err = other.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
