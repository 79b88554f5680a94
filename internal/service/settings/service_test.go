package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
	"github.com/Valeria-CPaz/app-agendamento/pkg/security"
)

type fakeSettingsRepo struct {
	settings *model.UserSettings
	getCalls int
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*model.UserSettings, error) {
	f.getCalls++
	if f.settings == nil {
		return nil, repository.ErrNotFound
	}
	copy := *f.settings
	return &copy, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s *model.UserSettings) error {
	copy := *s
	f.settings = &copy
	return nil
}

func strptr(s string) *string             { return &s }
func f64ptr(v float64) *float64           { return &v }
func themeptr(v model.Theme) *model.Theme { return &v }

func TestGetSettingsReturnsDefaultsWhenEmpty(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, security.NewBcryptHasher(4))

	got, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, got.Theme)
	assert.Zero(t, got.FullPrice)
}

func TestGetSettingsCachesReads(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &model.UserSettings{Email: "a@b.com", Theme: model.ThemeDark}}
	svc := NewService(repo, security.NewBcryptHasher(4))

	_, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	_, err = svc.GetSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getCalls)
}

func TestUpdateSettingsAppliesPartialChanges(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &model.UserSettings{
		Name:      "Valéria",
		Email:     "a@b.com",
		FullPrice: 150,
		Theme:     model.ThemeLight,
	}}
	svc := NewService(repo, security.NewBcryptHasher(4))

	got, err := svc.UpdateSettings(context.Background(), &model.UpdateSettingsRequest{
		FullPrice: f64ptr(180),
		Theme:     themeptr(model.ThemeDark),
	})
	require.NoError(t, err)

	assert.Equal(t, "Valéria", got.Name, "untouched fields survive")
	assert.Equal(t, 180.0, got.FullPrice)
	assert.Equal(t, model.ThemeDark, got.Theme)
}

func TestUpdateSettingsHashesPassword(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &model.UserSettings{Email: "a@b.com"}}
	hasher := security.NewBcryptHasher(4)
	svc := NewService(repo, hasher)

	_, err := svc.UpdateSettings(context.Background(), &model.UpdateSettingsRequest{
		Password: strptr("nova-senha-123"),
	})
	require.NoError(t, err)

	require.NotEmpty(t, repo.settings.PasswordHash)
	assert.NotEqual(t, "nova-senha-123", repo.settings.PasswordHash)
	assert.NoError(t, hasher.Compare(repo.settings.PasswordHash, "nova-senha-123"))
}

func TestUpdateSettingsRejectsShortPassword(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &model.UserSettings{Email: "a@b.com"}}
	svc := NewService(repo, security.NewBcryptHasher(4))

	_, err := svc.UpdateSettings(context.Background(), &model.UpdateSettingsRequest{
		Password: strptr("curta"),
	})
	assert.Error(t, err)
}

func TestUpdateSettingsInvalidatesCache(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &model.UserSettings{Email: "a@b.com", FullPrice: 100}}
	svc := NewService(repo, security.NewBcryptHasher(4))

	_, err := svc.GetSettings(context.Background())
	require.NoError(t, err)

	_, err = svc.UpdateSettings(context.Background(), &model.UpdateSettingsRequest{
		FullPrice: f64ptr(200),
	})
	require.NoError(t, err)

	got, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.FullPrice)
}
