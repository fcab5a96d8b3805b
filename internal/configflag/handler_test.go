package configflag

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
)

type memoryStore struct {
	cfg *domain.Config
}

func (m *memoryStore) Get(context.Context) (domain.Config, error) {
	if m.cfg == nil {
		return domain.DefaultConfig(), nil
	}
	return *m.cfg, nil
}

func (m *memoryStore) SetLimitedEditionActive(_ context.Context, active bool) error {
	if m.cfg == nil {
		cfg := domain.DefaultConfig()
		cfg.ID = domain.ConfigKey
		m.cfg = &cfg
	}
	m.cfg.LimitedEditionActive = active
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandler_HandleGet_DefaultsWhenEmpty(t *testing.T) {
	handler := NewHandler(&memoryStore{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	handler.HandleGet(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var cfg domain.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.False(t, cfg.LimitedEditionActive)
	assert.Equal(t, "Celestial Gaze", cfg.LimitedEditionName)
}

func TestHandler_HandleToggle(t *testing.T) {
	store := &memoryStore{}
	handler := NewHandler(store, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/config/toggle", strings.NewReader(`{"limited_edition_active": true}`))
	rec := httptest.NewRecorder()
	handler.HandleToggle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK     bool `json:"ok"`
		Active bool `json:"limited_edition_active"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.True(t, resp.Active)

	require.NotNil(t, store.cfg)
	assert.True(t, store.cfg.LimitedEditionActive)
	assert.Equal(t, "Celestial Gaze", store.cfg.LimitedEditionName)
}

func TestHandler_HandleToggle_RequiresFlag(t *testing.T) {
	handler := NewHandler(&memoryStore{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/config/toggle", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.HandleToggle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleToggle_RejectsMalformedBody(t *testing.T) {
	handler := NewHandler(&memoryStore{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/config/toggle", strings.NewReader(`{"limited_edition_active":`))
	rec := httptest.NewRecorder()
	handler.HandleToggle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
