package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListConfig(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.config.EXPECT().All(gomock.Any()).Return([]*models.ConfigFlag{
		{Key: models.FlagAutoDispatch, Value: true},
		{Key: models.FlagLockdownMode, Value: false},
	}, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/config", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.FlagAutoDispatch)
	assert.Contains(t, w.Body.String(), models.FlagLockdownMode)
}

func TestGetConfig_Unknown(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.config.EXPECT().Get(gomock.Any(), "no-such-flag").Return(nil, fmt.Errorf("flag no-such-flag: %w", models.ErrNotFound))

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/config/no-such-flag", nil)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetConfig(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	admin := models.Actor{ID: "ops-1", Role: models.RoleAdmin}

	// Ожидания
	m.config.EXPECT().Set(gomock.Any(), models.FlagLockdownMode, true, admin).
		Return(&models.ConfigFlag{Key: models.FlagLockdownMode, Value: true, UpdatedBy: "ops-1"}, nil)

	// Действие
	w := makeRequest(router, http.MethodPut, "/api/v1/config/"+models.FlagLockdownMode,
		strings.NewReader(`{"value":true}`),
		map[string]string{actorIDHeader: "ops-1", actorRoleHeader: "ADMIN"})

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated_by":"ops-1"`)
}

func TestSetConfig_MissingValue(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPut, "/api/v1/config/"+models.FlagLockdownMode, strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetConfig_Forbidden(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.config.EXPECT().Set(gomock.Any(), models.FlagAutoDispatch, false, gomock.Any()).
		Return(nil, fmt.Errorf("only admins may change flags: %w", models.ErrForbidden))

	// Действие
	w := makeRequest(router, http.MethodPut, "/api/v1/config/"+models.FlagAutoDispatch, strings.NewReader(`{"value":false}`))

	// Проверки
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInitializeConfig(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.config.EXPECT().InitializeDefaults(gomock.Any(), gomock.Any()).Return([]string{models.FlagAIRiskScoring}, nil)

		w := makeRequest(router, http.MethodPost, "/api/v1/config/initialize", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"created":["ai-risk-scoring"]}`, w.Body.String())
	})

	t.Run("nothing missing", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.config.EXPECT().InitializeDefaults(gomock.Any(), gomock.Any()).Return(nil, nil)

		w := makeRequest(router, http.MethodPost, "/api/v1/config/initialize", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"created":[]}`, w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.config.EXPECT().InitializeDefaults(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		w := makeRequest(router, http.MethodPost, "/api/v1/config/initialize", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
