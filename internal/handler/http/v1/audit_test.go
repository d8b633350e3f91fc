package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListAudit_Filters(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	// Ожидания
	m.audit.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.AuditFilter) ([]*models.AuditLogEntry, int64, error) {
			assert.Equal(t, models.ActionResourceAssigned, f.ActionType)
			assert.Equal(t, models.LedgerFailed, f.LedgerStatus)
			require.NotNil(t, f.From)
			assert.True(t, from.Equal(*f.From))
			assert.Nil(t, f.To)
			assert.Equal(t, 3, f.Page)
			return []*models.AuditLogEntry{{ID: 9}}, 41, nil
		})

	// Действие
	w := makeRequest(router, http.MethodGet,
		"/api/v1/audit?actionType=RESOURCE_ASSIGNED&ledgerStatus=FAILED&from=2024-05-01T00:00:00Z&page=3&pageSize=20", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp AuditListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(41), resp.Total)
	assert.Equal(t, 3, resp.Page)
	require.Len(t, resp.Items, 1)
}

func TestListAudit_BadDate(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/audit?to=yesterday", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid to date")
}

func TestGetAudit(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(m *testMocks)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/v1/audit/12",
			setup: func(m *testMocks) {
				m.audit.EXPECT().Get(gomock.Any(), int64(12)).Return(&models.AuditLogEntry{ID: 12}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			path: "/api/v1/audit/13",
			setup: func(m *testMocks) {
				m.audit.EXPECT().Get(gomock.Any(), int64(13)).Return(nil, models.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			path:       "/api/v1/audit/abc",
			setup:      func(m *testMocks) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			tt.setup(m)

			w := makeRequest(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetAuditByTx(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	hash := "0xdeadbeef"

	// Ожидания
	m.audit.EXPECT().GetByTxHash(gomock.Any(), hash).Return(&models.AuditLogEntry{ID: 5, LedgerTxHash: &hash}, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/audit/tx/"+hash, nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), hash)
}

func TestAuditStats(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.audit.EXPECT().Stats(gomock.Any()).Return(&models.AuditStats{
		ByActionType: map[string]int64{"INCIDENT_REPORTED": 3},
		ByStatus:     map[string]int64{"SUCCESS": 3},
	}, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/audit/stats", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"INCIDENT_REPORTED":3`)
}

func TestPendingAudit(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.audit.EXPECT().ListPending(gomock.Any(), defaultPendingMinAge, defaultPendingLimit).Return([]*models.AuditLogEntry{}, nil)

		w := makeRequest(router, http.MethodGet, "/api/v1/audit/pending", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("explicit", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.audit.EXPECT().ListPending(gomock.Any(), 30*time.Minute, 10).Return([]*models.AuditLogEntry{}, nil)

		w := makeRequest(router, http.MethodGet, "/api/v1/audit/pending?minAgeMinutes=30&limit=10", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRetryAudit(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.audit.EXPECT().Retry(gomock.Any(), int64(7)).Return(nil)

		w := makeRequest(router, http.MethodPost, "/api/v1/audit/7/retry", nil)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("not failed", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.audit.EXPECT().Retry(gomock.Any(), int64(8)).
			Return(fmt.Errorf("audit: entry 8 is not in FAILED ledger status: %w", models.ErrInvalidTransition))

		w := makeRequest(router, http.MethodPost, "/api/v1/audit/8/retry", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestExportAudit(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.audit.EXPECT().ExportCSV(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w io.Writer, f models.AuditFilter) error {
			assert.Equal(t, models.AuditFailed, f.Status)
			_, err := io.WriteString(w, "id,action_type\n1,INCIDENT_REPORTED\n")
			return err
		})

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/audit/export?status=FAILED", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=audit-")
	assert.Contains(t, w.Body.String(), "1,INCIDENT_REPORTED")
}

func TestExportAudit_FailureAfterHeaders(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.audit.EXPECT().ExportCSV(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/audit/export", nil)

	// Проверки: статус уже отправлен
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}
