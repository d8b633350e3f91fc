package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewClient(baseURL, "0xabc", time.Second, logger)
}

func TestLogResource_Success(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resource", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true,"transactionHash":"0xtx","gasUsed":21000,"blockNumber":77}`))
	}))
	defer srv.Close()

	receipt, err := newTestClient(srv.URL).LogResource(context.Background(), "inc-1", "AMBULANCE-1")

	require.NoError(t, err)
	assert.Equal(t, models.LedgerReceipt{TxHash: "0xtx", GasUsed: 21000, BlockNumber: 77}, receipt)
	assert.Equal(t, map[string]string{"incidentId": "inc-1", "resourceId": "AMBULANCE-1"}, got)
}

func TestLogVerified_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"success":false,"error":"nonce too low"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).LogVerified(context.Background(), "inc-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonce too low")
}

func TestLogResolved_MissingHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).LogResolved(context.Background(), "inc-1")

	require.Error(t, err)
}

func TestLogGenericAudit_Payload(t *testing.T) {
	var got auditRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true,"transactionHash":"0xaudit"}`))
	}))
	defer srv.Close()

	entry := &models.AuditLogEntry{
		ID:         5,
		ActionType: models.ActionConfigEnabled,
		ActorID:    "admin-1",
		ActorRole:  models.RoleAdmin,
		TargetType: models.TargetSystemConfig,
		TargetID:   models.FlagLockdownMode,
		CreatedAt:  time.Unix(1700000000, 0),
	}

	receipt, err := newTestClient(srv.URL).LogGenericAudit(context.Background(), entry)

	require.NoError(t, err)
	assert.Equal(t, "0xaudit", receipt.TxHash)
	assert.Equal(t, int64(5), got.AuditID)
	assert.Equal(t, "SYSTEM_CONFIG_ENABLED", got.ActionType)
	assert.Equal(t, int64(1700000000), got.Timestamp)
}

func TestSubmit_NotConfigured(t *testing.T) {
	_, err := newTestClient("").LogVerified(context.Background(), "inc-1")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"connected":true,"latestBlock":1234}`))
	}))
	defer srv.Close()

	h := newTestClient(srv.URL).Health(context.Background())

	assert.True(t, h.Connected)
	assert.Equal(t, int64(1234), h.LatestBlock)
	assert.Equal(t, "0xabc", h.ContractAddress)
	assert.Empty(t, h.Error)
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	h := newTestClient(url).Health(context.Background())

	assert.False(t, h.Connected)
	assert.NotEmpty(t, h.Error)
}
