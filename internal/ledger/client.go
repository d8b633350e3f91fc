// Package ledger - клиент шлюза неизменяемого реестра
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 1 << 20

// ErrNotConfigured - адрес шлюза не задан
var ErrNotConfigured = errors.New("ledger gateway is not configured")

// Health - состояние подключения к реестру
type Health struct {
	Connected       bool   `json:"connected"`
	ContractAddress string `json:"contract_address"`
	LatestBlock     int64  `json:"latest_block"`
	Error           string `json:"error,omitempty"`
}

type txResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
	GasUsed         int64  `json:"gasUsed"`
	BlockNumber     int64  `json:"blockNumber"`
	Error           string `json:"error"`
}

type auditRequest struct {
	AuditID     int64          `json:"auditId"`
	ActionType  string         `json:"actionType"`
	ActorID     string         `json:"actorId"`
	ActorRole   string         `json:"actorRole"`
	TargetType  string         `json:"targetType,omitempty"`
	TargetID    string         `json:"targetId,omitempty"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Timestamp   int64          `json:"timestamp"`
}

// Client - HTTP клиент шлюза реестра
type Client struct {
	baseURL         string
	contractAddress string
	httpClient      *http.Client
	logger          *logrus.Logger
}

func NewClient(baseURL, contractAddress string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:         baseURL,
		contractAddress: contractAddress,
		httpClient:      &http.Client{Timeout: timeout},
		logger:          logger,
	}
}

// LogVerified фиксирует подтверждение инцидента
func (c *Client) LogVerified(ctx context.Context, incidentID string) (models.LedgerReceipt, error) {
	return c.submit(ctx, "/verified", map[string]string{"incidentId": incidentID})
}

// LogResource фиксирует назначение ресурса на инцидент
func (c *Client) LogResource(ctx context.Context, incidentID, resourceID string) (models.LedgerReceipt, error) {
	return c.submit(ctx, "/resource", map[string]string{"incidentId": incidentID, "resourceId": resourceID})
}

// LogResolved фиксирует закрытие инцидента
func (c *Client) LogResolved(ctx context.Context, incidentID string) (models.LedgerReceipt, error) {
	return c.submit(ctx, "/resolved", map[string]string{"incidentId": incidentID})
}

// LogGenericAudit фиксирует произвольную запись журнала
func (c *Client) LogGenericAudit(ctx context.Context, entry *models.AuditLogEntry) (models.LedgerReceipt, error) {
	return c.submit(ctx, "/audit", auditRequest{
		AuditID:     entry.ID,
		ActionType:  string(entry.ActionType),
		ActorID:     entry.ActorID,
		ActorRole:   entry.ActorRole,
		TargetType:  entry.TargetType,
		TargetID:    entry.TargetID,
		Description: entry.Description,
		Metadata:    entry.Metadata,
		Timestamp:   entry.CreatedAt.Unix(),
	})
}

// Health опрашивает шлюз; недоступность возвращается в поле Error, а не ошибкой
func (c *Client) Health(ctx context.Context) Health {
	h := Health{ContractAddress: c.contractAddress}
	if c.baseURL == "" {
		h.Error = ErrNotConfigured.Error()
		return h
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		h.Error = err.Error()
		return h
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		h.Error = err.Error()
		return h
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.Error = fmt.Sprintf("ledger gateway returned status %d", resp.StatusCode)
		return h
	}

	var body struct {
		Connected       bool   `json:"connected"`
		ContractAddress string `json:"contractAddress"`
		LatestBlock     int64  `json:"latestBlock"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		h.Error = fmt.Sprintf("failed to decode health response: %v", err)
		return h
	}
	h.Connected = body.Connected
	h.LatestBlock = body.LatestBlock
	if body.ContractAddress != "" {
		h.ContractAddress = body.ContractAddress
	}
	return h
}

func (c *Client) submit(ctx context.Context, path string, in any) (models.LedgerReceipt, error) {
	if c.baseURL == "" {
		return models.LedgerReceipt{}, ErrNotConfigured
	}
	log := c.logger.WithFields(logrus.Fields{"component": "ledger", "path": path})

	payload, err := json.Marshal(in)
	if err != nil {
		return models.LedgerReceipt{}, fmt.Errorf("ledger: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return models.LedgerReceipt{}, fmt.Errorf("ledger: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.LedgerReceipt{}, fmt.Errorf("ledger: failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	var body txResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return models.LedgerReceipt{}, fmt.Errorf("ledger: %s returned status %d with unreadable body: %w", path, resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !body.Success {
		msg := body.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return models.LedgerReceipt{}, fmt.Errorf("ledger: %s rejected: %s", path, msg)
	}
	if body.TransactionHash == "" {
		return models.LedgerReceipt{}, fmt.Errorf("ledger: %s returned no transaction hash", path)
	}

	log.WithField("tx_hash", body.TransactionHash).Debug("Ledger transaction submitted")
	return models.LedgerReceipt{
		TxHash:      body.TransactionHash,
		GasUsed:     body.GasUsed,
		BlockNumber: body.BlockNumber,
	}, nil
}
