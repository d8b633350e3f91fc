package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/config"
	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const popTimeout = 5 * time.Second

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	wg          sync.WaitGroup
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.WithField("component", "webhook_worker").Info("Starting webhook worker...")
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			if ctx.Err() != nil {
				w.logger.WithField("component", "webhook_worker").Info("Stopping webhook worker.")
				return
			}

			// BRPOP с таймаутом, чтобы периодически проверять отмену контекста
			result, err := w.redisClient.BRPop(ctx, popTimeout, webhookQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
				sleep(ctx, w.cfg.WebhookBaseDelay)
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.Deliver(ctx, []byte(result[1]))
		}
	}()
}

// Wait ждет завершения цикла после отмены контекста
func (w *WebhookWorker) Wait() {
	w.wg.Wait()
}

// Deliver рассылает событие по всем адресам; адреса обслуживаются независимо
func (w *WebhookWorker) Deliver(ctx context.Context, payload []byte) {
	var event models.IncidentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"component":  "webhook_worker",
		"event_type": event.Type,
	})
	if event.Incident != nil {
		log = log.WithField("incident_id", event.Incident.ID)
	}

	if len(w.cfg.WebhookURLs) == 0 {
		log.Warn("Webhook URLs are not configured. Skipping webhook delivery.")
		return
	}

	var wg sync.WaitGroup
	for _, url := range w.cfg.WebhookURLs {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			w.deliverTo(ctx, log.WithField("webhook_url", url), url, payload)
		}(url)
	}
	wg.Wait()
}

func (w *WebhookWorker) deliverTo(ctx context.Context, log *logrus.Entry, url string, payload []byte) {
	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.send(ctx, url, payload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			return
		}
		if ctx.Err() != nil {
			log.WithError(err).Warn("Webhook delivery interrupted by shutdown.")
			return
		}
		log.WithError(err).Warnf("Webhook delivery failed. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if i < maxRetries-1 {
			sleep(ctx, delay)
			delay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver webhook for event after %d retries.", maxRetries)
}

func (w *WebhookWorker) send(ctx context.Context, url string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return nil
}

// sleep прерывается отменой контекста
func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
