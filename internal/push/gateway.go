package push

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Gateway абстрагирует платформенную доставку push-уведомлений.
// Повторных попыток на этом уровне нет: следующий инцидент - новая
// возможность доставить уведомление.
type Gateway interface {
	Send(ctx context.Context, token, platform, title, body string, data map[string]string) error
}

// Message - полезная нагрузка, отправляемая на push-релей
type Message struct {
	Token    string            `json:"token"`
	Platform string            `json:"platform"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
}

// HTTPGateway - реализация Gateway поверх HTTP push-релея
type HTTPGateway struct {
	url        string
	secret     string
	logger     *logrus.Logger
	httpClient *http.Client
}

// NewHTTPGateway создает новый HTTPGateway с ограниченным таймаутом запроса
func NewHTTPGateway(url, secret string, timeout time.Duration, logger *logrus.Logger) *HTTPGateway {
	return &HTTPGateway{
		url:    url,
		secret: secret,
		logger: logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send отправляет одно push-уведомление на релей
func (g *HTTPGateway) Send(ctx context.Context, token, platform, title, body string, data map[string]string) error {
	if g.url == "" {
		return fmt.Errorf("push gateway URL is not configured")
	}

	raw, err := json.Marshal(Message{
		Token:    token,
		Platform: platform,
		Title:    title,
		Body:     body,
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.url, bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись тела, если секрет задан
	if g.secret != "" {
		h := hmac.New(sha256.New, []byte(g.secret))
		h.Write(raw)
		req.Header.Set("X-Push-Signature", hex.EncodeToString(h.Sum(nil)))
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway responded with status %d", resp.StatusCode)
	}

	g.logger.WithField("platform", platform).Debug("Push delivered to gateway")
	return nil
}
