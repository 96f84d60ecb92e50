// Package stream delivers live notifications over the backend's broadcast
// websocket. Frames pass through the same shape normalization as REST
// payloads, so subscribers receive the stable Notification record no matter
// how the feed wraps its messages.
package stream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"pestlinkgw/internal/domain"
	"pestlinkgw/internal/shared/normalization"
)

const (
	notificationsPath = "/ws/notifications"
	maxBackoff        = 30 * time.Second
)

// TokenSource supplies the current bearer token, if any.
type TokenSource interface {
	Token() string
}

// Subscriber maintains a websocket subscription to the notification feed and
// reconnects with capped backoff when the connection drops.
type Subscriber struct {
	url       string
	tokens    TokenSource
	dialer    *websocket.Dialer
	log       *slog.Logger
	out       chan domain.Notification
	closeOnce sync.Once
}

// NewSubscriber builds a subscriber against the backend origin. The REST
// /api prefix is stripped and the scheme switched to ws(s).
func NewSubscriber(baseURL string, tokens TokenSource, log *slog.Logger) *Subscriber {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Subscriber{
		url:    websocketURL(baseURL),
		tokens: tokens,
		dialer: websocket.DefaultDialer,
		log:    log,
		out:    make(chan domain.Notification, 16),
	}
}

// Notifications is the channel live notifications arrive on. It is closed
// when Run returns.
func (s *Subscriber) Notifications() <-chan domain.Notification {
	return s.out
}

// Run connects and pumps notifications until ctx is cancelled. Dropped
// connections reconnect with exponential backoff capped at 30s.
func (s *Subscriber) Run(ctx context.Context) {
	defer s.closeOnce.Do(func() { close(s.out) })

	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}
		conn, err := s.dial(ctx)
		if err != nil {
			s.log.Warn("notification stream dial failed", slog.String("url", s.url), slog.Any("error", err))
			if !sleepCtx(ctx, backoff) {
				return
			}
			backoff = nextBackoff(backoff)
			continue
		}

		s.log.Info("notification stream connected", slog.String("url", s.url))
		backoff = time.Second
		s.pump(ctx, conn)
	}
}

func (s *Subscriber) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	if s.tokens != nil {
		if token := strings.TrimSpace(s.tokens.Token()); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}
	conn, res, err := s.dialer.DialContext(ctx, s.url, header)
	if res != nil && res.Body != nil {
		res.Body.Close()
	}
	return conn, err
}

// pump reads frames until the connection breaks or ctx is cancelled.
func (s *Subscriber) pump(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				s.log.Warn("notification stream read failed", slog.Any("error", err))
			}
			return
		}
		notification, ok := decodeFrame(frame)
		if !ok {
			s.log.Debug("notification frame unrecognized")
			continue
		}
		select {
		case s.out <- notification:
		case <-ctx.Done():
			return
		}
	}
}

// decodeFrame tolerates both bare notification objects and wrapped
// {"notification": {...}} / {"data": {...}} frames.
func decodeFrame(frame []byte) (domain.Notification, bool) {
	var payload any
	if err := json.Unmarshal(frame, &payload); err != nil {
		return domain.Notification{}, false
	}
	container := normalization.AsMap(payload)
	if container == nil {
		return domain.Notification{}, false
	}
	if inner := normalization.AsMap(container["notification"]); inner != nil {
		container = inner
	} else if inner := normalization.MapFromPayload(container); inner != nil {
		container = inner
	}
	notification := domain.NotificationFromPayload(container)
	if notification.NotificationID == "" && notification.Title == "" && notification.Body == "" {
		return domain.Notification{}, false
	}
	return notification, true
}

func websocketURL(baseURL string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	trimmed = strings.TrimSuffix(trimmed, "/api")
	switch {
	case strings.HasPrefix(trimmed, "https://"):
		trimmed = "wss://" + strings.TrimPrefix(trimmed, "https://")
	case strings.HasPrefix(trimmed, "http://"):
		trimmed = "ws://" + strings.TrimPrefix(trimmed, "http://")
	}
	return trimmed + notificationsPath
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}
