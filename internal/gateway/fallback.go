package gateway

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"pestlinkgw/internal/transport"
)

// The backend's write-endpoint surface has been renamed more than once, and
// deployed instances disagree about which spelling they serve. Instead of
// hard-failing when the primary path is missing, the chain below walks an
// ordered list of (path, payload transform) pairs until one reports success.

type fallbackStep struct {
	path string
	// transform may augment the payload for this step, e.g. adding the
	// discriminator field the generic endpoint needs. Nil means send as-is.
	transform func(map[string]any) map[string]any
}

// postWithFallback attempts each step in order and returns the first success
// envelope. When every step fails, the last failure is returned. A single
// client reference is reused across attempts so the backend can deduplicate
// a write that succeeded but answered too late.
func (g *Gateway) postWithFallback(ctx context.Context, payload map[string]any, steps []fallbackStep) transport.Envelope {
	reference := uuid.NewString()
	var last transport.Envelope
	for _, step := range steps {
		attempt := clonePayload(payload)
		if step.transform != nil {
			attempt = step.transform(attempt)
		}
		attempt["clientReference"] = reference

		env := g.rest.Do(ctx, http.MethodPost, step.path, attempt)
		if env.Success {
			return env
		}
		g.log.Warn("fallback step failed",
			slog.String("path", step.path),
			slog.Int("status", env.Status),
			slog.String("error", env.Error))
		last = env
	}
	return last
}

func clonePayload(payload map[string]any) map[string]any {
	cloned := make(map[string]any, len(payload)+1)
	for key, value := range payload {
		cloned[key] = value
	}
	return cloned
}
