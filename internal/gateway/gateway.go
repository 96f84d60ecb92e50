// Package gateway implements the domain operations of the PestLink client:
// one method per backend capability, each returning normalized records or a
// uniform envelope. Read operations degrade to empty sequences so rendering
// code can never crash on a bad response; mutations pass the failure envelope
// through untouched so the caller can surface the specific error.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"pestlinkgw/internal/session"
	"pestlinkgw/internal/shared/normalization"
	"pestlinkgw/internal/transport"
)

var (
	// ErrNetwork marks failures where no response was obtained.
	ErrNetwork = errors.New("network failure")
	// ErrRequestFailed marks responses with a non-2xx status or an explicit
	// failure envelope.
	ErrRequestFailed = errors.New("request failed")
	// ErrShapeMismatch marks responses that parsed but matched none of the
	// known payload shapes.
	ErrShapeMismatch = errors.New("unrecognized response shape")
)

// Gateway mediates between the application and the PestLink backend.
type Gateway struct {
	rest    *transport.Client
	session *session.Session
	log     *slog.Logger
}

// New wires a gateway from its collaborators. A nil logger discards logs.
func New(rest *transport.Client, sess *session.Session, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gateway{rest: rest, session: sess, log: log}
}

// Session exposes the token lifecycle to callers that inspect auth state.
func (g *Gateway) Session() *session.Session { return g.session }

func (g *Gateway) readError(env transport.Envelope) error {
	if env.NetworkError {
		return fmt.Errorf("%w: %s", ErrNetwork, env.Error)
	}
	return fmt.Errorf("%w: %s", ErrRequestFailed, env.ErrorOrDefault("no error detail"))
}

// listOp is the shared read pattern: fetch, probe for the list under the
// known shapes, reconcile each element. Always returns a non-nil slice; the
// error keeps failures observable without breaking the render path.
func listOp[T any](ctx context.Context, g *Gateway, path, domainKey string, build func(map[string]any) T) ([]T, error) {
	env := g.rest.Do(ctx, http.MethodGet, path, nil)
	if !env.Success {
		g.log.Warn("list fetch failed", slog.String("path", path), slog.String("error", env.Error))
		return []T{}, g.readError(env)
	}
	items, ok := normalization.ExtractList(env.Data, domainKey)
	if !ok {
		g.log.Warn("list shape unrecognized", slog.String("path", path))
		return []T{}, fmt.Errorf("%w: %s", ErrShapeMismatch, path)
	}
	records := make([]T, 0, len(items))
	for _, item := range items {
		if entry := normalization.AsMap(item); entry != nil {
			records = append(records, build(entry))
		}
	}
	return records, nil
}

// getOp is the shared single-record read pattern.
func getOp[T any](ctx context.Context, g *Gateway, path string, build func(map[string]any) T, keys ...string) (T, error) {
	var zero T
	env := g.rest.Do(ctx, http.MethodGet, path, nil)
	if !env.Success {
		g.log.Warn("detail fetch failed", slog.String("path", path), slog.String("error", env.Error))
		return zero, g.readError(env)
	}
	entity, ok := normalization.ExtractObject(env.Data, keys...)
	if !ok {
		g.log.Warn("detail shape unrecognized", slog.String("path", path))
		return zero, fmt.Errorf("%w: %s", ErrShapeMismatch, path)
	}
	return build(entity), nil
}
