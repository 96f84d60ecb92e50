package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"pestlinkgw/internal/transport"
)

// MarkNotificationRead marks one notification as read.
func (g *Gateway) MarkNotificationRead(ctx context.Context, notificationID string) transport.Envelope {
	id := strings.TrimSpace(notificationID)
	if id == "" {
		return transport.Failure("notification id is required")
	}
	return g.rest.Do(ctx, http.MethodPost, "/notifications/"+url.PathEscape(id)+"/mark-read", nil)
}

// MarkAllNotificationsRead marks every notification of the caller as read.
func (g *Gateway) MarkAllNotificationsRead(ctx context.Context) transport.Envelope {
	return g.rest.Do(ctx, http.MethodPost, "/notifications/mark-all-read", nil)
}

// ClearNotifications removes all of the caller's notifications.
func (g *Gateway) ClearNotifications(ctx context.Context) transport.Envelope {
	return g.rest.Do(ctx, http.MethodPost, "/notifications/clear", nil)
}
