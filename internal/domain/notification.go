package domain

import "pestlinkgw/internal/shared/normalization"

// Notification is the stable notification record.
type Notification struct {
	NotificationID string `json:"notificationId"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	Type           string `json:"type,omitempty"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// NotificationFromPayload reconciles a raw backend element into a Notification.
func NotificationFromPayload(raw map[string]any) Notification {
	read := false
	if value, ok := normalization.FirstValue(raw, "read", "isRead", "is_read", "seen"); ok {
		read = normalization.AsBool(value)
	}
	return Notification{
		NotificationID: normalization.FirstID(raw, "notificationId", "id", "notification_id", "_id"),
		Title:          normalization.FirstString(raw, "title", "subject"),
		Body:           normalization.FirstString(raw, "body", "message", "text"),
		Type:           normalization.FirstString(raw, "type", "category"),
		Read:           read,
		CreatedAt:      normalization.FirstString(raw, "createdAt", "created_at", "date"),
	}
}
