package transport

import "pestlinkgw/internal/shared/normalization"

// Envelope is the uniform result every operation resolves to. Callers only
// ever need to check Success; the backend's historical response shapes never
// leak past this type.
type Envelope struct {
	Success      bool   `json:"success"`
	Status       int    `json:"status,omitempty"`
	Error        string `json:"error,omitempty"`
	NetworkError bool   `json:"networkError,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// Failure builds a local failure envelope, used for validation short-circuits
// that never reach the network.
func Failure(message string) Envelope {
	return Envelope{Error: message}
}

// Field looks up a top-level field of the decoded payload.
func (e Envelope) Field(key string) (any, bool) {
	container := normalization.AsMap(e.Data)
	if container == nil {
		return nil, false
	}
	value, ok := container[key]
	return value, ok
}

// StringField returns a string field of the decoded payload, probing the
// top level first and then one level down inside "data".
func (e Envelope) StringField(keys ...string) string {
	container := normalization.AsMap(e.Data)
	if container == nil {
		return ""
	}
	if value := normalization.FirstString(container, keys...); value != "" {
		return value
	}
	if inner := normalization.AsMap(container["data"]); inner != nil {
		return normalization.FirstString(inner, keys...)
	}
	return ""
}

// ErrorOrDefault returns the envelope error, falling back when it is empty.
func (e Envelope) ErrorOrDefault(fallback string) string {
	if e.Error != "" {
		return e.Error
	}
	return fallback
}
