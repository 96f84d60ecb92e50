package normalization

import (
	"strconv"
	"strings"
)

// AsString trims and returns the string representation of value when possible.
func AsString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// AsInt coerces numeric values supported by the REST layer into Go ints.
func AsInt(value any) int {
	switch typed := value.(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
			return parsed
		}
	}
	return 0
}

// AsFloat64 coerces numeric values (including numeric strings) into float64.
func AsFloat64(value any) float64 {
	switch typed := value.(type) {
	case float64:
		return typed
	case float32:
		return float64(typed)
	case int:
		return float64(typed)
	case int32:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		if trimmed := strings.TrimSpace(typed); trimmed != "" {
			if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// AsBool coerces booleans and their common string and numeric spellings.
func AsBool(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case float64:
		return typed != 0
	case int:
		return typed != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "true", "1", "yes":
			return true
		}
	}
	return false
}

// IDString renders an identifier in its canonical string form. The backend has
// served ids as JSON numbers, numeric strings and plain strings at different
// points; all collapse to the trimmed string spelling here.
func IDString(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		if typed == float64(int64(typed)) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return IDString(float64(typed))
	case int:
		return strconv.Itoa(typed)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case int64:
		return strconv.FormatInt(typed, 10)
	}
	return ""
}

// AsSlice normalizes different collection types into a []any.
func AsSlice(value any) []any {
	switch typed := value.(type) {
	case []any:
		return typed
	case []map[string]any:
		items := make([]any, 0, len(typed))
		for _, entry := range typed {
			items = append(items, entry)
		}
		return items
	default:
		return nil
	}
}

// AsMap returns value as a map when it is one, nil otherwise.
func AsMap(value any) map[string]any {
	if typed, ok := value.(map[string]any); ok {
		return typed
	}
	return nil
}

// FirstString coalesces the first non-empty string found under the given keys.
func FirstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if value := AsString(m[key]); value != "" {
			return value
		}
	}
	return ""
}

// FirstID coalesces the first non-empty identifier found under the given keys.
func FirstID(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if value := IDString(m[key]); value != "" {
			return value
		}
	}
	return ""
}

// FirstValue returns the first non-nil value present under the given keys.
func FirstValue(m map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := m[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// FirstFloat coalesces the first usable numeric value found under the given keys.
func FirstFloat(m map[string]any, keys ...string) float64 {
	for _, key := range keys {
		if value, ok := m[key]; ok && value != nil {
			return AsFloat64(value)
		}
	}
	return 0
}

// CleanOptional strips nil-valued and blank-string entries from a payload so
// absent optional fields never travel as placeholders that corrupt equality
// checks on the receiving side.
func CleanOptional(payload map[string]any) map[string]any {
	cleaned := make(map[string]any, len(payload))
	for key, value := range payload {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		cleaned[key] = value
	}
	return cleaned
}
