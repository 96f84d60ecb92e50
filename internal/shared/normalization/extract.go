package normalization

import "strings"

// The backend has shipped list payloads in several historical shapes: a bare
// array, an array under "data", an array under the domain's own name (for
// example "customers"), and a nested {"success": true, "data": [...]} wrapper.
// Each shape gets a named extractor; ExtractList tries them in priority order
// and the first match wins. The registry keeps the probing contract explicit
// and testable per shape instead of burying it in sequential conditionals.

// ListExtractor attempts to locate a list payload inside a decoded response.
type ListExtractor struct {
	Name    string
	Extract func(payload any, domainKey string) ([]any, bool)
}

var listExtractors = []ListExtractor{
	{
		Name: "bare-array",
		Extract: func(payload any, _ string) ([]any, bool) {
			if items := AsSlice(payload); items != nil {
				return items, true
			}
			return nil, false
		},
	},
	{
		Name: "data-field",
		Extract: func(payload any, _ string) ([]any, bool) {
			container := AsMap(payload)
			if container == nil {
				return nil, false
			}
			if items := AsSlice(container["data"]); items != nil {
				return items, true
			}
			return nil, false
		},
	},
	{
		Name: "domain-field",
		Extract: func(payload any, domainKey string) ([]any, bool) {
			container := AsMap(payload)
			if container == nil || domainKey == "" {
				return nil, false
			}
			if items := AsSlice(container[domainKey]); items != nil {
				return items, true
			}
			return nil, false
		},
	},
	{
		Name: "nested-success-data",
		Extract: func(payload any, domainKey string) ([]any, bool) {
			container := AsMap(payload)
			if container == nil {
				return nil, false
			}
			inner := AsMap(container["data"])
			if inner == nil {
				return nil, false
			}
			if items := AsSlice(inner["data"]); items != nil {
				return items, true
			}
			if domainKey != "" {
				if items := AsSlice(inner[domainKey]); items != nil {
					return items, true
				}
			}
			return nil, false
		},
	},
}

// ExtractList probes the decoded payload for a list under each known shape in
// priority order. The second return reports whether any shape matched; callers
// fall back to an empty sequence when it is false.
func ExtractList(payload any, domainKey string) ([]any, bool) {
	key := strings.TrimSpace(domainKey)
	for _, extractor := range listExtractors {
		if items, ok := extractor.Extract(payload, key); ok {
			return items, true
		}
	}
	return nil, false
}

// ExtractListName reports which extractor matched, for diagnostics.
func ExtractListName(payload any, domainKey string) string {
	key := strings.TrimSpace(domainKey)
	for _, extractor := range listExtractors {
		if _, ok := extractor.Extract(payload, key); ok {
			return extractor.Name
		}
	}
	return ""
}

// ExtractObject probes the decoded payload for a single record: the payload
// itself when it is a plain map, else the first map found under the given keys
// (checked at the top level and one level down inside "data").
func ExtractObject(payload any, keys ...string) (map[string]any, bool) {
	container := AsMap(payload)
	if container == nil {
		return nil, false
	}
	for _, key := range keys {
		if entity := AsMap(container[key]); entity != nil {
			return entity, true
		}
	}
	if inner := AsMap(container["data"]); inner != nil {
		for _, key := range keys {
			if entity := AsMap(inner[key]); entity != nil {
				return entity, true
			}
		}
		return inner, true
	}
	// A plain map that is not just a success wrapper counts as the record.
	if len(container) == 1 {
		if _, ok := container["success"]; ok {
			return nil, false
		}
	}
	return container, true
}

// MapFromPayload unwraps common envelope structures (e.g. {"data": {...}})
// into a plain map for normalization routines.
func MapFromPayload(value any) map[string]any {
	if value == nil {
		return nil
	}
	if typed, ok := value.(map[string]any); ok {
		if data, ok := typed["data"].(map[string]any); ok {
			return data
		}
		return typed
	}
	return nil
}
