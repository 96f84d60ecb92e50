// Package domain holds the flat view models the rest of the application
// consumes. Every record carries a stable field-name contract no matter which
// backend spelling supplied the value; the FromPayload constructors do the
// coalescing.
package domain

import "pestlinkgw/internal/shared/normalization"

// Customer is the stable customer record.
type Customer struct {
	CustomerID           string        `json:"customerId"`
	CustomerName         string        `json:"customerName"`
	Email                string        `json:"email"`
	Address              string        `json:"address"`
	Telephone            string        `json:"telephone"`
	ComplianceValidUntil string        `json:"complianceValidUntil"`
	Maps                 []CustomerMap `json:"maps"`
}

// CustomerMap is a station/floor plan attached to a customer site.
type CustomerMap struct {
	MapID string `json:"mapId"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// CustomerFromPayload reconciles a raw backend element into a Customer,
// coalescing across the field spellings the backend has used over time and
// defaulting every missing optional.
func CustomerFromPayload(raw map[string]any) Customer {
	customer := Customer{
		CustomerID:           normalization.FirstID(raw, "customerId", "id", "customer_id", "_id"),
		CustomerName:         normalization.FirstString(raw, "customerName", "name", "customer_name", "fullName"),
		Email:                normalization.FirstString(raw, "email", "customerEmail", "customer_email"),
		Address:              normalization.FirstString(raw, "address", "customerAddress", "customer_address"),
		Telephone:            normalization.FirstString(raw, "telephone", "phone", "phoneNumber", "customer_phone"),
		ComplianceValidUntil: normalization.FirstString(raw, "complianceValidUntil", "compliance_valid_until", "complianceDate"),
		Maps:                 []CustomerMap{},
	}
	if items, ok := normalization.FirstValue(raw, "maps", "stationMaps", "station_maps"); ok {
		for _, item := range normalization.AsSlice(items) {
			entry := normalization.AsMap(item)
			if entry == nil {
				continue
			}
			customer.Maps = append(customer.Maps, CustomerMap{
				MapID: normalization.FirstID(entry, "mapId", "id", "map_id"),
				Name:  normalization.FirstString(entry, "name", "title"),
				URL:   normalization.FirstString(entry, "url", "imageUrl", "image_url"),
			})
		}
	}
	return customer
}

// CustomerInput carries the fields a caller may supply when creating or
// updating a customer.
type CustomerInput struct {
	CustomerName         string
	Email                string
	Address              string
	Telephone            string
	ComplianceValidUntil string
}

// Payload renders the input as the wire payload, omitting blank optionals so
// absent fields never travel as placeholders.
func (in CustomerInput) Payload() map[string]any {
	return normalization.CleanOptional(map[string]any{
		"name":                 in.CustomerName,
		"email":                in.Email,
		"address":              in.Address,
		"telephone":            in.Telephone,
		"complianceValidUntil": in.ComplianceValidUntil,
	})
}
