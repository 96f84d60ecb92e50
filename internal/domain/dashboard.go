package domain

import "pestlinkgw/internal/shared/normalization"

// Dashboard is the customer-portal home screen payload.
type Dashboard struct {
	CustomerID           string         `json:"customerId"`
	CustomerName         string         `json:"customerName"`
	NextAppointment      *Appointment   `json:"nextAppointment,omitempty"`
	RecentVisits         []Visit        `json:"recentVisits"`
	UnreadNotifications  []Notification `json:"unreadNotifications"`
	ComplianceValidUntil string         `json:"complianceValidUntil,omitempty"`
}

// DashboardFromPayload reconciles the raw dashboard payload. Sections the
// backend omits come back as empty slices, never nil.
func DashboardFromPayload(raw map[string]any) Dashboard {
	dashboard := Dashboard{
		CustomerID:           normalization.FirstID(raw, "customerId", "id", "customer_id"),
		CustomerName:         normalization.FirstString(raw, "customerName", "name", "customer_name"),
		ComplianceValidUntil: normalization.FirstString(raw, "complianceValidUntil", "compliance_valid_until"),
		RecentVisits:         []Visit{},
		UnreadNotifications:  []Notification{},
	}
	if next := normalization.AsMap(firstOf(raw, "nextAppointment", "next_appointment", "upcomingAppointment")); next != nil {
		appointment := AppointmentFromPayload(next)
		dashboard.NextAppointment = &appointment
	}
	if items, ok := normalization.FirstValue(raw, "recentVisits", "recent_visits", "visits"); ok {
		for _, item := range normalization.AsSlice(items) {
			if entry := normalization.AsMap(item); entry != nil {
				dashboard.RecentVisits = append(dashboard.RecentVisits, VisitFromPayload(entry))
			}
		}
	}
	if items, ok := normalization.FirstValue(raw, "unreadNotifications", "notifications"); ok {
		for _, item := range normalization.AsSlice(items) {
			if entry := normalization.AsMap(item); entry != nil {
				dashboard.UnreadNotifications = append(dashboard.UnreadNotifications, NotificationFromPayload(entry))
			}
		}
	}
	return dashboard
}

// ServiceRequest is a customer-raised request visible under "my requests".
type ServiceRequest struct {
	RequestID   string `json:"requestId"`
	Subject     string `json:"subject"`
	Status      string `json:"status"`
	RequestedAt string `json:"requestedAt,omitempty"`
}

// ServiceRequestFromPayload reconciles a raw backend element into a ServiceRequest.
func ServiceRequestFromPayload(raw map[string]any) ServiceRequest {
	return ServiceRequest{
		RequestID:   normalization.FirstID(raw, "requestId", "id", "request_id", "_id"),
		Subject:     normalization.FirstString(raw, "subject", "title", "type"),
		Status:      normalization.FirstString(raw, "status", "state"),
		RequestedAt: normalization.FirstString(raw, "requestedAt", "createdAt", "created_at"),
	}
}
