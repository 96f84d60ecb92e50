package domain

import "pestlinkgw/internal/shared/normalization"

// Appointment is the stable appointment record. Optional domain fields are
// zero-valued when the backend omits them; they are never surfaced as
// placeholder values.
type Appointment struct {
	AppointmentID       string  `json:"appointmentId"`
	CustomerID          string  `json:"customerId"`
	CustomerName        string  `json:"customerName"`
	TechnicianID        string  `json:"technicianId"`
	TechnicianName      string  `json:"technicianName"`
	ScheduledAt         string  `json:"scheduledAt"`
	Status              string  `json:"status"`
	ServiceType         string  `json:"serviceType,omitempty"`
	Price               float64 `json:"price,omitempty"`
	InsecticideDetails  string  `json:"insecticideDetails,omitempty"`
	DisinfectionDetails string  `json:"disinfectionDetails,omitempty"`
	ComplianceDate      string  `json:"complianceDate,omitempty"`
	RescheduleRequested bool    `json:"rescheduleRequested,omitempty"`
	RescheduleDate      string  `json:"rescheduleDate,omitempty"`
	RescheduleStatus    string  `json:"rescheduleStatus,omitempty"`
	Notes               string  `json:"notes,omitempty"`
}

// AppointmentFromPayload reconciles a raw backend element into an Appointment.
func AppointmentFromPayload(raw map[string]any) Appointment {
	appointment := Appointment{
		AppointmentID:       normalization.FirstID(raw, "appointmentId", "id", "appointment_id", "_id"),
		CustomerID:          normalization.FirstID(raw, "customerId", "customer_id"),
		CustomerName:        normalization.FirstString(raw, "customerName", "customer_name"),
		TechnicianID:        normalization.FirstID(raw, "technicianId", "technician_id"),
		TechnicianName:      normalization.FirstString(raw, "technicianName", "technician_name"),
		ScheduledAt:         normalization.FirstString(raw, "scheduledAt", "date", "appointmentDate", "appointment_date"),
		Status:              normalization.FirstString(raw, "status", "state"),
		ServiceType:         normalization.FirstString(raw, "serviceType", "service_type", "service"),
		Price:               normalization.FirstFloat(raw, "price", "servicePrice", "service_price"),
		InsecticideDetails:  normalization.FirstString(raw, "insecticideDetails", "insecticide_details", "insecticide"),
		DisinfectionDetails: normalization.FirstString(raw, "disinfectionDetails", "disinfection_details", "disinfection"),
		ComplianceDate:      normalization.FirstString(raw, "complianceDate", "compliance_date", "complianceValidUntil"),
		RescheduleDate:      normalization.FirstString(raw, "rescheduleDate", "reschedule_date", "requestedDate"),
		RescheduleStatus:    normalization.FirstString(raw, "rescheduleStatus", "reschedule_status"),
		Notes:               normalization.FirstString(raw, "notes", "comments"),
	}
	// Nested customer/technician objects override flat fields when present.
	if entity := normalization.AsMap(raw["customer"]); entity != nil {
		if id := normalization.FirstID(entity, "customerId", "id"); id != "" {
			appointment.CustomerID = id
		}
		if name := normalization.FirstString(entity, "name", "customerName"); name != "" {
			appointment.CustomerName = name
		}
	}
	if entity := normalization.AsMap(raw["technician"]); entity != nil {
		if id := normalization.FirstID(entity, "technicianId", "id"); id != "" {
			appointment.TechnicianID = id
		}
		if name := normalization.FirstString(entity, "name", "technicianName"); name != "" {
			appointment.TechnicianName = name
		}
	}
	if value, ok := normalization.FirstValue(raw, "rescheduleRequested", "reschedule_requested"); ok {
		appointment.RescheduleRequested = normalization.AsBool(value)
	}
	return appointment
}

// AppointmentInput carries the fields a caller may supply when creating or
// updating an appointment.
type AppointmentInput struct {
	CustomerID          string
	TechnicianID        string
	ScheduledAt         string
	ServiceType         string
	Price               float64
	InsecticideDetails  string
	DisinfectionDetails string
	ComplianceDate      string
	Notes               string
}

func (in AppointmentInput) Payload() map[string]any {
	payload := map[string]any{
		"customerId":          in.CustomerID,
		"technicianId":        in.TechnicianID,
		"scheduledAt":         in.ScheduledAt,
		"serviceType":         in.ServiceType,
		"insecticideDetails":  in.InsecticideDetails,
		"disinfectionDetails": in.DisinfectionDetails,
		"complianceDate":      in.ComplianceDate,
		"notes":               in.Notes,
	}
	if in.Price > 0 {
		payload["price"] = in.Price
	}
	return normalization.CleanOptional(payload)
}
