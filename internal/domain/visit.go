package domain

import "pestlinkgw/internal/shared/normalization"

// Visit is the stable visit-log record.
type Visit struct {
	VisitID         string   `json:"visitId"`
	AppointmentID   string   `json:"appointmentId"`
	CustomerID      string   `json:"customerId"`
	TechnicianID    string   `json:"technicianId"`
	Date            string   `json:"date"`
	WorkPerformed   string   `json:"workPerformed"`
	Materials       []string `json:"materials"`
	Recommendations string   `json:"recommendations,omitempty"`
}

// VisitFromPayload reconciles a raw backend element into a Visit.
func VisitFromPayload(raw map[string]any) Visit {
	visit := Visit{
		VisitID:         normalization.FirstID(raw, "visitId", "id", "visit_id", "_id"),
		AppointmentID:   normalization.FirstID(raw, "appointmentId", "appointment_id"),
		CustomerID:      normalization.FirstID(raw, "customerId", "customer_id"),
		TechnicianID:    normalization.FirstID(raw, "technicianId", "technician_id"),
		Date:            normalization.FirstString(raw, "date", "visitDate", "visit_date", "createdAt"),
		WorkPerformed:   normalization.FirstString(raw, "workPerformed", "work_performed", "description"),
		Recommendations: normalization.FirstString(raw, "recommendations", "recommendation"),
		Materials:       []string{},
	}
	if items, ok := normalization.FirstValue(raw, "materials", "materialsUsed", "materials_used"); ok {
		for _, item := range normalization.AsSlice(items) {
			switch typed := item.(type) {
			case string:
				if name := normalization.AsString(typed); name != "" {
					visit.Materials = append(visit.Materials, name)
				}
			case map[string]any:
				if name := normalization.FirstString(typed, "name", "material"); name != "" {
					visit.Materials = append(visit.Materials, name)
				}
			}
		}
	}
	return visit
}

// StationLogInput describes a bait-station check performed during a visit.
type StationLogInput struct {
	AppointmentID string
	StationID     string
	TechnicianID  string
	Condition     string
	Activity      string
	BaitTypeID    string
	Notes         string
}

func (in StationLogInput) Payload() map[string]any {
	return normalization.CleanOptional(map[string]any{
		"appointmentId": in.AppointmentID,
		"stationId":     in.StationID,
		"technicianId":  in.TechnicianID,
		"condition":     in.Condition,
		"activity":      in.Activity,
		"baitTypeId":    in.BaitTypeID,
		"notes":         in.Notes,
	})
}

// ServiceLogInput describes a chemical application performed during a visit.
type ServiceLogInput struct {
	AppointmentID string
	TechnicianID  string
	ChemicalID    string
	Dosage        string
	Area          string
	Notes         string
}

func (in ServiceLogInput) Payload() map[string]any {
	return normalization.CleanOptional(map[string]any{
		"appointmentId": in.AppointmentID,
		"technicianId":  in.TechnicianID,
		"chemicalId":    in.ChemicalID,
		"dosage":        in.Dosage,
		"area":          in.Area,
		"notes":         in.Notes,
	})
}

// VisitCompletionInput carries the full visit summary submitted when a
// technician closes out an appointment.
type VisitCompletionInput struct {
	AppointmentID   string
	TechnicianID    string
	WorkPerformed   string
	Materials       []string
	Recommendations string
}

func (in VisitCompletionInput) Payload() map[string]any {
	payload := normalization.CleanOptional(map[string]any{
		"appointmentId":   in.AppointmentID,
		"technicianId":    in.TechnicianID,
		"workPerformed":   in.WorkPerformed,
		"recommendations": in.Recommendations,
	})
	if len(in.Materials) > 0 {
		payload["materials"] = in.Materials
	}
	return payload
}

// VisitReport is the rendered report for a completed visit.
type VisitReport struct {
	VisitID      string `json:"visitId"`
	ReportURL    string `json:"reportUrl,omitempty"`
	Summary      string `json:"summary,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	Date         string `json:"date,omitempty"`
}

// VisitReportFromPayload reconciles a raw report payload.
func VisitReportFromPayload(raw map[string]any) VisitReport {
	return VisitReport{
		VisitID:      normalization.FirstID(raw, "visitId", "id", "visit_id"),
		ReportURL:    normalization.FirstString(raw, "reportUrl", "report_url", "url"),
		Summary:      normalization.FirstString(raw, "summary", "description"),
		CustomerName: normalization.FirstString(raw, "customerName", "customer_name"),
		Date:         normalization.FirstString(raw, "date", "visitDate", "createdAt"),
	}
}
