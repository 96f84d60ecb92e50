package domain

import "pestlinkgw/internal/shared/normalization"

// KPISnapshot is the enhanced dashboard KPI set.
type KPISnapshot struct {
	TotalCustomers         int     `json:"totalCustomers"`
	ActiveAppointments     int     `json:"activeAppointments"`
	CompletedVisits        int     `json:"completedVisits"`
	Revenue                float64 `json:"revenue"`
	ComplianceExpiringSoon int     `json:"complianceExpiringSoon"`
}

// KPISnapshotFromPayload reconciles the raw KPI payload.
func KPISnapshotFromPayload(raw map[string]any) KPISnapshot {
	return KPISnapshot{
		TotalCustomers:         normalization.AsInt(firstOf(raw, "totalCustomers", "total_customers", "customers")),
		ActiveAppointments:     normalization.AsInt(firstOf(raw, "activeAppointments", "active_appointments", "appointments")),
		CompletedVisits:        normalization.AsInt(firstOf(raw, "completedVisits", "completed_visits", "visits")),
		Revenue:                normalization.FirstFloat(raw, "revenue", "totalRevenue", "total_revenue"),
		ComplianceExpiringSoon: normalization.AsInt(firstOf(raw, "complianceExpiringSoon", "compliance_expiring_soon", "expiringCompliance")),
	}
}

// TopPerformer is one row of the technician leaderboard.
type TopPerformer struct {
	TechnicianID   string  `json:"technicianId"`
	TechnicianName string  `json:"technicianName"`
	VisitsLogged   int     `json:"visitsLogged"`
	Revenue        float64 `json:"revenue,omitempty"`
}

// TopPerformerFromPayload reconciles one leaderboard row.
func TopPerformerFromPayload(raw map[string]any) TopPerformer {
	return TopPerformer{
		TechnicianID:   normalization.FirstID(raw, "technicianId", "id", "technician_id"),
		TechnicianName: normalization.FirstString(raw, "technicianName", "name", "technician_name"),
		VisitsLogged:   normalization.AsInt(firstOf(raw, "visitsLogged", "visits", "visitCount", "visit_count")),
		Revenue:        normalization.FirstFloat(raw, "revenue", "totalRevenue"),
	}
}

// RetentionRate is the customer retention figure for a period.
type RetentionRate struct {
	Period string  `json:"period"`
	Rate   float64 `json:"rate"`
}

// RetentionRateFromPayload reconciles the raw retention payload.
func RetentionRateFromPayload(raw map[string]any) RetentionRate {
	return RetentionRate{
		Period: normalization.FirstString(raw, "period", "range"),
		Rate:   normalization.FirstFloat(raw, "rate", "retentionRate", "retention_rate", "value"),
	}
}

// VisitFrequencyBucket is one histogram bucket of visit frequency.
type VisitFrequencyBucket struct {
	Label  string `json:"label"`
	Visits int    `json:"visits"`
}

// VisitFrequencyBucketFromPayload reconciles one frequency bucket.
func VisitFrequencyBucketFromPayload(raw map[string]any) VisitFrequencyBucket {
	return VisitFrequencyBucket{
		Label:  normalization.FirstString(raw, "label", "period", "month", "week"),
		Visits: normalization.AsInt(firstOf(raw, "visits", "count", "visitCount")),
	}
}

func firstOf(m map[string]any, keys ...string) any {
	value, _ := normalization.FirstValue(m, keys...)
	return value
}
