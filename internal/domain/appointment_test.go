package domain

import "testing"

func TestAppointmentFromPayloadNestedEntities(t *testing.T) {
	raw := map[string]any{
		"id":     float64(12),
		"date":   "2025-03-04T09:00:00Z",
		"status": "scheduled",
		"customer": map[string]any{
			"id":   "7",
			"name": "Acme",
		},
		"technician": map[string]any{
			"technicianId": float64(3),
			"name":         "Jordan",
		},
		"price": "150.50",
	}
	got := AppointmentFromPayload(raw)
	if got.AppointmentID != "12" {
		t.Fatalf("AppointmentID = %q", got.AppointmentID)
	}
	if got.CustomerID != "7" || got.CustomerName != "Acme" {
		t.Fatalf("customer fields = %q/%q", got.CustomerID, got.CustomerName)
	}
	if got.TechnicianID != "3" || got.TechnicianName != "Jordan" {
		t.Fatalf("technician fields = %q/%q", got.TechnicianID, got.TechnicianName)
	}
	if got.ScheduledAt != "2025-03-04T09:00:00Z" {
		t.Fatalf("ScheduledAt = %q", got.ScheduledAt)
	}
	if got.Price != 150.50 {
		t.Fatalf("Price = %v, expected numeric string to coerce", got.Price)
	}
}

func TestAppointmentFromPayloadOptionalAbsence(t *testing.T) {
	got := AppointmentFromPayload(map[string]any{"id": "1"})
	if got.ServiceType != "" || got.Price != 0 || got.RescheduleRequested {
		t.Fatalf("absent optionals should be zero values: %+v", got)
	}
}

func TestAppointmentInputPayload(t *testing.T) {
	payload := AppointmentInput{
		CustomerID:  "7",
		ScheduledAt: "2025-03-04",
		ServiceType: "",
		Price:       0,
	}.Payload()

	if _, ok := payload["serviceType"]; ok {
		t.Fatal("blank serviceType should be omitted")
	}
	if _, ok := payload["price"]; ok {
		t.Fatal("zero price should be omitted")
	}
	if payload["customerId"] != "7" {
		t.Fatalf("customerId = %v", payload["customerId"])
	}
}

func TestVisitFromPayloadMaterials(t *testing.T) {
	raw := map[string]any{
		"visit_id": "9",
		"materials": []any{
			"Bromadiolone blocks",
			map[string]any{"name": "Cypermethrin 10%"},
			map[string]any{"quantity": float64(2)},
		},
	}
	got := VisitFromPayload(raw)
	if got.VisitID != "9" {
		t.Fatalf("VisitID = %q", got.VisitID)
	}
	if len(got.Materials) != 2 {
		t.Fatalf("Materials = %v, expected the two named entries", got.Materials)
	}
}

func TestVisitFromPayloadEmptyMaterialsNeverNil(t *testing.T) {
	got := VisitFromPayload(map[string]any{"id": "1"})
	if got.Materials == nil {
		t.Fatal("Materials must be an empty slice, not nil")
	}
}
