package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"pestlinkgw/internal/domain"
)

func TestListAppointmentsDomainFieldShape(t *testing.T) {
	body := `{"success":true,"appointments":[
		{"id":"12","date":"2025-03-04","status":"scheduled","customer":{"id":"7","name":"Acme"}}
	]}`
	gw, _ := newTestGateway(t, jsonHandler(body))

	appointments, err := gw.ListAppointments(context.Background())
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("appointments = %+v", appointments)
	}
	if appointments[0].CustomerName != "Acme" || appointments[0].ScheduledAt != "2025-03-04" {
		t.Fatalf("appointments[0] = %+v", appointments[0])
	}
}

func TestRescheduleOperations(t *testing.T) {
	type call struct {
		method, path string
		payload      map[string]any
	}
	var calls []call
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		calls = append(calls, call{r.Method, r.URL.Path, payload})
		w.Write([]byte(`{"success":true}`))
	}))

	ctx := context.Background()
	if env := gw.CancelAppointment(ctx, "12", "customer away"); !env.Success {
		t.Fatalf("CancelAppointment: %+v", env)
	}
	if env := gw.RequestReschedule(ctx, "12", "2025-03-10", "rain"); !env.Success {
		t.Fatalf("RequestReschedule: %+v", env)
	}
	if env := gw.SetRescheduleStatus(ctx, "12", "approved"); !env.Success {
		t.Fatalf("SetRescheduleStatus: %+v", env)
	}

	if calls[0].method != http.MethodPut || calls[0].path != "/api/appointments/12/cancel" {
		t.Fatalf("cancel call = %+v", calls[0])
	}
	if calls[1].path != "/api/appointments/12/reschedule" || calls[1].payload["rescheduleDate"] != "2025-03-10" {
		t.Fatalf("reschedule call = %+v", calls[1])
	}
	if calls[2].path != "/api/appointments/12/reschedule-status" || calls[2].payload["status"] != "approved" {
		t.Fatalf("status call = %+v", calls[2])
	}
}

func TestRescheduleValidation(t *testing.T) {
	var called bool
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	ctx := context.Background()
	if env := gw.RequestReschedule(ctx, "12", "", "rain"); env.Success {
		t.Fatal("missing requested date should fail locally")
	}
	if env := gw.SetRescheduleStatus(ctx, "", "approved"); env.Success {
		t.Fatal("missing id should fail locally")
	}
	if env := gw.CreateAppointment(ctx, domain.AppointmentInput{CustomerID: "7"}); env.Success {
		t.Fatal("missing scheduled date should fail locally")
	}
	if called {
		t.Fatal("validation failures must not hit the network")
	}
}
