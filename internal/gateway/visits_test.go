package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"pestlinkgw/internal/domain"
)

// chainBackend records the order of fallback attempts and answers each path
// with a scripted status.
type chainBackend struct {
	responses map[string]int // path -> status; missing paths get 404
	attempts  []string
	payloads  []map[string]any
}

func (b *chainBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.attempts = append(b.attempts, r.URL.Path)
	var payload map[string]any
	json.NewDecoder(r.Body).Decode(&payload)
	b.payloads = append(b.payloads, payload)

	status, ok := b.responses[r.URL.Path]
	if !ok {
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status < 300 {
		w.Write([]byte(`{"success":true,"id":"log-1"}`))
	} else {
		w.Write([]byte(`{"success":false,"error":"endpoint gone"}`))
	}
}

func stationInput() domain.StationLogInput {
	return domain.StationLogInput{
		AppointmentID: "12",
		StationID:     "st-4",
		TechnicianID:  "3",
		Condition:     "intact",
		Activity:      "bait taken",
	}
}

func TestStationLogFallbackStopsAtFirstSuccess(t *testing.T) {
	backend := &chainBackend{responses: map[string]int{
		"/api/station-logs": http.StatusNotFound,
		"/api/log-station":  http.StatusOK,
		"/api/log":          http.StatusOK,
	}}
	gw, _ := newTestGateway(t, backend)

	env := gw.LogStationCheck(context.Background(), stationInput())
	if !env.Success {
		t.Fatalf("envelope = %+v, expected success from second endpoint", env)
	}
	expected := []string{"/api/station-logs", "/api/log-station"}
	if len(backend.attempts) != len(expected) {
		t.Fatalf("attempts = %v, third endpoint must never be called after a success", backend.attempts)
	}
	for i := range expected {
		if backend.attempts[i] != expected[i] {
			t.Fatalf("attempts[%d] = %q, expected %q", i, backend.attempts[i], expected[i])
		}
	}
}

func TestStationLogFallbackReachesGenericEndpoint(t *testing.T) {
	backend := &chainBackend{responses: map[string]int{
		"/api/station-logs": http.StatusNotFound,
		"/api/log-station":  http.StatusInternalServerError,
		"/api/log":          http.StatusOK,
	}}
	gw, _ := newTestGateway(t, backend)

	env := gw.LogStationCheck(context.Background(), stationInput())
	if !env.Success {
		t.Fatalf("envelope = %+v, expected success from generic endpoint", env)
	}
	if len(backend.attempts) != 3 || backend.attempts[2] != "/api/log" {
		t.Fatalf("attempts = %v", backend.attempts)
	}

	generic := backend.payloads[2]
	if generic["logType"] != "station" {
		t.Fatalf("generic payload missing discriminator: %v", generic)
	}
	if _, ok := backend.payloads[0]["logType"]; ok {
		t.Fatal("discriminator must not leak into the dedicated endpoints")
	}

	// The same client reference travels with every attempt so the backend can
	// deduplicate a write that succeeded but answered too late.
	reference := backend.payloads[0]["clientReference"]
	if reference == "" || reference == nil {
		t.Fatal("clientReference missing from first attempt")
	}
	for i, payload := range backend.payloads {
		if payload["clientReference"] != reference {
			t.Fatalf("attempt %d used a different clientReference", i)
		}
	}
}

func TestStationLogAllEndpointsFailReturnsLastFailure(t *testing.T) {
	backend := &chainBackend{responses: map[string]int{}}
	gw, _ := newTestGateway(t, backend)

	env := gw.LogStationCheck(context.Background(), stationInput())
	if env.Success {
		t.Fatal("expected failure envelope when every endpoint fails")
	}
	if len(backend.attempts) != 3 {
		t.Fatalf("attempts = %v, expected all three endpoints tried", backend.attempts)
	}
	if env.Error != "endpoint gone" {
		t.Fatalf("Error = %q, expected the last failure detail", env.Error)
	}
}

func TestStationLogValidation(t *testing.T) {
	backend := &chainBackend{responses: map[string]int{}}
	gw, _ := newTestGateway(t, backend)

	env := gw.LogStationCheck(context.Background(), domain.StationLogInput{AppointmentID: "12"})
	if env.Success {
		t.Fatal("missing station id should fail locally")
	}
	if len(backend.attempts) != 0 {
		t.Fatal("validation failure must not hit the network")
	}
}

func TestCompleteVisitFallsBackToGenericLog(t *testing.T) {
	backend := &chainBackend{responses: map[string]int{
		"/api/visits/log-complete": http.StatusNotFound,
		"/api/log":                 http.StatusOK,
	}}
	gw, _ := newTestGateway(t, backend)

	env := gw.CompleteVisit(context.Background(), domain.VisitCompletionInput{
		AppointmentID: "12",
		TechnicianID:  "3",
		WorkPerformed: "full perimeter treatment",
		Materials:     []string{"Cypermethrin 10%"},
	})
	if !env.Success {
		t.Fatalf("envelope = %+v", env)
	}
	if backend.payloads[1]["logType"] != "visit-complete" {
		t.Fatalf("generic payload missing discriminator: %v", backend.payloads[1])
	}
}

func TestLogServiceVisitSingleEndpoint(t *testing.T) {
	backend := &chainBackend{responses: map[string]int{"/api/log-service": http.StatusOK}}
	gw, _ := newTestGateway(t, backend)

	env := gw.LogServiceVisit(context.Background(), domain.ServiceLogInput{
		AppointmentID: "12",
		ChemicalID:    "c-1",
		Dosage:        "30ml/10L",
	})
	if !env.Success {
		t.Fatalf("envelope = %+v", env)
	}
	if len(backend.attempts) != 1 || backend.attempts[0] != "/api/log-service" {
		t.Fatalf("attempts = %v", backend.attempts)
	}
}

func TestVisitsByAppointmentNormalizes(t *testing.T) {
	gw, _ := newTestGateway(t, jsonHandler(`{"success":true,"visits":[{"visit_id":9,"workPerformed":"bait refresh"}]}`))
	visits, err := gw.VisitsByAppointment(context.Background(), "12")
	if err != nil {
		t.Fatalf("VisitsByAppointment: %v", err)
	}
	if len(visits) != 1 || visits[0].VisitID != "9" {
		t.Fatalf("visits = %+v", visits)
	}
}

func TestVisitsByCustomerBlankIDShortCircuits(t *testing.T) {
	var called bool
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	visits, err := gw.VisitsByCustomer(context.Background(), " ")
	if err == nil {
		t.Fatal("blank id should error")
	}
	if visits == nil || len(visits) != 0 {
		t.Fatalf("visits = %v, expected empty slice", visits)
	}
	if called {
		t.Fatal("blank id must not hit the network")
	}
}
