package gateway

import (
	"context"
	"net/http"
	"testing"
)

func TestCustomerDashboardNormalizes(t *testing.T) {
	body := `{
		"success": true,
		"dashboard": {
			"customerId": 7,
			"customerName": "Acme",
			"nextAppointment": {"id": "12", "date": "2025-03-04", "status": "scheduled"},
			"recentVisits": [{"visit_id": 9}],
			"notifications": [{"id": 1, "title": "Compliance expiring"}]
		}
	}`
	gw, _ := newTestGateway(t, jsonHandler(body))

	dashboard, err := gw.CustomerDashboard(context.Background())
	if err != nil {
		t.Fatalf("CustomerDashboard: %v", err)
	}
	if dashboard.CustomerID != "7" {
		t.Fatalf("CustomerID = %q", dashboard.CustomerID)
	}
	if dashboard.NextAppointment == nil || dashboard.NextAppointment.AppointmentID != "12" {
		t.Fatalf("NextAppointment = %+v", dashboard.NextAppointment)
	}
	if len(dashboard.RecentVisits) != 1 || len(dashboard.UnreadNotifications) != 1 {
		t.Fatalf("sections = %+v", dashboard)
	}
}

func TestCustomerDashboardEmptySectionsNeverNil(t *testing.T) {
	gw, _ := newTestGateway(t, jsonHandler(`{"success":true,"dashboard":{"customerId":"7"}}`))
	dashboard, err := gw.CustomerDashboard(context.Background())
	if err != nil {
		t.Fatalf("CustomerDashboard: %v", err)
	}
	if dashboard.RecentVisits == nil || dashboard.UnreadNotifications == nil {
		t.Fatal("dashboard sections must be empty slices, not nil")
	}
}

func TestCustomerPortalReadPaths(t *testing.T) {
	var paths []string
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))

	ctx := context.Background()
	if _, err := gw.CustomerAppointments(ctx); err != nil {
		t.Fatalf("CustomerAppointments: %v", err)
	}
	if _, err := gw.CustomerNotifications(ctx); err != nil {
		t.Fatalf("CustomerNotifications: %v", err)
	}
	if _, err := gw.CustomerRequests(ctx); err != nil {
		t.Fatalf("CustomerRequests: %v", err)
	}

	expected := []string{"/api/customer/appointments", "/api/customer/notifications", "/api/customer/my-requests"}
	for i := range expected {
		if paths[i] != expected[i] {
			t.Fatalf("paths[%d] = %q, expected %q", i, paths[i], expected[i])
		}
	}
}

func TestNotificationMutationPaths(t *testing.T) {
	var paths []string
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"success":true}`))
	}))

	ctx := context.Background()
	if env := gw.MarkNotificationRead(ctx, "n-1"); !env.Success {
		t.Fatalf("MarkNotificationRead: %+v", env)
	}
	if env := gw.MarkAllNotificationsRead(ctx); !env.Success {
		t.Fatalf("MarkAllNotificationsRead: %+v", env)
	}
	if env := gw.ClearNotifications(ctx); !env.Success {
		t.Fatalf("ClearNotifications: %+v", env)
	}
	if env := gw.MarkNotificationRead(ctx, ""); env.Success {
		t.Fatal("blank notification id should fail locally")
	}

	expected := []string{
		"POST /api/notifications/n-1/mark-read",
		"POST /api/notifications/mark-all-read",
		"POST /api/notifications/clear",
	}
	if len(paths) != len(expected) {
		t.Fatalf("paths = %v", paths)
	}
	for i := range expected {
		if paths[i] != expected[i] {
			t.Fatalf("paths[%d] = %q, expected %q", i, paths[i], expected[i])
		}
	}
}
