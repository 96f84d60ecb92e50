package gateway

import (
	"context"

	"pestlinkgw/internal/domain"
)

// Customer-portal reads. The backend resolves the customer from the bearer
// token, so these take no id.

// CustomerDashboard fetches the portal home payload.
func (g *Gateway) CustomerDashboard(ctx context.Context) (domain.Dashboard, error) {
	return getOp(ctx, g, "/customer/dashboard", domain.DashboardFromPayload, "dashboard")
}

// CustomerAppointments lists the authenticated customer's appointments.
func (g *Gateway) CustomerAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return listOp(ctx, g, "/customer/appointments", "appointments", domain.AppointmentFromPayload)
}

// CustomerNotifications lists the authenticated customer's notifications.
func (g *Gateway) CustomerNotifications(ctx context.Context) ([]domain.Notification, error) {
	return listOp(ctx, g, "/customer/notifications", "notifications", domain.NotificationFromPayload)
}

// CustomerRequests lists the authenticated customer's service requests.
func (g *Gateway) CustomerRequests(ctx context.Context) ([]domain.ServiceRequest, error) {
	return listOp(ctx, g, "/customer/my-requests", "requests", domain.ServiceRequestFromPayload)
}
