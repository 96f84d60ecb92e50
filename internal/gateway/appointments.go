package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"pestlinkgw/internal/domain"
	"pestlinkgw/internal/shared/normalization"
	"pestlinkgw/internal/transport"
)

// ListAppointments returns all appointments.
func (g *Gateway) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return listOp(ctx, g, "/appointments", "appointments", domain.AppointmentFromPayload)
}

// GetAppointment fetches a single appointment by id.
func (g *Gateway) GetAppointment(ctx context.Context, appointmentID string) (domain.Appointment, error) {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return domain.Appointment{}, ErrRequestFailed
	}
	return getOp(ctx, g, "/appointments/"+url.PathEscape(id), domain.AppointmentFromPayload, "appointment")
}

// CreateAppointment schedules a new appointment.
func (g *Gateway) CreateAppointment(ctx context.Context, input domain.AppointmentInput) transport.Envelope {
	if strings.TrimSpace(input.CustomerID) == "" || strings.TrimSpace(input.ScheduledAt) == "" {
		return transport.Failure("customer id and scheduled date are required")
	}
	return g.rest.Do(ctx, http.MethodPost, "/appointments", input.Payload())
}

// UpdateAppointment updates an existing appointment.
func (g *Gateway) UpdateAppointment(ctx context.Context, appointmentID string, input domain.AppointmentInput) transport.Envelope {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return transport.Failure("appointment id is required")
	}
	return g.rest.Do(ctx, http.MethodPut, "/appointments/"+url.PathEscape(id), input.Payload())
}

// DeleteAppointment removes an appointment.
func (g *Gateway) DeleteAppointment(ctx context.Context, appointmentID string) transport.Envelope {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return transport.Failure("appointment id is required")
	}
	return g.rest.Do(ctx, http.MethodDelete, "/appointments/"+url.PathEscape(id), nil)
}

// CancelAppointment marks an appointment as cancelled without removing it.
func (g *Gateway) CancelAppointment(ctx context.Context, appointmentID, reason string) transport.Envelope {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return transport.Failure("appointment id is required")
	}
	payload := normalization.CleanOptional(map[string]any{"reason": reason})
	return g.rest.Do(ctx, http.MethodPut, "/appointments/"+url.PathEscape(id)+"/cancel", payload)
}

// RequestReschedule files a reschedule request for an appointment.
func (g *Gateway) RequestReschedule(ctx context.Context, appointmentID, requestedDate, reason string) transport.Envelope {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return transport.Failure("appointment id is required")
	}
	if strings.TrimSpace(requestedDate) == "" {
		return transport.Failure("requested date is required")
	}
	payload := normalization.CleanOptional(map[string]any{
		"rescheduleDate": requestedDate,
		"reason":         reason,
	})
	return g.rest.Do(ctx, http.MethodPut, "/appointments/"+url.PathEscape(id)+"/reschedule", payload)
}

// SetRescheduleStatus approves or rejects a pending reschedule request.
func (g *Gateway) SetRescheduleStatus(ctx context.Context, appointmentID, status string) transport.Envelope {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return transport.Failure("appointment id is required")
	}
	if strings.TrimSpace(status) == "" {
		return transport.Failure("reschedule status is required")
	}
	payload := map[string]any{"status": strings.TrimSpace(status)}
	return g.rest.Do(ctx, http.MethodPut, "/appointments/"+url.PathEscape(id)+"/reschedule-status", payload)
}
