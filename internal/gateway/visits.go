package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"pestlinkgw/internal/domain"
	"pestlinkgw/internal/transport"
)

// LogStationCheck records a bait-station inspection. The station-log endpoint
// has lived under three different paths across backend deployments, so the
// write walks the fallback chain: the dedicated path first, then the renamed
// one, then the generic log endpoint with a discriminator.
func (g *Gateway) LogStationCheck(ctx context.Context, input domain.StationLogInput) transport.Envelope {
	if strings.TrimSpace(input.StationID) == "" {
		return transport.Failure("station id is required")
	}
	return g.postWithFallback(ctx, input.Payload(), []fallbackStep{
		{path: "/station-logs"},
		{path: "/log-station"},
		{path: "/log", transform: withLogType("station")},
	})
}

// LogServiceVisit records a chemical application. Single stable endpoint.
func (g *Gateway) LogServiceVisit(ctx context.Context, input domain.ServiceLogInput) transport.Envelope {
	if strings.TrimSpace(input.AppointmentID) == "" {
		return transport.Failure("appointment id is required")
	}
	return g.rest.Do(ctx, http.MethodPost, "/log-service", input.Payload())
}

// CompleteVisit submits the final visit summary, falling back to the generic
// log endpoint when the dedicated one is absent.
func (g *Gateway) CompleteVisit(ctx context.Context, input domain.VisitCompletionInput) transport.Envelope {
	if strings.TrimSpace(input.AppointmentID) == "" {
		return transport.Failure("appointment id is required")
	}
	return g.postWithFallback(ctx, input.Payload(), []fallbackStep{
		{path: "/visits/log-complete"},
		{path: "/log", transform: withLogType("visit-complete")},
	})
}

func withLogType(logType string) func(map[string]any) map[string]any {
	return func(payload map[string]any) map[string]any {
		payload["logType"] = logType
		return payload
	}
}

// VisitsByAppointment returns the visits logged against one appointment.
func (g *Gateway) VisitsByAppointment(ctx context.Context, appointmentID string) ([]domain.Visit, error) {
	id := strings.TrimSpace(appointmentID)
	if id == "" {
		return []domain.Visit{}, ErrRequestFailed
	}
	return listOp(ctx, g, "/visits/by-appointment/"+url.PathEscape(id), "visits", domain.VisitFromPayload)
}

// VisitsByCustomer returns a customer's full visit history.
func (g *Gateway) VisitsByCustomer(ctx context.Context, customerID string) ([]domain.Visit, error) {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return []domain.Visit{}, ErrRequestFailed
	}
	return listOp(ctx, g, "/visits/customer/"+url.PathEscape(id), "visits", domain.VisitFromPayload)
}

// VisitReport fetches the rendered report for a completed visit.
func (g *Gateway) VisitReport(ctx context.Context, visitID string) (domain.VisitReport, error) {
	id := strings.TrimSpace(visitID)
	if id == "" {
		return domain.VisitReport{}, ErrRequestFailed
	}
	return getOp(ctx, g, "/reports/visit/"+url.PathEscape(id), domain.VisitReportFromPayload, "report", "visit")
}
