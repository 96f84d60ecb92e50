package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"pestlinkgw/internal/domain"
	"pestlinkgw/internal/transport"
)

// ListTechnicians returns all technicians.
func (g *Gateway) ListTechnicians(ctx context.Context) ([]domain.Technician, error) {
	return listOp(ctx, g, "/technicians", "technicians", domain.TechnicianFromPayload)
}

// GetTechnician fetches a single technician by id.
func (g *Gateway) GetTechnician(ctx context.Context, technicianID string) (domain.Technician, error) {
	id := strings.TrimSpace(technicianID)
	if id == "" {
		return domain.Technician{}, ErrRequestFailed
	}
	return getOp(ctx, g, "/technicians/"+url.PathEscape(id), domain.TechnicianFromPayload, "technician")
}

// CreateTechnician registers a new technician.
func (g *Gateway) CreateTechnician(ctx context.Context, input domain.TechnicianInput) transport.Envelope {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return transport.Failure("technician name and email are required")
	}
	return g.rest.Do(ctx, http.MethodPost, "/technicians", input.Payload())
}

// UpdateTechnician updates an existing technician.
func (g *Gateway) UpdateTechnician(ctx context.Context, technicianID string, input domain.TechnicianInput) transport.Envelope {
	id := strings.TrimSpace(technicianID)
	if id == "" {
		return transport.Failure("technician id is required")
	}
	return g.rest.Do(ctx, http.MethodPut, "/technicians/"+url.PathEscape(id), input.Payload())
}

// DeleteTechnician removes a technician.
func (g *Gateway) DeleteTechnician(ctx context.Context, technicianID string) transport.Envelope {
	id := strings.TrimSpace(technicianID)
	if id == "" {
		return transport.Failure("technician id is required")
	}
	return g.rest.Do(ctx, http.MethodDelete, "/technicians/"+url.PathEscape(id), nil)
}
