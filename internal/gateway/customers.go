package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"pestlinkgw/internal/domain"
	"pestlinkgw/internal/transport"
)

// ListCustomers returns all active customers. Failures and unknown shapes
// degrade to an empty slice; the error stays observable for telemetry.
func (g *Gateway) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return listOp(ctx, g, "/customers", "customers", domain.CustomerFromPayload)
}

// GetCustomer fetches a single customer by id.
func (g *Gateway) GetCustomer(ctx context.Context, customerID string) (domain.Customer, error) {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return domain.Customer{}, ErrRequestFailed
	}
	return getOp(ctx, g, "/customers/"+url.PathEscape(id), domain.CustomerFromPayload, "customer")
}

// CreateCustomer registers a new customer.
func (g *Gateway) CreateCustomer(ctx context.Context, input domain.CustomerInput) transport.Envelope {
	if strings.TrimSpace(input.CustomerName) == "" {
		return transport.Failure("customer name is required")
	}
	return g.rest.Do(ctx, http.MethodPost, "/customers", input.Payload())
}

// UpdateCustomer updates an existing customer.
func (g *Gateway) UpdateCustomer(ctx context.Context, customerID string, input domain.CustomerInput) transport.Envelope {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return transport.Failure("customer id is required")
	}
	return g.rest.Do(ctx, http.MethodPut, "/customers/"+url.PathEscape(id), input.Payload())
}

// DeleteCustomer soft-deletes a customer.
func (g *Gateway) DeleteCustomer(ctx context.Context, customerID string) transport.Envelope {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return transport.Failure("customer id is required")
	}
	return g.rest.Do(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id), nil)
}

// ListDeletedCustomers returns soft-deleted customers awaiting restore or purge.
func (g *Gateway) ListDeletedCustomers(ctx context.Context) ([]domain.Customer, error) {
	return listOp(ctx, g, "/customers/deleted", "customers", domain.CustomerFromPayload)
}

// RestoreCustomer brings a soft-deleted customer back.
func (g *Gateway) RestoreCustomer(ctx context.Context, customerID string) transport.Envelope {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return transport.Failure("customer id is required")
	}
	return g.rest.Do(ctx, http.MethodPost, "/customers/"+url.PathEscape(id)+"/restore", nil)
}

// PurgeCustomer permanently removes a soft-deleted customer.
func (g *Gateway) PurgeCustomer(ctx context.Context, customerID string) transport.Envelope {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return transport.Failure("customer id is required")
	}
	return g.rest.Do(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id)+"/permanent", nil)
}
