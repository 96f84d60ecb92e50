package gateway

import (
	"context"
	"net/http"
	"strings"

	"pestlinkgw/internal/domain"
	"pestlinkgw/internal/transport"
)

// ListBaitTypes returns the catalog of bait products.
func (g *Gateway) ListBaitTypes(ctx context.Context) ([]domain.BaitType, error) {
	return listOp(ctx, g, "/materials/bait-types", "baitTypes", domain.BaitTypeFromPayload)
}

// CreateBaitType registers a new bait product.
func (g *Gateway) CreateBaitType(ctx context.Context, input domain.MaterialInput) transport.Envelope {
	if strings.TrimSpace(input.Name) == "" {
		return transport.Failure("material name is required")
	}
	return g.rest.Do(ctx, http.MethodPost, "/materials/bait-types", input.Payload())
}

// ListChemicals returns the catalog of insecticide and disinfection products.
func (g *Gateway) ListChemicals(ctx context.Context) ([]domain.Chemical, error) {
	return listOp(ctx, g, "/materials/chemicals", "chemicals", domain.ChemicalFromPayload)
}

// CreateChemical registers a new chemical product.
func (g *Gateway) CreateChemical(ctx context.Context, input domain.MaterialInput) transport.Envelope {
	if strings.TrimSpace(input.Name) == "" {
		return transport.Failure("material name is required")
	}
	return g.rest.Do(ctx, http.MethodPost, "/materials/chemicals", input.Payload())
}
