package gateway

import (
	"context"

	"pestlinkgw/internal/domain"
)

// EnhancedKPIs fetches the dashboard KPI set.
func (g *Gateway) EnhancedKPIs(ctx context.Context) (domain.KPISnapshot, error) {
	return getOp(ctx, g, "/statistics/kpis/enhanced", domain.KPISnapshotFromPayload, "kpis", "statistics")
}

// TopPerformance fetches the technician leaderboard.
func (g *Gateway) TopPerformance(ctx context.Context) ([]domain.TopPerformer, error) {
	return listOp(ctx, g, "/statistics/top-performance", "performers", domain.TopPerformerFromPayload)
}

// RetentionRate fetches the customer retention figure.
func (g *Gateway) RetentionRate(ctx context.Context) (domain.RetentionRate, error) {
	return getOp(ctx, g, "/statistics/retention-rate", domain.RetentionRateFromPayload, "retention")
}

// VisitFrequency fetches the visit-frequency histogram.
func (g *Gateway) VisitFrequency(ctx context.Context) ([]domain.VisitFrequencyBucket, error) {
	return listOp(ctx, g, "/statistics/visit-frequency", "frequency", domain.VisitFrequencyBucketFromPayload)
}
