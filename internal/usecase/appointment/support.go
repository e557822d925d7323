package appointment

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domain "github.com/BruksfildServices01/anami-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/anami-scheduler/internal/httperr"
	"github.com/BruksfildServices01/anami-scheduler/internal/models"
	"github.com/BruksfildServices01/anami-scheduler/internal/telemetry"
)

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return telemetry.Tracer().Start(ctx, "appointment."+name, trace.WithAttributes(attrs...))
}

// finishSpan marks unexpected failures on span. Business rejections are
// expected outcomes and only get recorded as an attribute.
func finishSpan(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		return
	}
	if code, ok := httperr.BusinessCode(err); ok {
		span.SetAttributes(attribute.String("business.code", code))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// loadCatalog fetches the active services referenced by sel. Manual
// selections need no catalog.
func loadCatalog(
	ctx context.Context,
	repo domain.Repository,
	sel domain.Selection,
) (map[uuid.UUID]models.Service, error) {

	cs, ok := sel.(domain.CatalogSelection)
	if !ok || len(cs.ServiceIDs) == 0 {
		return nil, nil
	}

	services, err := repo.FindServicesByIDs(ctx, uniqueIDs(cs.ServiceIDs))
	if err != nil {
		return nil, err
	}

	catalog := make(map[uuid.UUID]models.Service, len(services))
	for _, s := range services {
		catalog[s.ID] = s
	}
	return catalog, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Pricing bundles the price table and commission rule every write path
// prices with.
type Pricing struct {
	Prices     domain.PriceTable
	Commission domain.CommissionRule
}

func DefaultPricing() Pricing {
	return Pricing{
		Prices:     domain.DefaultPriceTable(),
		Commission: domain.DefaultCommissionRule(),
	}
}

func (p Pricing) resolver() domain.Resolver {
	return domain.NewResolver(p.Prices)
}
