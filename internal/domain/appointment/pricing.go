package appointment

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/anami-scheduler/internal/models"
)

// ===============================
// Selection (tagged union by venue)
// ===============================

// Selection is what the client picked: either catalog services or a manual
// duration code. Each variant only carries the fields its mode needs.
type Selection interface {
	VenueMode() VenueMode
}

type CatalogSelection struct {
	ServiceIDs []uuid.UUID
}

func (CatalogSelection) VenueMode() VenueMode { return VenueOnSite }

type ManualSelection struct {
	DurationCode int
	HasAddOn     bool
}

func (ManualSelection) VenueMode() VenueMode { return VenueOffSite }

// ===============================
// Price table
// ===============================

// PriceTable holds the fixed off-site prices.
type PriceTable struct {
	BaseByDuration map[int]int64
	AddOnPrice     int64
	AddOnMinutes   int
}

func DefaultPriceTable() PriceTable {
	return PriceTable{
		BaseByDuration: map[int]int64{
			20: 15000,
			40: 20000,
		},
		AddOnPrice:   5000,
		AddOnMinutes: 10,
	}
}

// ===============================
// Resolver
// ===============================

type LineItem struct {
	ServiceID      uuid.UUID
	PriceAtBooking int64
}

type Resolution struct {
	DurationMinutes int
	TotalPrice      int64
	CommissionBase  int64
	Items           []LineItem
	PriceFallback   bool
}

type Resolver struct {
	Prices PriceTable
}

func NewResolver(prices PriceTable) Resolver {
	return Resolver{Prices: prices}
}

// Resolve computes duration, price and line items for sel. catalog must
// contain the active services referenced by a CatalogSelection.
func (r Resolver) Resolve(sel Selection, catalog map[uuid.UUID]models.Service) (Resolution, error) {
	switch s := sel.(type) {
	case CatalogSelection:
		return r.resolveCatalog(s, catalog)
	case ManualSelection:
		return r.resolveManual(s)
	}
	return Resolution{}, ErrInvalidVenueMode
}

func (r Resolver) resolveCatalog(sel CatalogSelection, catalog map[uuid.UUID]models.Service) (Resolution, error) {
	if len(sel.ServiceIDs) == 0 {
		return Resolution{}, ErrInvalidServiceSelection
	}

	var res Resolution
	res.Items = make([]LineItem, 0, len(sel.ServiceIDs))

	for _, id := range sel.ServiceIDs {
		svc, ok := catalog[id]
		if !ok || !svc.Active || svc.DurationMinutes <= 0 || svc.BasePrice < 0 {
			return Resolution{}, ErrInvalidServiceSelection
		}
		res.DurationMinutes += svc.DurationMinutes
		res.TotalPrice += svc.BasePrice
		res.Items = append(res.Items, LineItem{
			ServiceID:      svc.ID,
			PriceAtBooking: svc.BasePrice,
		})
	}

	res.CommissionBase = res.TotalPrice
	return res, nil
}

func (r Resolver) resolveManual(sel ManualSelection) (Resolution, error) {
	if sel.DurationCode <= 0 || sel.DurationCode > MaxDurationMinutes {
		return Resolution{}, ErrInvalidManualSelection
	}

	base, known := r.Prices.BaseByDuration[sel.DurationCode]

	res := Resolution{
		DurationMinutes: sel.DurationCode,
		TotalPrice:      base,
		CommissionBase:  base,
		Items:           []LineItem{},
		PriceFallback:   !known,
	}

	// o adicional fica 100% com o prestador: não entra na base de comissão
	if sel.HasAddOn {
		res.DurationMinutes += r.Prices.AddOnMinutes
		res.TotalPrice += r.Prices.AddOnPrice
	}

	return res, nil
}
