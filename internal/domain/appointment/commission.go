package appointment

import "errors"

// CommissionRule is the partner's cut of off-site revenue, in percent.
type CommissionRule struct {
	PartnerPercent int64
}

func DefaultCommissionRule() CommissionRule {
	return CommissionRule{PartnerPercent: 40}
}

type Shares struct {
	Provider int64
	Partner  int64
}

var errInvalidSplit = errors.New("commission split: invalid amounts")

// Split divides total between provider and partner. Off-site, the partner
// gets PartnerPercent of eligible, rounded half-up (amounts are never
// negative, so this equals half-away-from-zero); the provider keeps the rest,
// including any revenue outside eligible.
func (r CommissionRule) Split(total, eligible int64, mode VenueMode) (Shares, error) {
	if total < 0 || eligible < 0 || eligible > total {
		return Shares{}, errInvalidSplit
	}

	var partner int64
	switch mode {
	case VenueOnSite:
		partner = 0
	case VenueOffSite:
		partner = (eligible*r.PartnerPercent + 50) / 100
	default:
		return Shares{}, ErrInvalidVenueMode
	}

	provider := total - partner
	if provider < 0 {
		return Shares{}, errInvalidSplit
	}

	return Shares{Provider: provider, Partner: partner}, nil
}
