package appointment

import "strings"

type VenueMode string

const (
	// Atendimento particular: preço pelo catálogo, sem parceiro.
	VenueOnSite VenueMode = "on_site"
	// Atendimento em hotel: tabela manual, comissão do parceiro.
	VenueOffSite VenueMode = "off_site"
)

// ParseVenueMode accepts the canonical names and the legacy PARTICULAR/HOTEL
// labels, case-insensitively.
func ParseVenueMode(raw string) (VenueMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on_site", "particular":
		return VenueOnSite, nil
	case "off_site", "hotel":
		return VenueOffSite, nil
	}
	return "", ErrInvalidVenueMode
}
