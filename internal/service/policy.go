package service

import "strings"

// NeighborhoodPolicy approves addresses mentioning any of the served
// neighborhoods. Crude on purpose: it mirrors the rule the restaurant
// actually operates with, and it hides behind AreaPolicy so a geocoding
// check can replace it without touching submission.
type NeighborhoodPolicy struct {
	Neighborhoods []string
}

func NewNeighborhoodPolicy(neighborhoods []string) *NeighborhoodPolicy {
	return &NeighborhoodPolicy{Neighborhoods: neighborhoods}
}

func (p *NeighborhoodPolicy) Allows(address string) bool {
	if len(p.Neighborhoods) == 0 {
		return true
	}
	lower := strings.ToLower(address)
	for _, n := range p.Neighborhoods {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// AllowAllPolicy serves any address. Used for table-only deployments.
type AllowAllPolicy struct{}

func (AllowAllPolicy) Allows(string) bool { return true }
