package models

// DiscoveryPhase is a step of the vendor discovery auction.
// Phases only ever move forward: calling, negotiating, done.
type DiscoveryPhase string

const (
	DiscoveryCalling     DiscoveryPhase = "calling"
	DiscoveryNegotiating DiscoveryPhase = "negotiating"
	DiscoveryDone        DiscoveryPhase = "done"
)

// Rank orders phases so callers can check forward-only movement.
func (p DiscoveryPhase) Rank() int {
	switch p {
	case DiscoveryCalling:
		return 0
	case DiscoveryNegotiating:
		return 1
	case DiscoveryDone:
		return 2
	}
	return -1
}

// DiscoveryState is the observable state of one discovery run.
type DiscoveryState struct {
	Phase          DiscoveryPhase `json:"phase"`
	CallCount      int            `json:"callCount"`
	MaxVendors     int            `json:"maxVendors"`
	BestPriceFound *int           `json:"bestPriceFound,omitempty"`
	ElapsedMs      int64          `json:"elapsedMs"`
	Offers         []VendorOffer  `json:"offers,omitempty"`
}
