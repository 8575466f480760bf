package models

// OfferCategory labels which end of the auction an offer came from.
type OfferCategory string

const (
	CategoryBest    OfferCategory = "best"
	CategoryFastest OfferCategory = "fastest"
)

// VendorOffer is a vendor's priced, timed bid for a service request.
// Offers are built from the vendor catalog and never modified afterwards.
type VendorOffer struct {
	Name     string        `json:"name"`
	PriceUSD int           `json:"priceUsd"`
	EtaLabel string        `json:"etaLabel"` // e.g. "15 min"
	Rating   float64       `json:"rating"`   // 0..5
	Category OfferCategory `json:"category"`
	Address  string        `json:"address"`
}
