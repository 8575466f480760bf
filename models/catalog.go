package models

// PriceRange is the typical price band of a service, in whole USD.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Question is one step of the per-service intake conversation.
type Question struct {
	Label  string   `json:"label"`  // short label used in the summary, e.g. "Issue"
	Prompt string   `json:"prompt"` // what the assistant asks
	Chips  []string `json:"chips,omitempty"`
}

// ServiceDetails is a read-only entry of the service catalog.
type ServiceDetails struct {
	ID            string     `json:"id"`
	Label         string     `json:"label"`
	Icon          string     `json:"icon"`
	AvgPriceRange PriceRange `json:"avgPriceRange"`
	AvgEtaLabel   string     `json:"avgEtaLabel"`
	IncludedItems []string   `json:"includedItems"`
	Questions     []Question `json:"questions"`
	IntroLines    []string   `json:"introLines"`
	MaxVendors    int        `json:"maxVendors"`
}

// VendorPair is a read-only entry of the vendor catalog: exactly two offers
// plus the point vendors leave from when tracking starts.
type VendorPair struct {
	Best    VendorOffer `json:"best"`
	Fastest VendorOffer `json:"fastest"`
	Start   LatLng      `json:"start"`
}
