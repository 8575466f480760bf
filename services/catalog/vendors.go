package catalog

import "homebook/models"

var defaultVendors = models.VendorPair{
	Best: models.VendorOffer{
		Name: "Neighbourhood Pros", PriceUSD: 95, EtaLabel: "30 min", Rating: 4.8,
		Category: models.CategoryBest, Address: "210 Market St",
	},
	Fastest: models.VendorOffer{
		Name: "QuickFix Crew", PriceUSD: 120, EtaLabel: "15 min", Rating: 4.5,
		Category: models.CategoryFastest, Address: "48 Harbor Ave",
	},
	Start: models.LatLng{Lat: 37.7793, Lng: -122.4193},
}

// vendors is keyed by service id: exactly one best and one fastest offer each.
var vendors = map[string]models.VendorPair{
	"plumber": {
		Best: models.VendorOffer{
			Name: "FlowRight Plumbing", PriceUSD: 110, EtaLabel: "25 min", Rating: 4.9,
			Category: models.CategoryBest, Address: "1450 Mission St",
		},
		Fastest: models.VendorOffer{
			Name: "Rapid Rooter", PriceUSD: 135, EtaLabel: "12 min", Rating: 4.6,
			Category: models.CategoryFastest, Address: "77 Valencia St",
		},
		Start: models.LatLng{Lat: 37.7726, Lng: -122.4194},
	},
	"electrician": {
		Best: models.VendorOffer{
			Name: "BrightWire Electric", PriceUSD: 140, EtaLabel: "35 min", Rating: 4.9,
			Category: models.CategoryBest, Address: "300 Folsom St",
		},
		Fastest: models.VendorOffer{
			Name: "Volt Express", PriceUSD: 165, EtaLabel: "18 min", Rating: 4.4,
			Category: models.CategoryFastest, Address: "12 Howard St",
		},
		Start: models.LatLng{Lat: 37.7880, Lng: -122.3936},
	},
	"cleaning": {
		Best: models.VendorOffer{
			Name: "Sparkle & Co", PriceUSD: 85, EtaLabel: "45 min", Rating: 4.8,
			Category: models.CategoryBest, Address: "901 Divisadero St",
		},
		Fastest: models.VendorOffer{
			Name: "Same Day Maids", PriceUSD: 105, EtaLabel: "20 min", Rating: 4.5,
			Category: models.CategoryFastest, Address: "55 Haight St",
		},
		Start: models.LatLng{Lat: 37.7766, Lng: -122.4378},
	},
	"handyman": {
		Best: models.VendorOffer{
			Name: "Honest Hands", PriceUSD: 70, EtaLabel: "40 min", Rating: 4.8,
			Category: models.CategoryBest, Address: "640 Irving St",
		},
		Fastest: models.VendorOffer{
			Name: "FixIt Now", PriceUSD: 90, EtaLabel: "15 min", Rating: 4.3,
			Category: models.CategoryFastest, Address: "18 Judah St",
		},
		Start: models.LatLng{Lat: 37.7640, Lng: -122.4660},
	},
	"locksmith": {
		Best: models.VendorOffer{
			Name: "KeyMaster Locksmiths", PriceUSD: 95, EtaLabel: "20 min", Rating: 4.7,
			Category: models.CategoryBest, Address: "2200 Polk St",
		},
		Fastest: models.VendorOffer{
			Name: "24/7 Lockout", PriceUSD: 125, EtaLabel: "8 min", Rating: 4.4,
			Category: models.CategoryFastest, Address: "9 Van Ness Ave",
		},
		Start: models.LatLng{Lat: 37.7970, Lng: -122.4222},
	},
	"pest_control": {
		Best: models.VendorOffer{
			Name: "GreenShield Pest", PriceUSD: 160, EtaLabel: "Next day", Rating: 4.8,
			Category: models.CategoryBest, Address: "3100 Geary Blvd",
		},
		Fastest: models.VendorOffer{
			Name: "BugBusters", PriceUSD: 190, EtaLabel: "2 hours", Rating: 4.2,
			Category: models.CategoryFastest, Address: "430 Clement St",
		},
		Start: models.LatLng{Lat: 37.7816, Lng: -122.4601},
	},
	"painter": {
		Best: models.VendorOffer{
			Name: "Fresh Coat Painters", PriceUSD: 260, EtaLabel: "1 hour", Rating: 4.9,
			Category: models.CategoryBest, Address: "1800 Union St",
		},
		Fastest: models.VendorOffer{
			Name: "Brush & Go", PriceUSD: 310, EtaLabel: "35 min", Rating: 4.5,
			Category: models.CategoryFastest, Address: "66 Chestnut St",
		},
		Start: models.LatLng{Lat: 37.7981, Lng: -122.4312},
	},
}

// VendorsFor returns the two-offer entry for serviceID, or the generic
// default pair when the id is unknown.
func VendorsFor(serviceID string) models.VendorPair {
	if v, ok := vendors[serviceID]; ok {
		return v
	}
	return defaultVendors
}
