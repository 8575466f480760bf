package catalog

import (
	"sort"

	"homebook/models"
)

// DefaultMaxVendors is used for services without their own vendor count.
const DefaultMaxVendors = 10

var defaultIntro = []string{
	"Hi! I'll get a few details so local pros can quote accurately.",
	"This only takes a minute.",
}

// defaultService answers lookups for ids that are not in the catalog.
var defaultService = models.ServiceDetails{
	ID:            "general",
	Label:         "General Help",
	Icon:          "🛠️",
	AvgPriceRange: models.PriceRange{Min: 60, Max: 150},
	AvgEtaLabel:   "30 min",
	IncludedItems: []string{"Inspection", "Labour for the first hour"},
	Questions: []models.Question{
		{Label: "Task", Prompt: "What do you need help with?", Chips: []string{"Repair", "Installation", "Inspection"}},
		{Label: "Urgency", Prompt: "How soon do you need someone?", Chips: []string{"Right now", "Today", "This week"}},
		{Label: "Notes", Prompt: "Anything the pro should know before arriving?"},
	},
	IntroLines: defaultIntro,
	MaxVendors: DefaultMaxVendors,
}

// services is keyed by service id. Prices are USD.
var services = map[string]models.ServiceDetails{
	"plumber": {
		ID:            "plumber",
		Label:         "Plumber",
		Icon:          "🔧",
		AvgPriceRange: models.PriceRange{Min: 80, Max: 160},
		AvgEtaLabel:   "25 min",
		IncludedItems: []string{"Leak diagnosis", "Minor fittings", "Cleanup"},
		Questions: []models.Question{
			{Label: "Issue", Prompt: "What's going on with your plumbing?", Chips: []string{"Leaking pipe", "Clogged drain", "No hot water", "Running toilet"}},
			{Label: "Location", Prompt: "Where in the home is it?", Chips: []string{"Kitchen", "Bathroom", "Basement", "Outside"}},
			{Label: "Severity", Prompt: "Is water actively leaking?", Chips: []string{"Yes, a lot", "A little", "No"}},
		},
		IntroLines: []string{
			"Hi! Let's get your plumbing sorted.",
			"A couple of quick questions and I'll start calling plumbers near you.",
		},
		MaxVendors: 14,
	},
	"electrician": {
		ID:            "electrician",
		Label:         "Electrician",
		Icon:          "💡",
		AvgPriceRange: models.PriceRange{Min: 90, Max: 180},
		AvgEtaLabel:   "35 min",
		IncludedItems: []string{"Safety check", "Fault finding", "Standard parts"},
		Questions: []models.Question{
			{Label: "Issue", Prompt: "What electrical problem are you having?", Chips: []string{"Power outage", "Faulty outlet", "Lighting", "Breaker tripping"}},
			{Label: "Scope", Prompt: "How much of the home is affected?", Chips: []string{"One room", "Several rooms", "Whole home"}},
			{Label: "Hazard", Prompt: "Any sparks, burning smell or exposed wires?", Chips: []string{"Yes", "No"}},
		},
		IntroLines: []string{
			"Hi! Electrical trouble is no fun.",
			"Tell me what's happening and I'll find a licensed electrician.",
		},
		MaxVendors: 12,
	},
	"cleaning": {
		ID:            "cleaning",
		Label:         "Home Cleaning",
		Icon:          "🧹",
		AvgPriceRange: models.PriceRange{Min: 60, Max: 140},
		AvgEtaLabel:   "45 min",
		IncludedItems: []string{"Dusting", "Vacuum and mop", "Kitchen and bathroom wipe-down"},
		Questions: []models.Question{
			{Label: "Size", Prompt: "How big is the place?", Chips: []string{"Studio", "1-2 bedrooms", "3+ bedrooms"}},
			{Label: "Type", Prompt: "What kind of clean?", Chips: []string{"Standard", "Deep clean", "Move-in/Move-out"}},
			{Label: "Pets", Prompt: "Any pets at home?", Chips: []string{"Dogs", "Cats", "None"}},
			{Label: "Supplies", Prompt: "Should the cleaner bring supplies?", Chips: []string{"Yes", "No, I have them"}},
		},
		IntroLines: defaultIntro,
		MaxVendors: 16,
	},
	"handyman": {
		ID:            "handyman",
		Label:         "Handyman",
		Icon:          "🔨",
		AvgPriceRange: models.PriceRange{Min: 50, Max: 120},
		AvgEtaLabel:   "30 min",
		IncludedItems: []string{"Basic tools", "First hour of labour"},
		Questions: []models.Question{
			{Label: "Task", Prompt: "What needs doing?", Chips: []string{"TV mounting", "Furniture assembly", "Wall repair", "Door fix"}},
			{Label: "Materials", Prompt: "Do you have the materials?", Chips: []string{"Yes", "No, please bring them"}},
			{Label: "Duration", Prompt: "Roughly how long do you think it takes?", Chips: []string{"Under an hour", "1-3 hours", "Half a day"}},
		},
		IntroLines: defaultIntro,
		MaxVendors: DefaultMaxVendors,
	},
	"locksmith": {
		ID:            "locksmith",
		Label:         "Locksmith",
		Icon:          "🔑",
		AvgPriceRange: models.PriceRange{Min: 70, Max: 150},
		AvgEtaLabel:   "20 min",
		IncludedItems: []string{"Lockout service", "Standard cylinder"},
		Questions: []models.Question{
			{Label: "Situation", Prompt: "What happened?", Chips: []string{"Locked out", "Broken lock", "Change locks", "Lost keys"}},
			{Label: "Door", Prompt: "Which door?", Chips: []string{"Front door", "Back door", "Garage", "Car"}},
		},
		IntroLines: []string{"Hi! Locked out? Let's get you back in."},
		MaxVendors: 8,
	},
	"pest_control": {
		ID:            "pest_control",
		Label:         "Pest Control",
		Icon:          "🐜",
		AvgPriceRange: models.PriceRange{Min: 100, Max: 220},
		AvgEtaLabel:   "Next day",
		IncludedItems: []string{"Inspection", "Treatment", "Follow-up advice"},
		Questions: []models.Question{
			{Label: "Pest", Prompt: "What kind of pest?", Chips: []string{"Ants", "Cockroaches", "Rodents", "Bed bugs", "Wasps"}},
			{Label: "Spread", Prompt: "Where have you seen them?", Chips: []string{"Kitchen", "Bedroom", "Garden", "Everywhere"}},
			{Label: "Since", Prompt: "How long has this been going on?", Chips: []string{"Days", "Weeks", "Months"}},
		},
		IntroLines: defaultIntro,
		MaxVendors: 6,
	},
	"painter": {
		ID:            "painter",
		Label:         "Painter",
		Icon:          "🎨",
		AvgPriceRange: models.PriceRange{Min: 150, Max: 400},
		AvgEtaLabel:   "1 hour",
		IncludedItems: []string{"Surface prep", "Two coats", "Drop cloths"},
		Questions: []models.Question{
			{Label: "Area", Prompt: "What are we painting?", Chips: []string{"One room", "Several rooms", "Exterior", "Trim and doors"}},
			{Label: "Paint", Prompt: "Do you already have paint?", Chips: []string{"Yes", "No"}},
			{Label: "Colour", Prompt: "Any colour in mind?"},
		},
		IntroLines: defaultIntro,
		MaxVendors: 9,
	},
}

// GetService returns the catalog entry for serviceID, or the generic default
// entry when the id is unknown. The second result reports whether the id was found.
func GetService(serviceID string) (models.ServiceDetails, bool) {
	if s, ok := services[serviceID]; ok {
		return s, true
	}
	return defaultService, false
}

// QuestionsFor returns the intake questions for serviceID.
func QuestionsFor(serviceID string) []models.Question {
	s, _ := GetService(serviceID)
	return s.Questions
}

// MaxVendorsFor returns how many vendors discovery pretends to call.
func MaxVendorsFor(serviceID string) int {
	s, _ := GetService(serviceID)
	if s.MaxVendors <= 0 {
		return DefaultMaxVendors
	}
	return s.MaxVendors
}

// ListServices returns every catalog entry sorted by id.
func ListServices() []models.ServiceDetails {
	out := make([]models.ServiceDetails, 0, len(services))
	for _, s := range services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
