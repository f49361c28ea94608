package catalog

import "github.com/sakif/restaurant-reviews/internal/model"

// seed is the static restaurant list served until a live search provider
// is wired in. Order matters: listing and search both preserve it.
var seed = []model.Restaurant{
	{
		ID:          "rest-1",
		Name:        "Spur Steak Ranch - Sandton",
		ImageURL:    "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=800",
		Rating:      4.5,
		ReviewCount: 342,
		Categories:  []model.Category{{Title: "Steakhouse"}, {Title: "Family Dining"}},
		Location: model.Location{
			Address1:       "Nelson Mandela Square",
			City:           "Sandton",
			State:          "Gauteng",
			DisplayAddress: []string{"Nelson Mandela Square", "Sandton, Gauteng"},
		},
		Phone:        "+27115551234",
		DisplayPhone: "011 555 1234",
		Price:        "$$",
	},
	{
		ID:          "rest-2",
		Name:        "Spur Steak Ranch - Waterfront",
		ImageURL:    "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800",
		Rating:      4.7,
		ReviewCount: 567,
		Categories:  []model.Category{{Title: "Steakhouse"}, {Title: "Grill"}},
		Location: model.Location{
			Address1:       "V&A Waterfront",
			City:           "Cape Town",
			State:          "Western Cape",
			DisplayAddress: []string{"V&A Waterfront", "Cape Town, Western Cape"},
		},
		Phone:        "+27215555678",
		DisplayPhone: "021 555 5678",
		Price:        "$$",
	},
	{
		ID:          "rest-3",
		Name:        "Spur Steak Ranch - Gateway",
		ImageURL:    "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800",
		Rating:      4.3,
		ReviewCount: 234,
		Categories:  []model.Category{{Title: "American"}, {Title: "Family Restaurant"}},
		Location: model.Location{
			Address1:       "Gateway Theatre of Shopping",
			City:           "Durban",
			State:          "KwaZulu-Natal",
			DisplayAddress: []string{"Gateway Theatre", "Durban, KZN"},
		},
		Phone:        "+27315559012",
		DisplayPhone: "031 555 9012",
		Price:        "$$",
	},
	{
		ID:          "rest-4",
		Name:        "Spur Steak Ranch - Menlyn",
		ImageURL:    "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
		Rating:      4.6,
		ReviewCount: 456,
		Categories:  []model.Category{{Title: "Steakhouse"}, {Title: "Bar"}},
		Location: model.Location{
			Address1:       "Menlyn Park Shopping Centre",
			City:           "Pretoria",
			State:          "Gauteng",
			DisplayAddress: []string{"Menlyn Park", "Pretoria, Gauteng"},
		},
		Phone:        "+27125553456",
		DisplayPhone: "012 555 3456",
		Price:        "$$",
	},
	{
		ID:          "rest-5",
		Name:        "Spur Steak Ranch - Eastgate",
		ImageURL:    "https://images.unsplash.com/photo-1550547660-d9450f859349?w=800",
		Rating:      4.4,
		ReviewCount: 289,
		Categories:  []model.Category{{Title: "Grill"}, {Title: "Family Dining"}},
		Location: model.Location{
			Address1:       "Eastgate Shopping Centre",
			City:           "Johannesburg",
			State:          "Gauteng",
			DisplayAddress: []string{"Eastgate", "Johannesburg, Gauteng"},
		},
		Phone:        "+27115557890",
		DisplayPhone: "011 555 7890",
		Price:        "$$",
	},
	{
		ID:          "rest-6",
		Name:        "Spur Steak Ranch - Canal Walk",
		ImageURL:    "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=800",
		Rating:      4.8,
		ReviewCount: 623,
		Categories:  []model.Category{{Title: "Steakhouse"}, {Title: "American"}},
		Location: model.Location{
			Address1:       "Canal Walk Shopping Centre",
			City:           "Cape Town",
			State:          "Western Cape",
			DisplayAddress: []string{"Canal Walk", "Cape Town, Western Cape"},
		},
		Phone:        "+27215552345",
		DisplayPhone: "021 555 2345",
		Price:        "$$",
	},
}
