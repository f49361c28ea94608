package model

// Restaurant is a read-only catalog entry.
//
// The JSON shape mirrors the business-search provider's "business" object
// (snake_case keys) because that is what the web client renders.
type Restaurant struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	ImageURL     string     `json:"image_url"`
	Rating       float64    `json:"rating"`
	ReviewCount  int        `json:"review_count"`
	Categories   []Category `json:"categories"`
	Location     Location   `json:"location"`
	Phone        string     `json:"phone"`
	DisplayPhone string     `json:"display_phone"`
	Price        string     `json:"price"`
}

type Category struct {
	Title string `json:"title"`
}

type Location struct {
	Address1       string   `json:"address1"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	DisplayAddress []string `json:"display_address"`
}
