package model

// Review is a user-submitted rating of a restaurant.
//
// RestaurantName and RestaurantImage are denormalized copies so a user's
// review list can be rendered without a catalog lookup. RestaurantID and
// UserID are not enforced as foreign keys.
//
// CreatedAt/UpdatedAt are assigned by the document store at commit time.
// They are nil until the record has been read back from the store.
type Review struct {
	ID              string     `json:"id"`
	RestaurantID    string     `json:"restaurantId"`
	RestaurantName  string     `json:"restaurantName"`
	RestaurantImage string     `json:"restaurantImage"`
	UserID          string     `json:"userId"`
	UserName        string     `json:"userName"`
	Rating          float64    `json:"rating"`
	Comment         string     `json:"comment"`
	CreatedAt       *Timestamp `json:"createdAt"`
	UpdatedAt       *Timestamp `json:"updatedAt"`
}

// ReviewUpdate is what an author may change on an existing review.
type ReviewUpdate struct {
	ID        string     `json:"id"`
	Rating    float64    `json:"rating"`
	Comment   string     `json:"comment"`
	UpdatedAt *Timestamp `json:"updatedAt"`
}
