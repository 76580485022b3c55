package models

// Item is a single orderable catalog entry (a menu item or a storefront
// product). Price is optional; display-only metadata (rating, reviews, eta,
// fee) is carried as the formatted strings the catalog ships with.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Rating      string   `json:"rating,omitempty"`
	Reviews     string   `json:"reviews,omitempty"`
	ETA         string   `json:"eta,omitempty"`
	Fee         string   `json:"fee,omitempty"`
	IsPro       bool     `json:"isPro,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Section     string   `json:"section,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Restaurant is a storefront listing. Keywords feed search only.
type Restaurant struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	Rating   string   `json:"rating"`
	Reviews  string   `json:"reviews"`
	ETA      string   `json:"eta"`
	Fee      string   `json:"fee"`
	IsPro    bool     `json:"isPro,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type Category struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// Item converts a restaurant listing into an orderable item so that a
// storefront card can be added to the cart directly.
func (r Restaurant) Item() Item {
	return Item{
		ID:      r.ID,
		Name:    r.Name,
		Image:   r.Image,
		Rating:  r.Rating,
		Reviews: r.Reviews,
		ETA:     r.ETA,
		Fee:     r.Fee,
		IsPro:   r.IsPro,
		Price:   r.Price,
	}
}
