package models

// CartEntry is one catalog item plus the quantity and optional note chosen
// by the shopper. Quantity is >= 1 for as long as the entry exists; a
// quantity update that reaches 0 removes the entry instead.
type CartEntry struct {
	Item     Item   `json:"item"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// Cart is the full cart aggregate. Selected is the item currently shown in
// the detail view and is transient (never persisted). CartItems keeps
// insertion order; at most one entry per item id.
type Cart struct {
	Selected  *Item       `json:"selected,omitempty"`
	CartItems []CartEntry `json:"cartItems"`
	OrderNote string      `json:"orderNote"`
}

// TotalItems is the sum of all entry quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, e := range c.CartItems {
		total += e.Quantity
	}
	return total
}

// CartTotal is the sum of price*quantity over all entries, rounded to the
// currency's 3 decimal places. Recomputed on every call so it can never
// drift from the collection.
func (c Cart) CartTotal() float64 {
	var total float64
	for _, e := range c.CartItems {
		total += ResolvePrice(e.Item) * float64(e.Quantity)
	}
	return Round3(total)
}
