package models

type TimelineStatus string

const (
	TimelinePending TimelineStatus = "pending" // step not reached yet
	TimelineCurrent TimelineStatus = "current" // the active step
	TimelineDone    TimelineStatus = "done"    // step completed
)

// TimelineEntry is one fulfillment milestone of an order. At is set (epoch
// milliseconds) when the step has a known timestamp.
type TimelineEntry struct {
	Key    string         `json:"key"`
	Label  string         `json:"label"`
	At     int64          `json:"at,omitempty"`
	Status TimelineStatus `json:"status"`
}

// OrderItem is the frozen snapshot of a cart entry at checkout time. It is
// independent of later catalog or cart mutations.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note,omitempty"`
	Image    string  `json:"image"`
}

// Order is immutable once placed, except for Status and Timeline which
// advance as fulfillment progresses. Status mirrors the label of the active
// timeline step.
type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Status      string          `json:"status"`
	CreatedAt   int64           `json:"createdAt"`
	Subtotal    float64         `json:"subtotal"`
	DeliveryFee float64         `json:"deliveryFee"`
	Total       float64         `json:"total"`
	Note        string          `json:"note,omitempty"`
	Address     string          `json:"address,omitempty"`
	Items       []OrderItem     `json:"items"`
	Timeline    []TimelineEntry `json:"timeline"`
}

// CurrentStep returns the index of the active timeline step. When no step
// is current it returns the last completed index (the whole timeline is
// done), or -1 for a timeline with no activity at all.
func (o Order) CurrentStep() int {
	lastDone := -1
	for i, step := range o.Timeline {
		switch step.Status {
		case TimelineCurrent:
			return i
		case TimelineDone:
			lastDone = i
		}
	}
	return lastDone
}
