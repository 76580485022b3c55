package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/models"
)

func fourStepTimeline() []models.TimelineEntry {
	return []models.TimelineEntry{
		{Key: "placed", Label: "Order placed", At: 1000},
		{Key: "preparing", Label: "Preparing order"},
		{Key: "on-the-way", Label: "Driver on the way"},
		{Key: "delivered", Label: "Delivered"},
	}
}

func testOrder(id string) models.Order {
	return models.Order{
		ID:          id,
		OrderNumber: "#KM000001",
		Status:      "Order placed",
		CreatedAt:   1000,
		Subtotal:    1.2,
		DeliveryFee: 0.5,
		Total:       1.7,
		Timeline:    fourStepTimeline(),
	}
}

func statuses(tl []models.TimelineEntry) []models.TimelineStatus {
	out := make([]models.TimelineStatus, len(tl))
	for i, e := range tl {
		out[i] = e.Status
	}
	return out
}

func TestAddOrderNormalizesTimeline(t *testing.T) {
	s := NewOrdersStore(NewMemoryStorage())

	// whatever statuses came in are overwritten by activation at step one
	order := testOrder("ord-1")
	order.Timeline[2].Status = models.TimelineCurrent

	placed, err := s.AddOrder(order)
	require.NoError(t, err)

	assert.Equal(t, []models.TimelineStatus{
		models.TimelineCurrent,
		models.TimelinePending,
		models.TimelinePending,
		models.TimelinePending,
	}, statuses(placed.Timeline))
}

func TestAddOrderRejectsEmptyTimeline(t *testing.T) {
	s := NewOrdersStore(NewMemoryStorage())
	_, err := s.AddOrder(models.Order{ID: "ord-1"})
	assert.ErrorIs(t, err, ErrEmptyTimeline)
	assert.Empty(t, s.Orders())
}

func TestAddOrderPrepends(t *testing.T) {
	s := NewOrdersStore(NewMemoryStorage())
	_, err := s.AddOrder(testOrder("ord-1"))
	require.NoError(t, err)
	_, err = s.AddOrder(testOrder("ord-2"))
	require.NoError(t, err)

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "ord-2", orders[0].ID)
	assert.Equal(t, "ord-1", orders[1].ID)
}

func TestUpdateStatusActivatesMatchingStep(t *testing.T) {
	s := NewOrdersStore(NewMemoryStorage())
	_, err := s.AddOrder(testOrder("ord-1"))
	require.NoError(t, err)

	s.UpdateStatus("ord-1", "preparing", nil)

	order, ok := s.Get("ord-1")
	require.True(t, ok)
	assert.Equal(t, "preparing", order.Status)
	assert.Equal(t, []models.TimelineStatus{
		models.TimelineDone,
		models.TimelineCurrent,
		models.TimelinePending,
		models.TimelinePending,
	}, statuses(order.Timeline))
	assert.Equal(t, 1, order.CurrentStep())
}

// An unmatched key marks the entire timeline done. That fallthrough is
// deliberate (unknown status treated as terminal) and lives in
// ActivateTimeline so changing it is a one-line edit.
func TestUpdateStatusUnmatchedKeyMarksAllDone(t *testing.T) {
	s := NewOrdersStore(NewMemoryStorage())
	_, err := s.AddOrder(testOrder("ord-1"))
	require.NoError(t, err)

	s.UpdateStatus("ord-1", "nonexistent-key", nil)

	order, _ := s.Get("ord-1")
	assert.Equal(t, []models.TimelineStatus{
		models.TimelineDone,
		models.TimelineDone,
		models.TimelineDone,
		models.TimelineDone,
	}, statuses(order.Timeline))
}

func TestUpdateStatusWithUpdaterReplacesTimeline(t *testing.T) {
	s := NewOrdersStore(NewMemoryStorage())
	_, err := s.AddOrder(testOrder("ord-1"))
	require.NoError(t, err)

	s.UpdateStatus("ord-1", "Delivered", func(tl []models.TimelineEntry) []models.TimelineEntry {
		return ActivateTimeline(tl, "delivered")
	})

	order, _ := s.Get("ord-1")
	assert.Equal(t, "Delivered", order.Status)
	assert.Equal(t, models.TimelineCurrent, order.Timeline[3].Status)
	assert.Equal(t, models.TimelineDone, order.Timeline[0].Status)
}

func TestUpdateStatusUnknownIDIsNoOp(t *testing.T) {
	s := NewOrdersStore(NewMemoryStorage())
	_, err := s.AddOrder(testOrder("ord-1"))
	require.NoError(t, err)

	s.UpdateStatus("ghost", "preparing", nil)

	order, _ := s.Get("ord-1")
	assert.Equal(t, "Order placed", order.Status)
}

func TestClearOrders(t *testing.T) {
	s := NewOrdersStore(NewMemoryStorage())
	_, err := s.AddOrder(testOrder("ord-1"))
	require.NoError(t, err)

	s.ClearOrders()
	assert.Empty(t, s.Orders())
}

func TestOrdersPersistAcrossRestart(t *testing.T) {
	storage := NewMemoryStorage()
	s := NewOrdersStore(storage)
	_, err := s.AddOrder(testOrder("ord-1"))
	require.NoError(t, err)
	s.UpdateStatus("ord-1", "preparing", nil)

	restored := NewOrdersStore(storage)
	order, ok := restored.Get("ord-1")
	require.True(t, ok)
	assert.Equal(t, "preparing", order.Status)
	assert.Equal(t, 1, order.CurrentStep())
}

func TestOnChangeNotifies(t *testing.T) {
	s := NewOrdersStore(NewMemoryStorage())

	var seen []string
	s.OnChange(func(o models.Order) { seen = append(seen, o.ID+":"+o.Status) })

	_, err := s.AddOrder(testOrder("ord-1"))
	require.NoError(t, err)
	s.UpdateStatus("ord-1", "preparing", nil)

	assert.Equal(t, []string{"ord-1:Order placed", "ord-1:preparing"}, seen)
}
