package store

// Snapshot slot names. Each state container persists a partial JSON
// snapshot of itself under its own slot.
const (
	CartStoreName   = "cart-store"
	OrdersStoreName = "orders-store"
	AuthStoreName   = "auth-store"
)

// Storage is the key-value persistence port the state containers write
// their snapshots through. Load reports ok=false when no snapshot exists
// for the name. Implementations must be safe for concurrent use.
type Storage interface {
	Load(name string) (data []byte, ok bool, err error)
	Save(name string, data []byte) error
}
