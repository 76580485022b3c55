package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreSnapshot is one persisted store slot: the JSON snapshot of a state
// container keyed by its store name.
type StoreSnapshot struct {
	Name      string `gorm:"primaryKey"`
	Data      string
	UpdatedAt time.Time
}

func (StoreSnapshot) TableName() string { return "store_snapshots" }

// GormStorage persists snapshots in a single key-value table.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	if err := db.AutoMigrate(&StoreSnapshot{}); err != nil {
		return nil, err
	}
	return &GormStorage{db: db}, nil
}

func (g *GormStorage) Load(name string) ([]byte, bool, error) {
	var snap StoreSnapshot
	if err := g.db.First(&snap, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(snap.Data), true, nil
}

func (g *GormStorage) Save(name string, data []byte) error {
	snap := StoreSnapshot{Name: name, Data: string(data), UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
}
