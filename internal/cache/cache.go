// Package cache keeps the last successful backend fetch per resource in a
// local sqlite file, so dashboards can render last-known data while a
// refresh is in flight or the backend is unreachable. Identity and the
// bearer token are never cached here.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// ErrMiss is returned when no snapshot exists for a resource
var ErrMiss = errors.New("no cached snapshot")

// snapshot is one cached resource payload
type snapshot struct {
	ID        string    `gorm:"primaryKey;type:varchar(26)"`
	Resource  string    `gorm:"uniqueIndex;not null"`
	Payload   []byte    `gorm:"not null"`
	FetchedAt time.Time `gorm:"not null"`
}

func (s *snapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = ulid.Make().String()
	}
	return nil
}

// Cache is the local snapshot store
type Cache struct {
	db *gorm.DB
}

// Open opens (or creates) the cache database at the given path
func Open(path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// Single local writer; WAL still helps the refresh job and page
	// handlers overlap safely
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("failed to apply pragma: %w", err)
		}
	}

	if err := db.AutoMigrate(&snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Put stores the latest payload for a resource, replacing any previous one
func (c *Cache) Put(resource string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	snap := snapshot{
		ID:        ulid.Make().String(),
		Resource:  resource,
		Payload:   payload,
		FetchedAt: time.Now().UTC(),
	}

	return c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "resource"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "fetched_at"}),
	}).Create(&snap).Error
}

// Get loads the last stored payload for a resource into v and returns
// when it was fetched
func (c *Cache) Get(resource string, v any) (time.Time, error) {
	var snap snapshot
	if err := c.db.Where("resource = ?", resource).First(&snap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, ErrMiss
		}
		return time.Time{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if err := json.Unmarshal(snap.Payload, v); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snap.FetchedAt, nil
}

// Clear drops all cached snapshots (used on logout so a later operator
// never sees another account's data)
func (c *Cache) Clear() error {
	return c.db.Where("1 = 1").Delete(&snapshot{}).Error
}

// Close releases the underlying database handle
func (c *Cache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
