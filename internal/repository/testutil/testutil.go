package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/ptypek/listic/internal/db"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/snowflake"
)

// Category IDs of the seeded taxonomy.
const (
	CategoryDairy int64 = 1
	CategoryVeg   int64 = 2
	CategoryMeat  int64 = 3
	CategoryOther int64 = 8
)

// timeLayout matches the layout the repositories store timestamps in.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// NewTestDB opens a migrated sqlite database in a temp dir that is removed
// when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func SeedList(t *testing.T, database *sql.DB, name, ownerID string) int64 {
	t.Helper()
	id := snowflake.NextID()
	now := time.Now().UTC().Format(timeLayout)
	_, err := database.Exec(
		`INSERT INTO shopping_lists (id, name, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, name, ownerID, now, now,
	)
	if err != nil {
		t.Fatalf("seed list: %v", err)
	}
	return id
}

func SeedItem(t *testing.T, database *sql.DB, item model.NewListItem) int64 {
	t.Helper()
	if item.Source == "" {
		item.Source = model.SourceManual
	}
	if item.CategoryID == 0 {
		item.CategoryID = CategoryOther
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	id := snowflake.NextID()
	now := time.Now().UTC().Format(timeLayout)
	_, err := database.Exec(
		`INSERT INTO list_items (id, list_id, category_id, name, quantity, unit, is_checked, source, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?, ?)`,
		id, item.ListID, item.CategoryID, item.Name, item.Quantity, item.Unit, string(item.Source), now, now,
	)
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return id
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
