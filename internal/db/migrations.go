package db

import (
	"database/sql"
	"fmt"
)

// Row IDs are snowflake IDs generated by the application, so no AUTOINCREMENT.
const baseSchema = `
CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS shopping_lists (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  owner_id TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_shopping_lists_owner ON shopping_lists(owner_id, created_at);

CREATE TABLE IF NOT EXISTS list_items (
  id INTEGER PRIMARY KEY,
  list_id INTEGER NOT NULL,
  category_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  quantity REAL NOT NULL CHECK (quantity > 0),
  unit TEXT NOT NULL DEFAULT '',
  is_checked INTEGER NOT NULL DEFAULT 0,
  source TEXT NOT NULL CHECK (source IN ('manual', 'ai')),
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (list_id) REFERENCES shopping_lists(id) ON DELETE CASCADE,
  FOREIGN KEY (category_id) REFERENCES categories(id)
);

CREATE INDEX IF NOT EXISTS idx_list_items_list_id ON list_items(list_id);

CREATE TABLE IF NOT EXISTS ai_feedback_log (
  id INTEGER PRIMARY KEY,
  list_item_id INTEGER NOT NULL,
  user_id TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (list_item_id) REFERENCES list_items(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS popular_products (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  category_id INTEGER NOT NULL,
  FOREIGN KEY (category_id) REFERENCES categories(id)
);

CREATE VIRTUAL TABLE IF NOT EXISTS popular_products_fts USING fts5(
  name,
  content = 'popular_products',
  content_rowid = 'id',
  tokenize = 'unicode61 remove_diacritics 2'
);

CREATE TRIGGER IF NOT EXISTS popular_products_ai AFTER INSERT ON popular_products BEGIN
  INSERT INTO popular_products_fts(rowid, name) VALUES (new.id, new.name);
END;

CREATE TRIGGER IF NOT EXISTS popular_products_ad AFTER DELETE ON popular_products BEGIN
  INSERT INTO popular_products_fts(popular_products_fts, rowid, name) VALUES ('delete', old.id, old.name);
END;
`

// DefaultCategoryName is the category unresolvable items fall back to.
const DefaultCategoryName = "inne"

var seedCategories = []struct {
	ID   int64
	Name string
}{
	{1, "nabiał"},
	{2, "warzywa"},
	{3, "mięso"},
	{4, "suche"},
	{5, "owoce"},
	{6, "ryby"},
	{7, "przyprawy"},
	{8, DefaultCategoryName},
}

var seedProducts = []struct {
	Name       string
	CategoryID int64
}{
	{"mleko", 1}, {"masło", 1}, {"jajka", 1}, {"ser żółty", 1}, {"jogurt naturalny", 1}, {"śmietana", 1}, {"twaróg", 1},
	{"marchew", 2}, {"cebula", 2}, {"czosnek", 2}, {"ziemniaki", 2}, {"pomidory", 2}, {"ogórek", 2}, {"papryka czerwona", 2},
	{"pierś z kurczaka", 3}, {"mięso mielone", 3}, {"boczek", 3}, {"schab", 3},
	{"makaron", 4}, {"ryż", 4}, {"mąka pszenna", 4}, {"cukier", 4}, {"kasza gryczana", 4}, {"olej rzepakowy", 4},
	{"jabłka", 5}, {"banany", 5}, {"cytryna", 5}, {"truskawki", 5},
	{"łosoś", 6}, {"dorsz", 6}, {"tuńczyk w puszce", 6},
	{"sól", 7}, {"pieprz czarny", 7}, {"papryka słodka", 7}, {"oregano", 7}, {"bazylia", 7},
	{"papier do pieczenia", 8}, {"woda mineralna", 8},
}

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if err := seed(db); err != nil {
		return fmt.Errorf("seed reference data: %w", err)
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: lists sorted by name or updated_at per owner
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_shopping_lists_owner_updated ON shopping_lists(owner_id, updated_at)`); err != nil {
		return fmt.Errorf("create idx_shopping_lists_owner_updated: %w", err)
	}

	// Migration 2: feedback lookups by item
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_ai_feedback_item ON ai_feedback_log(list_item_id)`); err != nil {
		return fmt.Errorf("create idx_ai_feedback_item: %w", err)
	}

	// Migration 3: unit column for databases created before units were stored
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('list_items') WHERE name = 'unit'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check unit column: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE list_items ADD COLUMN unit TEXT NOT NULL DEFAULT ''`); err != nil {
			return fmt.Errorf("add unit column: %w", err)
		}
	}

	return nil
}

// seed inserts the closed category taxonomy and the product suggestions.
// Existing rows are left untouched.
func seed(db *sql.DB) error {
	for _, c := range seedCategories {
		if _, err := db.Exec(`INSERT OR IGNORE INTO categories (id, name) VALUES (?, ?)`, c.ID, c.Name); err != nil {
			return fmt.Errorf("seed category %s: %w", c.Name, err)
		}
	}
	for i, p := range seedProducts {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO popular_products (id, name, category_id) VALUES (?, ?, ?)`,
			int64(i+1), p.Name, p.CategoryID,
		); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}
	return nil
}
