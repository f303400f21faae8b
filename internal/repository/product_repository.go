package repository

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/ptypek/listic/internal/model"
)

type ProductRepository interface {
	Search(ctx context.Context, term string, limit int) ([]model.PopularProduct, error)
}

type productRepository struct {
	db dbtx
}

func NewProductRepository(db dbtx) ProductRepository {
	return &productRepository{db: db}
}

// Search matches every word of term as a prefix against product names.
func (r *productRepository) Search(ctx context.Context, term string, limit int) ([]model.PopularProduct, error) {
	match := buildMatchQuery(term)
	if match == "" {
		return []model.PopularProduct{}, nil
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT p.id, p.name, p.category_id
		 FROM popular_products_fts f
		 JOIN popular_products p ON p.id = f.rowid
		 WHERE popular_products_fts MATCH ?
		 ORDER BY f.rank
		 LIMIT ?`,
		match,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	products := make([]model.PopularProduct, 0)
	for rows.Next() {
		var p model.PopularProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// buildMatchQuery keeps only letters and digits of term and quotes each word,
// so FTS5 syntax in user input never reaches the parser.
func buildMatchQuery(term string) string {
	words := strings.FieldsFunc(term, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, `"`+w+`"*`)
	}
	return strings.Join(parts, " ")
}
