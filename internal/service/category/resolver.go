package category

import (
	"errors"

	"github.com/ptypek/listic/internal/model"
)

// ErrDefaultCategoryMissing means the taxonomy has no "inne" row, which is a
// deployment error rather than bad input.
var ErrDefaultCategoryMissing = errors.New("default category missing")

// Resolve maps an extraction label onto one of available. Unknown labels and
// labels whose category is absent resolve to the default category.
func Resolve(label string, available []model.Category) (model.Category, error) {
	fallback, ok := find(available, NameOther)
	if !ok {
		return model.Category{}, ErrDefaultCategoryMissing
	}

	parsed, known := ParseLabel(label)
	if !known {
		return fallback, nil
	}
	name, _ := parsed.Internal()
	if c, ok := find(available, name); ok {
		return c, nil
	}
	return fallback, nil
}

// Resolver binds a category set so repeated lookups reuse it.
type Resolver struct {
	available []model.Category
	fallback  model.Category
}

func NewResolver(available []model.Category) (*Resolver, error) {
	fallback, ok := find(available, NameOther)
	if !ok {
		return nil, ErrDefaultCategoryMissing
	}
	return &Resolver{available: available, fallback: fallback}, nil
}

func (r *Resolver) Resolve(label string) model.Category {
	c, err := Resolve(label, r.available)
	if err != nil {
		return r.fallback
	}
	return c
}

func find(available []model.Category, name InternalName) (model.Category, bool) {
	for _, c := range available {
		if c.Name == string(name) {
			return c, true
		}
	}
	return model.Category{}, false
}
