package category

import "strings"

// ExternalLabel is a category name produced by the extraction service.
type ExternalLabel string

const (
	LabelDairyEggs     ExternalLabel = "Dairy & Eggs"
	LabelVegetables    ExternalLabel = "Vegetables"
	LabelMeat          ExternalLabel = "Meat"
	LabelPantryStaples ExternalLabel = "Pantry Staples"
	LabelFruits        ExternalLabel = "Fruits"
	LabelFish          ExternalLabel = "Fish"
	LabelSpicesHerbs   ExternalLabel = "Spices & Herbs"
	LabelOther         ExternalLabel = "Other"
)

// AllExternalLabels lists every label the extraction prompt may return.
var AllExternalLabels = []ExternalLabel{
	LabelDairyEggs,
	LabelVegetables,
	LabelMeat,
	LabelPantryStaples,
	LabelFruits,
	LabelFish,
	LabelSpicesHerbs,
	LabelOther,
}

// InternalName is the stored name of a taxonomy category.
type InternalName string

const (
	NameDairy      InternalName = "nabiał"
	NameVegetables InternalName = "warzywa"
	NameMeat       InternalName = "mięso"
	NamePantry     InternalName = "suche"
	NameFruit      InternalName = "owoce"
	NameFish       InternalName = "ryby"
	NameSpices     InternalName = "przyprawy"
	NameOther      InternalName = "inne"
)

// AllInternalNames is the closed taxonomy in display order.
var AllInternalNames = []InternalName{
	NameDairy,
	NameVegetables,
	NameMeat,
	NamePantry,
	NameFruit,
	NameFish,
	NameSpices,
	NameOther,
}

// Internal maps a label to its taxonomy name. ok is false for labels outside
// the known set.
func (l ExternalLabel) Internal() (name InternalName, ok bool) {
	switch l {
	case LabelDairyEggs:
		return NameDairy, true
	case LabelVegetables:
		return NameVegetables, true
	case LabelMeat:
		return NameMeat, true
	case LabelPantryStaples:
		return NamePantry, true
	case LabelFruits:
		return NameFruit, true
	case LabelFish:
		return NameFish, true
	case LabelSpicesHerbs:
		return NameSpices, true
	case LabelOther:
		return NameOther, true
	}
	return "", false
}

// ParseLabel matches raw against the known labels ignoring case and
// surrounding whitespace.
func ParseLabel(raw string) (ExternalLabel, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, l := range AllExternalLabels {
		if strings.EqualFold(string(l), trimmed) {
			return l, true
		}
	}
	return ExternalLabel(trimmed), false
}
