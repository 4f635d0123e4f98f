package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DressCategory is the closed set of catalog categories.
type DressCategory string

// Known dress categories.
const (
	DressCategoryDress     DressCategory = "dress"
	DressCategorySuit      DressCategory = "suit"
	DressCategoryHanbok    DressCategory = "hanbok"
	DressCategoryParty     DressCategory = "party"
	DressCategoryAccessory DressCategory = "accessory"
)

// DressCategories lists every valid category in display order.
var DressCategories = []DressCategory{
	DressCategoryDress,
	DressCategorySuit,
	DressCategoryHanbok,
	DressCategoryParty,
	DressCategoryAccessory,
}

// ParseDressCategory converts raw input into a DressCategory.
// Matching is case-insensitive; unknown values return ErrInvalidCategory.
func ParseDressCategory(raw string) (DressCategory, error) {
	c := DressCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", NewValidationError("category", "is not a known category", ErrInvalidCategory)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c DressCategory) Valid() bool {
	switch c {
	case DressCategoryDress, DressCategorySuit, DressCategoryHanbok,
		DressCategoryParty, DressCategoryAccessory:
		return true
	default:
		return false
	}
}

// DressSortBy is the closed set of search orderings.
type DressSortBy string

// Known sort orders.
const (
	SortRecommend DressSortBy = "recommend"
	SortLatest    DressSortBy = "latest"
	SortPriceAsc  DressSortBy = "price_asc"
	SortPriceDesc DressSortBy = "price_desc"
	SortDistance  DressSortBy = "distance"
)

// ParseDressSortBy converts raw input into a DressSortBy.
// An empty value selects SortRecommend.
func ParseDressSortBy(raw string) (DressSortBy, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return SortRecommend, nil
	}
	s := DressSortBy(raw)
	switch s {
	case SortRecommend, SortLatest, SortPriceAsc, SortPriceDesc, SortDistance:
		return s, nil
	default:
		return "", NewValidationError("sort", "is not a known sort order", ErrInvalidSortOrder)
	}
}

// Dress is a rentable catalog item owned by a store.
type Dress struct {
	ID          uuid.UUID       `json:"id"`
	StoreID     uuid.UUID       `json:"store_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    DressCategory   `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DressImage is one picture of a dress stored under an object key.
type DressImage struct {
	DressID  uuid.UUID
	Key      string
	Position int
}

// DressOption is a selectable dimension of a dress, such as size or color.
type DressOption struct {
	ID      uuid.UUID           `json:"id"`
	DressID uuid.UUID           `json:"dress_id"`
	Name    string              `json:"name"`
	Details []DressOptionDetail `json:"details"`
}

// DressOptionDetail is a single selectable value (slot) of a DressOption.
type DressOptionDetail struct {
	ID       uuid.UUID `json:"id"`
	OptionID uuid.UUID `json:"option_id"`
	Name     string    `json:"name"`
}

// FormatPrice renders an amount in won with thousands separators, e.g. "45,000원".
// Fractions are rounded to the nearest won.
func FormatPrice(price decimal.Decimal) string {
	digits := price.Round(0).Abs().String()

	var b strings.Builder
	if price.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	b.WriteString("원")
	return b.String()
}
