package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DressBrief is a catalog listing row. Image keys are resolved into URLs by
// the service layer; distance is only set when the caller supplied a position.
type DressBrief struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  DressCategory   `json:"category"`
	StoreID   uuid.UUID       `json:"store_id"`
	StoreName string          `json:"store_name"`
	StoreLat  float64         `json:"-"`
	StoreLng  float64         `json:"-"`
	ImageKey  string          `json:"-"`
	ImageURL  string          `json:"image_url"`
	Liked     bool            `json:"liked"`
	LikeCount int             `json:"like_count"`
	Distance  *float64        `json:"distance,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Coordinates returns the position of the store that owns the dress.
func (b *DressBrief) Coordinates() (lat, lng float64) {
	return b.StoreLat, b.StoreLng
}

// DressSearchCriteria narrows a catalog search. A nil Category matches all
// categories; UserID drives the liked flag.
type DressSearchCriteria struct {
	Name     string
	Category *DressCategory
	Sort     DressSortBy
	UserID   uuid.UUID
}

// StoreDetail is a store with its dresses.
type StoreDetail struct {
	Store    *Store       `json:"store"`
	ImageURL string       `json:"image_url"`
	Dresses  []DressBrief `json:"dresses"`
}

// DressDetail is the full dress page.
type DressDetail struct {
	Dress     *Dress        `json:"dress"`
	StoreName string        `json:"store_name"`
	ImageURLs []string      `json:"image_urls"`
	Options   []DressOption `json:"options"`
	Liked     bool          `json:"liked"`
}

// LikedDress is a row of a user's favorites list.
type LikedDress struct {
	DressID   uuid.UUID       `json:"dress_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	PriceText string          `json:"price_text"`
	ImageKey  string          `json:"-"`
	ImageURL  string          `json:"image_url"`
	LikedAt   time.Time       `json:"liked_at"`
}

// ReservationForm is what a user sees before booking at a store.
type ReservationForm struct {
	StoreID   uuid.UUID `json:"store_id"`
	StoreName string    `json:"store_name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	ImageURL  string    `json:"image_url"`
}

// OrderLine is one reserved dress of a user's reservation.
type OrderLine struct {
	ReservationID uuid.UUID         `json:"reservation_id"`
	Status        ReservationStatus `json:"status"`
	StoreName     string            `json:"store_name"`
	DressID       uuid.UUID         `json:"dress_id"`
	DressName     string            `json:"dress_name"`
	Price         decimal.Decimal   `json:"price"`
	ImageKey      string            `json:"-"`
	ImageURL      string            `json:"image_url"`
	Option1Name   string            `json:"option1_name"`
	Option2Name   string            `json:"option2_name"`
	Quantity      int               `json:"quantity"`
	CreatedAt     time.Time         `json:"created_at"`
}

// OrderSummary is one row of a user's reservation list.
type OrderSummary struct {
	ReservationID uuid.UUID         `json:"reservation_id"`
	Status        ReservationStatus `json:"status"`
	StoreName     string            `json:"store_name"`
	DressName     string            `json:"dress_name"`
	ImageKey      string            `json:"-"`
	ImageURL      string            `json:"image_url"`
	ItemCount     int               `json:"item_count"`
	TotalQuantity int               `json:"total_quantity"`
	CreatedAt     time.Time         `json:"created_at"`
}
