package models

import "time"

// Category groups gift cards for browsing.
type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Slug     string `gorm:"column:slug;size:64;uniqueIndex;not null" json:"slug"`
	Name     string `gorm:"column:name;size:128;not null" json:"name"`
	Position int    `gorm:"column:position;not null;default:0" json:"position"`
}

// TableName overrides the table name used by Category to `categories`
func (Category) TableName() string {
	return "categories"
}

// GiftCard is a claimable card. ImageURL is the stored object-store URL of its artwork.
type GiftCard struct {
	ID          uint      `gorm:"primaryKey"`
	CategoryID  uint      `gorm:"column:category_id;index;not null"`
	Title       string    `gorm:"column:title;size:255;not null"`
	Description string    `gorm:"column:description;type:text"`
	ImageURL    string    `gorm:"column:image_url;size:1024"`
	ValueCents  int64     `gorm:"column:value_cents;not null;default:0"`
	Currency    string    `gorm:"column:currency;size:3;not null;default:USD"`
	Claimed     bool      `gorm:"column:claimed;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name used by GiftCard to `gift_cards`
func (GiftCard) TableName() string {
	return "gift_cards"
}

// CardView is a gift card as returned to clients, with a signed image URL.
type CardView struct {
	ID          uint      `json:"id"`
	CategoryID  uint      `json:"category_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	ImageKey    string    `json:"image_key"`
	ValueCents  int64     `json:"value_cents"`
	Currency    string    `json:"currency"`
	Claimed     bool      `json:"claimed"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpectedColumns lists the columns the catalog reads, per table.
var ExpectedColumns = map[string][]string{
	Category{}.TableName(): {"id", "slug", "name", "position"},
	GiftCard{}.TableName(): {"id", "category_id", "title", "description", "image_url", "value_cents", "currency", "claimed", "created_at"},
}
