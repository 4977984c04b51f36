package model

import "time"

// Product is a catalogue document. Most fields are optional: imports only
// write the columns a row actually carried, so a stored product may be
// missing anything except its id.
type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name,omitempty" bson:"name,omitempty"`
	Price       int64     `json:"price,omitempty" bson:"price,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Link        string    `json:"link,omitempty" bson:"link,omitempty"`
	ProductCode string    `json:"productCode,omitempty" bson:"productCode,omitempty"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CategoryL1  string    `json:"categoryL1,omitempty" bson:"categoryL1,omitempty"`
	CategoryL2  string    `json:"categoryL2,omitempty" bson:"categoryL2,omitempty"`
	Rating      float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount int       `json:"reviewCount,omitempty" bson:"reviewCount,omitempty"`
	Views       int       `json:"views,omitempty" bson:"views,omitempty"`
	Stock       int       `json:"stock,omitempty" bson:"stock,omitempty"`
	Status      string    `json:"status,omitempty" bson:"status,omitempty"`
	Restockable bool      `json:"restockable,omitempty" bson:"restockable,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`

	// Legacy marker fields carried by scraped documents. They feed the
	// restock-pending predicate and are otherwise display-only.
	RestockPending bool     `json:"restockPending,omitempty" bson:"restockPending,omitempty"`
	RestockSoon    bool     `json:"restockSoon,omitempty" bson:"restockSoon,omitempty"`
	Badges         []string `json:"badges,omitempty" bson:"badges,omitempty"`
	Labels         []string `json:"labels,omitempty" bson:"labels,omitempty"`
	NameBadge      string   `json:"nameBadge,omitempty" bson:"nameBadge,omitempty"`
	BadgeText      string   `json:"badgeText,omitempty" bson:"badgeText,omitempty"`
}

// SavedMark records that a user saved a product. Existence is binary
// membership; unsaving deletes the document.
type SavedMark struct {
	UserID    string    `json:"userId" bson:"userId"`
	ProductID string    `json:"productId" bson:"productId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Identity is the authenticated caller as asserted by the external identity
// provider's token. The service never issues identities of its own.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
