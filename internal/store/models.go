package store

import "time"

// StagedCheckout holds the serialized line items a user staged on the
// cart page, one row per user.
type StagedCheckout struct {
	UserEmail string `gorm:"primaryKey;size:255;not null"`
	ItemsJSON string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartEntry mirrors one cached cart item.
type CartEntry struct {
	ItemID    string `gorm:"primaryKey;size:64;not null"`
	UserEmail string `gorm:"index;size:255;not null"`
	ItemJSON  string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// CartCounter is the badge count shown in the storefront header.
type CartCounter struct {
	UserEmail string `gorm:"primaryKey;size:255;not null"`
	Count     int    `gorm:"not null"`
	UpdatedAt time.Time
}
