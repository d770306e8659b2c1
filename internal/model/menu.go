package model

import "time"

// MenuItem is one dish on the restaurant menu as stored in the
// `menu_items` table.  Prices are kept in cents to avoid floating
// point money.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – dish name shown on the menu.
//  Description – short marketing description.
//  PriceCents  – price in cents.
//  Category    – menu section (e.g. starters, mains, desserts).
//  ImagePath   – public-relative path of the dish photo, may be empty.
//  IsAvailable – whether the dish is currently offered.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type MenuItem struct {
    ID          uint64    `json:"id"`           // menu_items.id
    Name        string    `json:"name"`         // menu_items.name
    Description string    `json:"description"`  // menu_items.description
    PriceCents  uint32    `json:"price_cents"`  // menu_items.price_cents
    Category    string    `json:"category"`     // menu_items.category
    ImagePath   string    `json:"image_path"`   // menu_items.image_path
    IsAvailable bool      `json:"is_available"` // menu_items.is_available
    CreatedAt   time.Time `json:"created_at"`   // menu_items.created_at
    UpdatedAt   time.Time `json:"updated_at"`   // menu_items.updated_at
}

// AddOn is an extra that can accompany any dish (side, sauce,
// beverage) as stored in the `add_ons` table.
type AddOn struct {
    ID         uint64    `json:"id"`          // add_ons.id
    Name       string    `json:"name"`        // add_ons.name
    PriceCents uint32    `json:"price_cents"` // add_ons.price_cents
    ImagePath  string    `json:"image_path"`  // add_ons.image_path
    CreatedAt  time.Time `json:"created_at"`  // add_ons.created_at
    UpdatedAt  time.Time `json:"updated_at"`  // add_ons.updated_at
}
