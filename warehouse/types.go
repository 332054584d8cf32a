// Package warehouse holds the fulfillment-side data model that store
// records are projected into.
package warehouse

import (
	"time"
)

// Product is the warehouse projection of a listed item.
type Product struct {
	ID       uint      `gorm:"primaryKey"  json:"id"`
	SKU      string    `gorm:"uniqueIndex" json:"sku"`
	Title    string    `json:"title"`
	Cents    int64     `json:"cents"` // minor currency unit
	Stock    int       `json:"stock"`
	ListedAt time.Time `json:"listed_at"`
}

// Customer is the warehouse projection of a store account.
type Customer struct {
	ID     uint    `gorm:"primaryKey"  json:"id"`
	Email  string  `gorm:"uniqueIndex" json:"email"`
	Name   string  `json:"name"`
	Street *string `json:"street,omitempty"`
	Active bool    `json:"active"`
}

// Order is a checkout as the warehouse sees it.
type Order struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CustomerID uint       `json:"customer_id"`
	Status     string     `json:"status"`      // "draft", "paid", "shipped", "cancelled"
	GrandTotal int64      `json:"grand_total"` // cents
	Lines      []Line     `gorm:"foreignKey:OrderID" json:"lines"`
	PlacedAt   *time.Time `json:"placed_at,omitempty"`
	SyncedAt   time.Time  `json:"synced_at"` // maintained by the sync job
}

// Line is a product position within an order, price frozen at checkout.
type Line struct {
	ProductID uint   `json:"product_id"`
	Title     string `json:"title"`
	Count     int    `json:"count"`
	CentsEach int64  `json:"cents_each"`
}
