// Package store holds the storefront data model and its projections into
// the warehouse model. The mappers here are the ones the verification
// examples exercise.
package store

import (
	"time"
)

// Product is an item listed for sale. Money amounts are integer cents so
// no float rounding creeps in.
type Product struct {
	ID        int64     `json:"id"`
	SKU       string    `json:"sku"`
	Title     string    `json:"title"`
	Blurb     string    `json:"blurb,omitempty"`
	UnitCents int64     `json:"unit_cents"`
	OnHand    int       `json:"on_hand"`
	ListedAt  time.Time `json:"listed_at"`
}

// Customer is the account placing orders. Street stays nil until the
// first delivery is scheduled.
type Customer struct {
	ID     int64   `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Street *string `json:"street"`
	Active bool    `json:"active"`
}

// Order is one checkout by a customer.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	GrandCents int64       `json:"grand_cents"`
	Lines      []Line      `json:"lines"`
	CheckedOut time.Time   `json:"checked_out"`
}

// Line is one product position in an order. CentsEach freezes the price
// at checkout.
type Line struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Count     int    `json:"count"`
	CentsEach int64  `json:"cents_each"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusDraft     OrderStatus = "DRAFT"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
