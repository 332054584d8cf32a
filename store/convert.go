package store

import (
	"strings"

	"mapping-verifier/warehouse"
)

// ToWarehouseOrder projects a store order into the warehouse model. The
// warehouse keeps lowercase status labels and maintains SyncedAt itself.
func ToWarehouseOrder(o Order) warehouse.Order {
	lines := make([]warehouse.Line, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, ToWarehouseLine(l))
	}

	return warehouse.Order{
		ID:         uint(o.ID),
		CustomerID: uint(o.CustomerID),
		Status:     StatusLabel(o.Status),
		GrandTotal: o.GrandCents,
		Lines:      lines,
		PlacedAt:   &o.CheckedOut,
	}
}

// ToWarehouseLine projects one order line.
func ToWarehouseLine(l Line) warehouse.Line {
	return warehouse.Line{
		ProductID: uint(l.ProductID),
		Title:     l.Title,
		Count:     l.Count,
		CentsEach: l.CentsEach,
	}
}

// ToWarehouseProduct projects a listing. The warehouse has no use for the
// marketing blurb.
func ToWarehouseProduct(p Product) warehouse.Product {
	return warehouse.Product{
		ID:       uint(p.ID),
		SKU:      p.SKU,
		Title:    p.Title,
		Cents:    p.UnitCents,
		Stock:    p.OnHand,
		ListedAt: p.ListedAt,
	}
}

// ToWarehouseCustomer projects an account.
func ToWarehouseCustomer(c Customer) warehouse.Customer {
	return warehouse.Customer{
		ID:     uint(c.ID),
		Email:  c.Email,
		Name:   c.Name,
		Street: c.Street,
		Active: c.Active,
	}
}

// StatusLabel renders an order status the way the warehouse stores it.
func StatusLabel(s OrderStatus) string {
	return strings.ToLower(string(s))
}
