// Package oms is the typed client for the Order Management service.
//
// Monetary amounts are decimal values end to end; the wire carries them as
// strings and the domain uses shopspring decimals, so order totals never
// drift through binary floats.
package oms

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order.
type OrderItem struct {
	GoodID   string
	Quantity int
	Price    decimal.Decimal // unit price, currency-exact
}

// Address is a postal address with geo coordinates.
type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
	Latitude   float64
	Longitude  float64
}

// DeliveryPeriod is the requested delivery time window. Either bound may be
// absent.
type DeliveryPeriod struct {
	StartTime *time.Time
	EndTime   *time.Time
}

// DeliveryInfo groups the delivery-related parts of an order.
type DeliveryInfo struct {
	PickupAddress   *Address
	DeliveryAddress *Address
	DeliveryPeriod  *DeliveryPeriod
	Priority        string // see Priority* constants
}

// Order is the order record as reported by OMS.
type Order struct {
	OrderID      string
	CustomerID   string
	Items        []OrderItem
	Status       string // see Status* constants
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
	DeliveryInfo *DeliveryInfo
}

// TotalAmount is the exact order total: sum of price x quantity over all
// items.
func (o Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ItemCount is the total number of units across all items.
func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// StatusName renders the order status for display (e.g. "Pending").
func (o Order) StatusName() string {
	return StatusDisplayName(o.Status)
}

// OrderListResult is one page of the order listing.
type OrderListResult struct {
	Orders      []Order
	TotalCount  int
	CurrentPage int
	PageSize    int
	TotalPages  int
}
