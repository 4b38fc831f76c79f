package oms

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderTotalAmountIsExact(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{GoodID: "g-1", Quantity: 3, Price: decimal.RequireFromString("19.99")},
			{GoodID: "g-2", Quantity: 1, Price: decimal.RequireFromString("0.01")},
		},
	}

	// 19.99*3 drifts in binary floats; decimals must not
	if got := order.TotalAmount().String(); got != "59.98" {
		t.Errorf("TotalAmount = %s, want 59.98", got)
	}
}

func TestOrderTotalAmountEmpty(t *testing.T) {
	var order Order
	if !order.TotalAmount().IsZero() {
		t.Errorf("TotalAmount of empty order = %s, want 0", order.TotalAmount())
	}
}

func TestOrderItemCount(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 2},
			{Quantity: 5},
		},
	}
	if got := order.ItemCount(); got != 7 {
		t.Errorf("ItemCount = %d, want 7", got)
	}
}

func TestOrderStatusName(t *testing.T) {
	if got := (Order{Status: StatusPending}).StatusName(); got != "Pending" {
		t.Errorf("StatusName = %q, want Pending", got)
	}
	if got := (Order{Status: "SOMETHING_NEW"}).StatusName(); got != "Unknown" {
		t.Errorf("StatusName of unknown token = %q, want Unknown", got)
	}
}
