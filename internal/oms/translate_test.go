package oms

import (
	"testing"

	omspb "github.com/parcelops/backoffice/internal/api/proto/oms"
)

func TestOrderItemFromProtoMalformedPrice(t *testing.T) {
	item := orderItemFromProto(&omspb.OrderItem{Id: "g-1", Quantity: 1, Price: "n/a"})
	if !item.Price.IsZero() {
		t.Errorf("Price = %s, want 0 for malformed input", item.Price)
	}
	if item.GoodID != "g-1" || item.Quantity != 1 {
		t.Errorf("item = %+v", item)
	}
}

func TestOrderFromProtoAbsentOptionals(t *testing.T) {
	order := orderFromProto(&omspb.Order{Id: "o-1"})
	if order.CreatedAt != nil || order.UpdatedAt != nil {
		t.Errorf("timestamps synthesized: %v %v", order.CreatedAt, order.UpdatedAt)
	}
	if order.DeliveryInfo != nil {
		t.Errorf("DeliveryInfo = %+v, want nil", order.DeliveryInfo)
	}
	if order.Status != EnumUnspecified {
		t.Errorf("Status = %q, want %q", order.Status, EnumUnspecified)
	}
}

func TestOrderStatusNameUnknownWireValue(t *testing.T) {
	if got := OrderStatusName(omspb.OrderStatus(77)); got != EnumUnspecified {
		t.Errorf("OrderStatusName(77) = %q, want %q", got, EnumUnspecified)
	}
}

func TestDeliveryInfoFromProto(t *testing.T) {
	di := deliveryInfoFromProto(&omspb.DeliveryInfo{
		DeliveryAddress: &omspb.DeliveryAddress{City: "Kazan"},
		Priority:        omspb.DeliveryPriority_DELIVERY_PRIORITY_URGENT,
	})
	if di == nil {
		t.Fatal("DeliveryInfo = nil")
	}
	if di.PickupAddress != nil {
		t.Errorf("PickupAddress = %+v, want nil", di.PickupAddress)
	}
	if di.DeliveryAddress == nil || di.DeliveryAddress.City != "Kazan" {
		t.Errorf("DeliveryAddress = %+v", di.DeliveryAddress)
	}
	if di.Priority != PriorityUrgent {
		t.Errorf("Priority = %q, want %q", di.Priority, PriorityUrgent)
	}
}
