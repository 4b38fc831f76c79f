package oms

import (
	"time"

	"github.com/shopspring/decimal"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	omspb "github.com/parcelops/backoffice/internal/api/proto/oms"
)

func timeFromProto(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func addressFromProto(addr *omspb.DeliveryAddress) *Address {
	if addr == nil {
		return nil
	}
	return &Address{
		Street:     addr.GetStreet(),
		City:       addr.GetCity(),
		PostalCode: addr.GetPostalCode(),
		Country:    addr.GetCountry(),
		Latitude:   addr.GetLatitude(),
		Longitude:  addr.GetLongitude(),
	}
}

func deliveryPeriodFromProto(dp *omspb.DeliveryPeriod) *DeliveryPeriod {
	if dp == nil {
		return nil
	}
	return &DeliveryPeriod{
		StartTime: timeFromProto(dp.GetStartTime()),
		EndTime:   timeFromProto(dp.GetEndTime()),
	}
}

func deliveryInfoFromProto(di *omspb.DeliveryInfo) *DeliveryInfo {
	if di == nil {
		return nil
	}
	return &DeliveryInfo{
		PickupAddress:   addressFromProto(di.GetPickupAddress()),
		DeliveryAddress: addressFromProto(di.GetDeliveryAddress()),
		DeliveryPeriod:  deliveryPeriodFromProto(di.GetDeliveryPeriod()),
		Priority:        PriorityName(di.GetPriority()),
	}
}

func orderItemFromProto(pi *omspb.OrderItem) OrderItem {
	// A malformed price string decodes to zero rather than failing the
	// whole order; the admin still needs to show the record.
	price, err := decimal.NewFromString(pi.GetPrice())
	if err != nil {
		price = decimal.Zero
	}
	return OrderItem{
		GoodID:   pi.GetId(),
		Quantity: int(pi.GetQuantity()),
		Price:    price,
	}
}

func orderFromProto(po *omspb.Order) Order {
	items := make([]OrderItem, 0, len(po.GetItems()))
	for _, pi := range po.GetItems() {
		items = append(items, orderItemFromProto(pi))
	}

	return Order{
		OrderID:      po.GetId(),
		CustomerID:   po.GetCustomerId(),
		Items:        items,
		Status:       OrderStatusName(po.GetStatus()),
		CreatedAt:    timeFromProto(po.GetCreatedAt()),
		UpdatedAt:    timeFromProto(po.GetUpdatedAt()),
		DeliveryInfo: deliveryInfoFromProto(po.GetDeliveryInfo()),
	}
}
