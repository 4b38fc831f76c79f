package delivery

import (
	"time"

	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	deliverypb "github.com/parcelops/backoffice/internal/api/proto/delivery"
)

// Pure proto<->domain conversions. To-domain never invents values for
// absent optional fields; to-wire leaves unset optional fields nil so the
// services see them as not-present.

func timeFromProto(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func workHoursFromProto(wh *deliverypb.WorkHours) *WorkHours {
	if wh == nil {
		return nil
	}
	days := make([]int, 0, len(wh.GetWorkDays()))
	for _, d := range wh.GetWorkDays() {
		days = append(days, int(d))
	}
	return &WorkHours{
		StartTime: wh.GetStartTime(),
		EndTime:   wh.GetEndTime(),
		WorkDays:  days,
	}
}

func workHoursToProto(wh *WorkHours) *deliverypb.WorkHours {
	if wh == nil {
		return nil
	}
	days := make([]int32, 0, len(wh.WorkDays))
	for _, d := range wh.WorkDays {
		days = append(days, int32(d))
	}
	return &deliverypb.WorkHours{
		StartTime: wh.StartTime,
		EndTime:   wh.EndTime,
		WorkDays:  days,
	}
}

func locationFromProto(loc *deliverypb.Location) *Location {
	if loc == nil {
		return nil
	}
	return &Location{
		Latitude:  loc.GetLatitude(),
		Longitude: loc.GetLongitude(),
	}
}

func addressFromProto(addr *deliverypb.Address) *Address {
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

func courierFromProto(pc *deliverypb.Courier) Courier {
	return Courier{
		CourierID:            pc.GetCourierId(),
		Name:                 pc.GetName(),
		Phone:                pc.GetPhone(),
		Email:                pc.GetEmail(),
		TransportType:        TransportTypeName(pc.GetTransportType()),
		MaxDistanceKm:        pc.GetMaxDistanceKm(),
		Status:               CourierStatusName(pc.GetStatus()),
		CurrentLoad:          int(pc.GetCurrentLoad()),
		MaxLoad:              int(pc.GetMaxLoad()),
		Rating:               pc.GetRating(),
		WorkHours:            workHoursFromProto(pc.GetWorkHours()),
		WorkZone:             pc.GetWorkZone(),
		CurrentLocation:      locationFromProto(pc.GetCurrentLocation()),
		SuccessfulDeliveries: int(pc.GetSuccessfulDeliveries()),
		FailedDeliveries:     int(pc.GetFailedDeliveries()),
		CreatedAt:            timeFromProto(pc.GetCreatedAt()),
		LastActiveAt:         timeFromProto(pc.GetLastActiveAt()),
	}
}

func deliveryRecordFromProto(pd *deliverypb.DeliveryRecord) DeliveryRecord {
	return DeliveryRecord{
		PackageID:       pd.GetPackageId(),
		OrderID:         pd.GetOrderId(),
		Status:          PackageStatusName(pd.GetStatus()),
		PickupAddress:   addressFromProto(pd.GetPickupAddress()),
		DeliveryAddress: addressFromProto(pd.GetDeliveryAddress()),
		AssignedAt:      timeFromProto(pd.GetAssignedAt()),
		DeliveredAt:     timeFromProto(pd.GetDeliveredAt()),
		Priority:        PriorityName(pd.GetPriority()),
	}
}
