package delivery

import (
	"testing"
	"time"

	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	deliverypb "github.com/parcelops/backoffice/internal/api/proto/delivery"
)

func TestCourierFromProtoFull(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	pc := &deliverypb.Courier{
		CourierId:     "c-1",
		Name:          "Ivan Petrov",
		Phone:         "+70000000001",
		Email:         "ivan@example.com",
		TransportType: deliverypb.TransportType_TRANSPORT_TYPE_BICYCLE,
		MaxDistanceKm: 12.5,
		Status:        deliverypb.CourierStatus_COURIER_STATUS_FREE,
		CurrentLoad:   1,
		MaxLoad:       3,
		Rating:        4.8,
		WorkHours: &deliverypb.WorkHours{
			StartTime: "09:00",
			EndTime:   "18:00",
			WorkDays:  []int32{1, 2, 3, 4, 5},
		},
		WorkZone:             "center",
		CurrentLocation:      &deliverypb.Location{Latitude: 55.75, Longitude: 37.61},
		SuccessfulDeliveries: 120,
		FailedDeliveries:     2,
		CreatedAt:            timestamppb.New(created),
	}

	c := courierFromProto(pc)

	if c.CourierID != "c-1" || c.Name != "Ivan Petrov" {
		t.Errorf("identity fields lost: %+v", c)
	}
	if c.TransportType != TransportBicycle {
		t.Errorf("TransportType = %q, want %q", c.TransportType, TransportBicycle)
	}
	if c.Status != StatusFree {
		t.Errorf("Status = %q, want %q", c.Status, StatusFree)
	}
	if c.WorkHours == nil {
		t.Fatal("WorkHours = nil")
	}
	if c.WorkHours.StartTime != "09:00" || c.WorkHours.EndTime != "18:00" {
		t.Errorf("WorkHours = %+v", c.WorkHours)
	}
	if len(c.WorkHours.WorkDays) != 5 || c.WorkHours.WorkDays[0] != 1 {
		t.Errorf("WorkDays = %v", c.WorkHours.WorkDays)
	}
	if c.CurrentLocation == nil || c.CurrentLocation.Latitude != 55.75 {
		t.Errorf("CurrentLocation = %+v", c.CurrentLocation)
	}
	if c.CreatedAt == nil || !c.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", c.CreatedAt, created)
	}
	if c.LastActiveAt != nil {
		t.Errorf("LastActiveAt = %v, want nil for absent field", c.LastActiveAt)
	}
}

func TestCourierFromProtoAbsentOptionals(t *testing.T) {
	c := courierFromProto(&deliverypb.Courier{CourierId: "c-2"})

	if c.WorkHours != nil {
		t.Errorf("WorkHours = %+v, want nil", c.WorkHours)
	}
	if c.CurrentLocation != nil {
		t.Errorf("CurrentLocation = %+v, want nil", c.CurrentLocation)
	}
	if c.CreatedAt != nil || c.LastActiveAt != nil {
		t.Errorf("timestamps synthesized: %v %v", c.CreatedAt, c.LastActiveAt)
	}
	if c.Status != EnumUnspecified {
		t.Errorf("Status = %q, want %q", c.Status, EnumUnspecified)
	}
}

func TestWorkHoursRoundTrip(t *testing.T) {
	wh := &WorkHours{StartTime: "08:30", EndTime: "17:30", WorkDays: []int{6, 7}}
	got := workHoursFromProto(workHoursToProto(wh))
	if got == nil {
		t.Fatal("round trip = nil")
	}
	if got.StartTime != wh.StartTime || got.EndTime != wh.EndTime {
		t.Errorf("round trip = %+v, want %+v", got, wh)
	}
	if len(got.WorkDays) != 2 || got.WorkDays[0] != 6 || got.WorkDays[1] != 7 {
		t.Errorf("WorkDays = %v, want %v", got.WorkDays, wh.WorkDays)
	}
}

func TestWorkHoursToProtoNil(t *testing.T) {
	if got := workHoursToProto(nil); got != nil {
		t.Errorf("workHoursToProto(nil) = %+v, want nil", got)
	}
}

func TestDeliveryRecordFromProto(t *testing.T) {
	assigned := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	pd := &deliverypb.DeliveryRecord{
		PackageId: "p-7",
		OrderId:   "o-7",
		Status:    deliverypb.PackageStatus_PACKAGE_STATUS_IN_TRANSIT,
		DeliveryAddress: &deliverypb.Address{
			Street: "Arbat 1", City: "Moscow", PostalCode: "119002", Country: "RU",
		},
		AssignedAt: timestamppb.New(assigned),
		Priority:   deliverypb.Priority_PRIORITY_URGENT,
	}

	rec := deliveryRecordFromProto(pd)

	if rec.PackageID != "p-7" || rec.OrderID != "o-7" {
		t.Errorf("identity fields lost: %+v", rec)
	}
	if rec.Status != PackageInTransit {
		t.Errorf("Status = %q, want %q", rec.Status, PackageInTransit)
	}
	if rec.Priority != PriorityUrgent {
		t.Errorf("Priority = %q, want %q", rec.Priority, PriorityUrgent)
	}
	if rec.PickupAddress != nil {
		t.Errorf("PickupAddress = %+v, want nil", rec.PickupAddress)
	}
	if rec.DeliveryAddress == nil || rec.DeliveryAddress.City != "Moscow" {
		t.Errorf("DeliveryAddress = %+v", rec.DeliveryAddress)
	}
	if rec.DeliveredAt != nil {
		t.Errorf("DeliveredAt = %v, want nil", rec.DeliveredAt)
	}
	if rec.AssignedAt == nil || !rec.AssignedAt.Equal(assigned) {
		t.Errorf("AssignedAt = %v, want %v", rec.AssignedAt, assigned)
	}
}
