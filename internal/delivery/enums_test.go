package delivery

import (
	"testing"

	deliverypb "github.com/parcelops/backoffice/internal/api/proto/delivery"
)

func TestTransportTypeRoundTrip(t *testing.T) {
	tokens := []string{TransportWalking, TransportBicycle, TransportMotorcycle, TransportCar}
	for _, token := range tokens {
		if got := TransportTypeName(TransportTypeValue(token)); got != token {
			t.Errorf("round trip of %q = %q", token, got)
		}
	}
}

func TestTransportTypeNameUnknownWireValue(t *testing.T) {
	if got := TransportTypeName(deliverypb.TransportType(99)); got != EnumUnspecified {
		t.Errorf("TransportTypeName(99) = %q, want %q", got, EnumUnspecified)
	}
}

func TestTransportTypeValueUnknownToken(t *testing.T) {
	if got := TransportTypeValue("HOVERBOARD"); got != deliverypb.TransportType_TRANSPORT_TYPE_UNSPECIFIED {
		t.Errorf("TransportTypeValue(HOVERBOARD) = %d, want 0", got)
	}
}

func TestCourierStatusRoundTrip(t *testing.T) {
	tokens := []string{StatusUnavailable, StatusFree, StatusBusy, StatusArchived}
	for _, token := range tokens {
		if got := CourierStatusName(CourierStatusValue(token)); got != token {
			t.Errorf("round trip of %q = %q", token, got)
		}
	}
}

func TestCourierStatusNameUnknownWireValue(t *testing.T) {
	if got := CourierStatusName(deliverypb.CourierStatus(42)); got != EnumUnspecified {
		t.Errorf("CourierStatusName(42) = %q, want %q", got, EnumUnspecified)
	}
}

func TestPackageStatusNameUnknownWireValue(t *testing.T) {
	if got := PackageStatusName(deliverypb.PackageStatus(100)); got != EnumUnspecified {
		t.Errorf("PackageStatusName(100) = %q, want %q", got, EnumUnspecified)
	}
}

func TestPackageStatusNameKnownValues(t *testing.T) {
	cases := map[deliverypb.PackageStatus]string{
		deliverypb.PackageStatus_PACKAGE_STATUS_ACCEPTED:          PackageAccepted,
		deliverypb.PackageStatus_PACKAGE_STATUS_IN_POOL:           PackageInPool,
		deliverypb.PackageStatus_PACKAGE_STATUS_ASSIGNED:          PackageAssigned,
		deliverypb.PackageStatus_PACKAGE_STATUS_IN_TRANSIT:        PackageInTransit,
		deliverypb.PackageStatus_PACKAGE_STATUS_DELIVERED:         PackageDelivered,
		deliverypb.PackageStatus_PACKAGE_STATUS_NOT_DELIVERED:     PackageNotDelivered,
		deliverypb.PackageStatus_PACKAGE_STATUS_REQUIRES_HANDLING: PackageRequiresHandling,
	}
	for wire, want := range cases {
		if got := PackageStatusName(wire); got != want {
			t.Errorf("PackageStatusName(%d) = %q, want %q", wire, got, want)
		}
	}
}

func TestPriorityRoundTrip(t *testing.T) {
	for _, token := range []string{PriorityNormal, PriorityUrgent} {
		if got := PriorityName(PriorityValue(token)); got != token {
			t.Errorf("round trip of %q = %q", token, got)
		}
	}
}

func TestEncodeStatusFilterDropsUnknownTokens(t *testing.T) {
	got := encodeStatusFilter([]string{StatusFree, "RETIRED", StatusBusy})
	want := []deliverypb.CourierStatus{
		deliverypb.CourierStatus_COURIER_STATUS_FREE,
		deliverypb.CourierStatus_COURIER_STATUS_BUSY,
	}
	if len(got) != len(want) {
		t.Fatalf("encoded %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("filter[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEncodeTransportFilterDropsUnknownTokens(t *testing.T) {
	got := encodeTransportFilter([]string{"SCOOTER"})
	if len(got) != 0 {
		t.Errorf("encoded %d values from unknown tokens, want 0", len(got))
	}
}
