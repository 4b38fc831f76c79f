package delivery

import (
	deliverypb "github.com/parcelops/backoffice/internal/api/proto/delivery"
)

// Domain enum tokens. Decoding is unknown-safe: a wire value this build
// does not know about comes back as EnumUnspecified instead of failing, so
// rolling deploys of the Delivery service cannot crash the admin layer.
// Encoding an unknown token sends the wire zero value.
const (
	EnumUnspecified = "UNSPECIFIED"

	TransportWalking    = "WALKING"
	TransportBicycle    = "BICYCLE"
	TransportMotorcycle = "MOTORCYCLE"
	TransportCar        = "CAR"

	StatusUnavailable = "UNAVAILABLE"
	StatusFree        = "FREE"
	StatusBusy        = "BUSY"
	StatusArchived    = "ARCHIVED"

	PackageAccepted         = "ACCEPTED"
	PackageInPool           = "IN_POOL"
	PackageAssigned         = "ASSIGNED"
	PackageInTransit        = "IN_TRANSIT"
	PackageDelivered        = "DELIVERED"
	PackageNotDelivered     = "NOT_DELIVERED"
	PackageRequiresHandling = "REQUIRES_HANDLING"

	PriorityNormal = "NORMAL"
	PriorityUrgent = "URGENT"
)

var transportTypeNames = map[deliverypb.TransportType]string{
	deliverypb.TransportType_TRANSPORT_TYPE_UNSPECIFIED: EnumUnspecified,
	deliverypb.TransportType_TRANSPORT_TYPE_WALKING:     TransportWalking,
	deliverypb.TransportType_TRANSPORT_TYPE_BICYCLE:     TransportBicycle,
	deliverypb.TransportType_TRANSPORT_TYPE_MOTORCYCLE:  TransportMotorcycle,
	deliverypb.TransportType_TRANSPORT_TYPE_CAR:         TransportCar,
}

var transportTypeValues = map[string]deliverypb.TransportType{
	EnumUnspecified:     deliverypb.TransportType_TRANSPORT_TYPE_UNSPECIFIED,
	TransportWalking:    deliverypb.TransportType_TRANSPORT_TYPE_WALKING,
	TransportBicycle:    deliverypb.TransportType_TRANSPORT_TYPE_BICYCLE,
	TransportMotorcycle: deliverypb.TransportType_TRANSPORT_TYPE_MOTORCYCLE,
	TransportCar:        deliverypb.TransportType_TRANSPORT_TYPE_CAR,
}

var courierStatusNames = map[deliverypb.CourierStatus]string{
	deliverypb.CourierStatus_COURIER_STATUS_UNSPECIFIED: EnumUnspecified,
	deliverypb.CourierStatus_COURIER_STATUS_UNAVAILABLE: StatusUnavailable,
	deliverypb.CourierStatus_COURIER_STATUS_FREE:        StatusFree,
	deliverypb.CourierStatus_COURIER_STATUS_BUSY:        StatusBusy,
	deliverypb.CourierStatus_COURIER_STATUS_ARCHIVED:    StatusArchived,
}

var courierStatusValues = map[string]deliverypb.CourierStatus{
	EnumUnspecified:   deliverypb.CourierStatus_COURIER_STATUS_UNSPECIFIED,
	StatusUnavailable: deliverypb.CourierStatus_COURIER_STATUS_UNAVAILABLE,
	StatusFree:        deliverypb.CourierStatus_COURIER_STATUS_FREE,
	StatusBusy:        deliverypb.CourierStatus_COURIER_STATUS_BUSY,
	StatusArchived:    deliverypb.CourierStatus_COURIER_STATUS_ARCHIVED,
}

var packageStatusNames = map[deliverypb.PackageStatus]string{
	deliverypb.PackageStatus_PACKAGE_STATUS_UNSPECIFIED:       EnumUnspecified,
	deliverypb.PackageStatus_PACKAGE_STATUS_ACCEPTED:          PackageAccepted,
	deliverypb.PackageStatus_PACKAGE_STATUS_IN_POOL:           PackageInPool,
	deliverypb.PackageStatus_PACKAGE_STATUS_ASSIGNED:          PackageAssigned,
	deliverypb.PackageStatus_PACKAGE_STATUS_IN_TRANSIT:        PackageInTransit,
	deliverypb.PackageStatus_PACKAGE_STATUS_DELIVERED:         PackageDelivered,
	deliverypb.PackageStatus_PACKAGE_STATUS_NOT_DELIVERED:     PackageNotDelivered,
	deliverypb.PackageStatus_PACKAGE_STATUS_REQUIRES_HANDLING: PackageRequiresHandling,
}

var priorityNames = map[deliverypb.Priority]string{
	deliverypb.Priority_PRIORITY_UNSPECIFIED: EnumUnspecified,
	deliverypb.Priority_PRIORITY_NORMAL:      PriorityNormal,
	deliverypb.Priority_PRIORITY_URGENT:      PriorityUrgent,
}

var priorityValues = map[string]deliverypb.Priority{
	EnumUnspecified: deliverypb.Priority_PRIORITY_UNSPECIFIED,
	PriorityNormal:  deliverypb.Priority_PRIORITY_NORMAL,
	PriorityUrgent:  deliverypb.Priority_PRIORITY_URGENT,
}

// TransportTypeName decodes a wire transport type.
func TransportTypeName(t deliverypb.TransportType) string {
	if name, ok := transportTypeNames[t]; ok {
		return name
	}
	return EnumUnspecified
}

// TransportTypeValue encodes a domain transport token.
func TransportTypeValue(name string) deliverypb.TransportType {
	return transportTypeValues[name]
}

// CourierStatusName decodes a wire courier status.
func CourierStatusName(s deliverypb.CourierStatus) string {
	if name, ok := courierStatusNames[s]; ok {
		return name
	}
	return EnumUnspecified
}

// CourierStatusValue encodes a domain status token.
func CourierStatusValue(name string) deliverypb.CourierStatus {
	return courierStatusValues[name]
}

// PackageStatusName decodes a wire package status.
func PackageStatusName(s deliverypb.PackageStatus) string {
	if name, ok := packageStatusNames[s]; ok {
		return name
	}
	return EnumUnspecified
}

// PriorityName decodes a wire priority.
func PriorityName(p deliverypb.Priority) string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return EnumUnspecified
}

// PriorityValue encodes a domain priority token.
func PriorityValue(name string) deliverypb.Priority {
	return priorityValues[name]
}

// encodeStatusFilter converts status tokens to wire values, silently
// dropping tokens the table does not know. Filtering is permissive: a stale
// token in a saved admin filter must not fail the whole query.
func encodeStatusFilter(names []string) []deliverypb.CourierStatus {
	var out []deliverypb.CourierStatus
	for _, name := range names {
		if v, ok := courierStatusValues[name]; ok {
			out = append(out, v)
		}
	}
	return out
}

// encodeTransportFilter converts transport tokens to wire values, dropping
// unknown tokens.
func encodeTransportFilter(names []string) []deliverypb.TransportType {
	var out []deliverypb.TransportType
	for _, name := range names {
		if v, ok := transportTypeValues[name]; ok {
			out = append(out, v)
		}
	}
	return out
}
