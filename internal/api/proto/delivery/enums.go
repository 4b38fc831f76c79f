package deliverypb

// TransportType is the courier's conveyance. It determines the maximum
// concurrent package load, which is computed by the Delivery service.
type TransportType int32

const (
	TransportType_TRANSPORT_TYPE_UNSPECIFIED TransportType = 0
	TransportType_TRANSPORT_TYPE_WALKING     TransportType = 1
	TransportType_TRANSPORT_TYPE_BICYCLE     TransportType = 2
	TransportType_TRANSPORT_TYPE_MOTORCYCLE  TransportType = 3
	TransportType_TRANSPORT_TYPE_CAR         TransportType = 4
)

var TransportType_name = map[int32]string{
	0: "TRANSPORT_TYPE_UNSPECIFIED",
	1: "TRANSPORT_TYPE_WALKING",
	2: "TRANSPORT_TYPE_BICYCLE",
	3: "TRANSPORT_TYPE_MOTORCYCLE",
	4: "TRANSPORT_TYPE_CAR",
}

var TransportType_value = map[string]int32{
	"TRANSPORT_TYPE_UNSPECIFIED": 0,
	"TRANSPORT_TYPE_WALKING":     1,
	"TRANSPORT_TYPE_BICYCLE":     2,
	"TRANSPORT_TYPE_MOTORCYCLE":  3,
	"TRANSPORT_TYPE_CAR":         4,
}

// CourierStatus is the courier's lifecycle state on the Delivery side.
type CourierStatus int32

const (
	CourierStatus_COURIER_STATUS_UNSPECIFIED CourierStatus = 0
	CourierStatus_COURIER_STATUS_UNAVAILABLE CourierStatus = 1
	CourierStatus_COURIER_STATUS_FREE        CourierStatus = 2
	CourierStatus_COURIER_STATUS_BUSY        CourierStatus = 3
	CourierStatus_COURIER_STATUS_ARCHIVED    CourierStatus = 4
)

var CourierStatus_name = map[int32]string{
	0: "COURIER_STATUS_UNSPECIFIED",
	1: "COURIER_STATUS_UNAVAILABLE",
	2: "COURIER_STATUS_FREE",
	3: "COURIER_STATUS_BUSY",
	4: "COURIER_STATUS_ARCHIVED",
}

var CourierStatus_value = map[string]int32{
	"COURIER_STATUS_UNSPECIFIED": 0,
	"COURIER_STATUS_UNAVAILABLE": 1,
	"COURIER_STATUS_FREE":        2,
	"COURIER_STATUS_BUSY":        3,
	"COURIER_STATUS_ARCHIVED":    4,
}

// PackageStatus is the lifecycle state of a single delivery task. It is
// distinct from the order's status on the OMS side.
type PackageStatus int32

const (
	PackageStatus_PACKAGE_STATUS_UNSPECIFIED       PackageStatus = 0
	PackageStatus_PACKAGE_STATUS_ACCEPTED          PackageStatus = 1
	PackageStatus_PACKAGE_STATUS_IN_POOL           PackageStatus = 2
	PackageStatus_PACKAGE_STATUS_ASSIGNED          PackageStatus = 3
	PackageStatus_PACKAGE_STATUS_IN_TRANSIT        PackageStatus = 4
	PackageStatus_PACKAGE_STATUS_DELIVERED         PackageStatus = 5
	PackageStatus_PACKAGE_STATUS_NOT_DELIVERED     PackageStatus = 6
	PackageStatus_PACKAGE_STATUS_REQUIRES_HANDLING PackageStatus = 7
)

var PackageStatus_name = map[int32]string{
	0: "PACKAGE_STATUS_UNSPECIFIED",
	1: "PACKAGE_STATUS_ACCEPTED",
	2: "PACKAGE_STATUS_IN_POOL",
	3: "PACKAGE_STATUS_ASSIGNED",
	4: "PACKAGE_STATUS_IN_TRANSIT",
	5: "PACKAGE_STATUS_DELIVERED",
	6: "PACKAGE_STATUS_NOT_DELIVERED",
	7: "PACKAGE_STATUS_REQUIRES_HANDLING",
}

var PackageStatus_value = map[string]int32{
	"PACKAGE_STATUS_UNSPECIFIED":       0,
	"PACKAGE_STATUS_ACCEPTED":          1,
	"PACKAGE_STATUS_IN_POOL":           2,
	"PACKAGE_STATUS_ASSIGNED":          3,
	"PACKAGE_STATUS_IN_TRANSIT":        4,
	"PACKAGE_STATUS_DELIVERED":         5,
	"PACKAGE_STATUS_NOT_DELIVERED":     6,
	"PACKAGE_STATUS_REQUIRES_HANDLING": 7,
}

// Priority is the delivery priority of a package.
type Priority int32

const (
	Priority_PRIORITY_UNSPECIFIED Priority = 0
	Priority_PRIORITY_NORMAL      Priority = 1
	Priority_PRIORITY_URGENT      Priority = 2
)

var Priority_name = map[int32]string{
	0: "PRIORITY_UNSPECIFIED",
	1: "PRIORITY_NORMAL",
	2: "PRIORITY_URGENT",
}

var Priority_value = map[string]int32{
	"PRIORITY_UNSPECIFIED": 0,
	"PRIORITY_NORMAL":      1,
	"PRIORITY_URGENT":      2,
}
