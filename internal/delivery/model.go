// Package delivery is the typed client for the Delivery/Courier service.
//
// It translates between the wire representation (deliverypb) and plain
// domain value objects, so the admin layer never touches protobuf types.
// Returned objects are snapshots: the client keeps no entity state between
// calls, only the connection.
package delivery

import "time"

// WorkHours is a courier's configured daily availability window.
type WorkHours struct {
	StartTime string // HH:MM, 24h
	EndTime   string // HH:MM, 24h
	WorkDays  []int  // ISO weekday numbers, 1=Mon .. 7=Sun
}

// Location is a GPS point.
type Location struct {
	Latitude  float64
	Longitude float64
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

// Courier is the courier record as reported by the Delivery service.
// Optional parts are nil when the service did not send them.
type Courier struct {
	CourierID            string
	Name                 string
	Phone                string
	Email                string
	TransportType        string // see TransportType* constants
	MaxDistanceKm        float64
	Status               string // see Status* constants
	CurrentLoad          int
	MaxLoad              int
	Rating               float64
	WorkHours            *WorkHours
	WorkZone             string
	CurrentLocation      *Location
	SuccessfulDeliveries int
	FailedDeliveries     int
	CreatedAt            *time.Time
	LastActiveAt         *time.Time
}

// DeliveryRecord is one delivery task assigned to a courier. Its status is
// the package lifecycle, independent of the order's status in OMS.
type DeliveryRecord struct {
	PackageID       string
	OrderID         string
	Status          string // see Package* constants
	PickupAddress   *Address
	DeliveryAddress *Address
	AssignedAt      *time.Time
	DeliveredAt     *time.Time
	Priority        string // see Priority* constants
}

// CourierPoolResult is one page of the courier pool.
type CourierPoolResult struct {
	Couriers    []Courier
	TotalCount  int
	CurrentPage int
	PageSize    int
	TotalPages  int
}

// CourierDeliveriesResult is the recent-deliveries listing for one courier.
type CourierDeliveriesResult struct {
	Deliveries []DeliveryRecord
	TotalCount int
}
