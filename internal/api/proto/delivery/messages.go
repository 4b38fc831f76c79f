package deliverypb

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// WorkHours is a courier's daily availability window and active weekdays.
type WorkHours struct {
	StartTime string  `json:"start_time,omitempty"` // HH:MM, 24h
	EndTime   string  `json:"end_time,omitempty"`   // HH:MM, 24h
	WorkDays  []int32 `json:"work_days,omitempty"`  // ISO weekday numbers, 1=Mon .. 7=Sun
}

func (x *WorkHours) GetStartTime() string {
	if x != nil {
		return x.StartTime
	}
	return ""
}

func (x *WorkHours) GetEndTime() string {
	if x != nil {
		return x.EndTime
	}
	return ""
}

func (x *WorkHours) GetWorkDays() []int32 {
	if x != nil {
		return x.WorkDays
	}
	return nil
}

// Location is a GPS point.
type Location struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

func (x *Location) GetLatitude() float64 {
	if x != nil {
		return x.Latitude
	}
	return 0
}

func (x *Location) GetLongitude() float64 {
	if x != nil {
		return x.Longitude
	}
	return 0
}

// Address is a postal address with geo coordinates.
type Address struct {
	Street     string  `json:"street,omitempty"`
	City       string  `json:"city,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Country    string  `json:"country,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

func (x *Address) GetStreet() string {
	if x != nil {
		return x.Street
	}
	return ""
}

func (x *Address) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *Address) GetPostalCode() string {
	if x != nil {
		return x.PostalCode
	}
	return ""
}

func (x *Address) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *Address) GetLatitude() float64 {
	if x != nil {
		return x.Latitude
	}
	return 0
}

func (x *Address) GetLongitude() float64 {
	if x != nil {
		return x.Longitude
	}
	return 0
}

// Courier is the full courier record as stored by the Delivery service.
type Courier struct {
	CourierId            string                 `json:"courier_id,omitempty"`
	Name                 string                 `json:"name,omitempty"`
	Phone                string                 `json:"phone,omitempty"`
	Email                string                 `json:"email,omitempty"`
	TransportType        TransportType          `json:"transport_type,omitempty"`
	MaxDistanceKm        float64                `json:"max_distance_km,omitempty"`
	Status               CourierStatus          `json:"status,omitempty"`
	CurrentLoad          int32                  `json:"current_load,omitempty"`
	MaxLoad              int32                  `json:"max_load,omitempty"`
	Rating               float64                `json:"rating,omitempty"`
	WorkHours            *WorkHours             `json:"work_hours,omitempty"`
	WorkZone             string                 `json:"work_zone,omitempty"`
	CurrentLocation      *Location              `json:"current_location,omitempty"`
	SuccessfulDeliveries int32                  `json:"successful_deliveries,omitempty"`
	FailedDeliveries     int32                  `json:"failed_deliveries,omitempty"`
	CreatedAt            *timestamppb.Timestamp `json:"created_at,omitempty"`
	LastActiveAt         *timestamppb.Timestamp `json:"last_active_at,omitempty"`
}

func (x *Courier) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

func (x *Courier) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Courier) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Courier) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Courier) GetTransportType() TransportType {
	if x != nil {
		return x.TransportType
	}
	return TransportType_TRANSPORT_TYPE_UNSPECIFIED
}

func (x *Courier) GetMaxDistanceKm() float64 {
	if x != nil {
		return x.MaxDistanceKm
	}
	return 0
}

func (x *Courier) GetStatus() CourierStatus {
	if x != nil {
		return x.Status
	}
	return CourierStatus_COURIER_STATUS_UNSPECIFIED
}

func (x *Courier) GetCurrentLoad() int32 {
	if x != nil {
		return x.CurrentLoad
	}
	return 0
}

func (x *Courier) GetMaxLoad() int32 {
	if x != nil {
		return x.MaxLoad
	}
	return 0
}

func (x *Courier) GetRating() float64 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *Courier) GetWorkHours() *WorkHours {
	if x != nil {
		return x.WorkHours
	}
	return nil
}

func (x *Courier) GetWorkZone() string {
	if x != nil {
		return x.WorkZone
	}
	return ""
}

func (x *Courier) GetCurrentLocation() *Location {
	if x != nil {
		return x.CurrentLocation
	}
	return nil
}

func (x *Courier) GetSuccessfulDeliveries() int32 {
	if x != nil {
		return x.SuccessfulDeliveries
	}
	return 0
}

func (x *Courier) GetFailedDeliveries() int32 {
	if x != nil {
		return x.FailedDeliveries
	}
	return 0
}

func (x *Courier) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Courier) GetLastActiveAt() *timestamppb.Timestamp {
	if x != nil {
		return x.LastActiveAt
	}
	return nil
}

// DeliveryRecord is one delivery task assigned to a courier.
type DeliveryRecord struct {
	PackageId       string                 `json:"package_id,omitempty"`
	OrderId         string                 `json:"order_id,omitempty"`
	Status          PackageStatus          `json:"status,omitempty"`
	PickupAddress   *Address               `json:"pickup_address,omitempty"`
	DeliveryAddress *Address               `json:"delivery_address,omitempty"`
	AssignedAt      *timestamppb.Timestamp `json:"assigned_at,omitempty"`
	DeliveredAt     *timestamppb.Timestamp `json:"delivered_at,omitempty"`
	Priority        Priority               `json:"priority,omitempty"`
}

func (x *DeliveryRecord) GetPackageId() string {
	if x != nil {
		return x.PackageId
	}
	return ""
}

func (x *DeliveryRecord) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *DeliveryRecord) GetStatus() PackageStatus {
	if x != nil {
		return x.Status
	}
	return PackageStatus_PACKAGE_STATUS_UNSPECIFIED
}

func (x *DeliveryRecord) GetPickupAddress() *Address {
	if x != nil {
		return x.PickupAddress
	}
	return nil
}

func (x *DeliveryRecord) GetDeliveryAddress() *Address {
	if x != nil {
		return x.DeliveryAddress
	}
	return nil
}

func (x *DeliveryRecord) GetAssignedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.AssignedAt
	}
	return nil
}

func (x *DeliveryRecord) GetDeliveredAt() *timestamppb.Timestamp {
	if x != nil {
		return x.DeliveredAt
	}
	return nil
}

func (x *DeliveryRecord) GetPriority() Priority {
	if x != nil {
		return x.Priority
	}
	return Priority_PRIORITY_UNSPECIFIED
}

// Pagination is the request-side page selector.
type Pagination struct {
	Page     int32 `json:"page,omitempty"`
	PageSize int32 `json:"page_size,omitempty"`
}

func (x *Pagination) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *Pagination) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

// PaginationResponse echoes the effective page selection back to the caller.
type PaginationResponse struct {
	CurrentPage int32 `json:"current_page,omitempty"`
	PageSize    int32 `json:"page_size,omitempty"`
	TotalPages  int32 `json:"total_pages,omitempty"`
}

func (x *PaginationResponse) GetCurrentPage() int32 {
	if x != nil {
		return x.CurrentPage
	}
	return 0
}

func (x *PaginationResponse) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *PaginationResponse) GetTotalPages() int32 {
	if x != nil {
		return x.TotalPages
	}
	return 0
}

type GetCourierRequest struct {
	CourierId       string `json:"courier_id,omitempty"`
	IncludeLocation bool   `json:"include_location,omitempty"`
}

func (x *GetCourierRequest) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

func (x *GetCourierRequest) GetIncludeLocation() bool {
	if x != nil {
		return x.IncludeLocation
	}
	return false
}

type GetCourierResponse struct {
	Courier *Courier `json:"courier,omitempty"`
}

func (x *GetCourierResponse) GetCourier() *Courier {
	if x != nil {
		return x.Courier
	}
	return nil
}

type GetCourierPoolRequest struct {
	StatusFilter        []CourierStatus `json:"status_filter,omitempty"`
	TransportTypeFilter []TransportType `json:"transport_type_filter,omitempty"`
	ZoneFilter          string          `json:"zone_filter,omitempty"`
	AvailableOnly       bool            `json:"available_only,omitempty"`
	IncludeLocation     bool            `json:"include_location,omitempty"`
	Pagination          *Pagination     `json:"pagination,omitempty"`
}

func (x *GetCourierPoolRequest) GetStatusFilter() []CourierStatus {
	if x != nil {
		return x.StatusFilter
	}
	return nil
}

func (x *GetCourierPoolRequest) GetTransportTypeFilter() []TransportType {
	if x != nil {
		return x.TransportTypeFilter
	}
	return nil
}

func (x *GetCourierPoolRequest) GetZoneFilter() string {
	if x != nil {
		return x.ZoneFilter
	}
	return ""
}

func (x *GetCourierPoolRequest) GetAvailableOnly() bool {
	if x != nil {
		return x.AvailableOnly
	}
	return false
}

func (x *GetCourierPoolRequest) GetIncludeLocation() bool {
	if x != nil {
		return x.IncludeLocation
	}
	return false
}

func (x *GetCourierPoolRequest) GetPagination() *Pagination {
	if x != nil {
		return x.Pagination
	}
	return nil
}

type GetCourierPoolResponse struct {
	Couriers   []*Courier          `json:"couriers,omitempty"`
	TotalCount int32               `json:"total_count,omitempty"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

func (x *GetCourierPoolResponse) GetCouriers() []*Courier {
	if x != nil {
		return x.Couriers
	}
	return nil
}

func (x *GetCourierPoolResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *GetCourierPoolResponse) GetPagination() *PaginationResponse {
	if x != nil {
		return x.Pagination
	}
	return nil
}

type GetCourierDeliveriesRequest struct {
	CourierId string `json:"courier_id,omitempty"`
	Limit     int32  `json:"limit,omitempty"`
}

func (x *GetCourierDeliveriesRequest) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

func (x *GetCourierDeliveriesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type GetCourierDeliveriesResponse struct {
	Deliveries []*DeliveryRecord `json:"deliveries,omitempty"`
	TotalCount int32             `json:"total_count,omitempty"`
}

func (x *GetCourierDeliveriesResponse) GetDeliveries() []*DeliveryRecord {
	if x != nil {
		return x.Deliveries
	}
	return nil
}

func (x *GetCourierDeliveriesResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type RegisterCourierRequest struct {
	Name          string        `json:"name,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	Email         string        `json:"email,omitempty"`
	TransportType TransportType `json:"transport_type,omitempty"`
	MaxDistanceKm float64       `json:"max_distance_km,omitempty"`
	WorkZone      string        `json:"work_zone,omitempty"`
	WorkHours     *WorkHours    `json:"work_hours,omitempty"`
	PushToken     *string       `json:"push_token,omitempty"` // proto3 optional
}

func (x *RegisterCourierRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RegisterCourierRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *RegisterCourierRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterCourierRequest) GetTransportType() TransportType {
	if x != nil {
		return x.TransportType
	}
	return TransportType_TRANSPORT_TYPE_UNSPECIFIED
}

func (x *RegisterCourierRequest) GetMaxDistanceKm() float64 {
	if x != nil {
		return x.MaxDistanceKm
	}
	return 0
}

func (x *RegisterCourierRequest) GetWorkZone() string {
	if x != nil {
		return x.WorkZone
	}
	return ""
}

func (x *RegisterCourierRequest) GetWorkHours() *WorkHours {
	if x != nil {
		return x.WorkHours
	}
	return nil
}

func (x *RegisterCourierRequest) GetPushToken() string {
	if x != nil && x.PushToken != nil {
		return *x.PushToken
	}
	return ""
}

type RegisterCourierResponse struct {
	CourierId string `json:"courier_id,omitempty"`
}

func (x *RegisterCourierResponse) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

type ActivateCourierRequest struct {
	CourierId string `json:"courier_id,omitempty"`
}

func (x *ActivateCourierRequest) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

type ActivateCourierResponse struct{}

type DeactivateCourierRequest struct {
	CourierId string  `json:"courier_id,omitempty"`
	Reason    *string `json:"reason,omitempty"` // proto3 optional
}

func (x *DeactivateCourierRequest) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

func (x *DeactivateCourierRequest) GetReason() string {
	if x != nil && x.Reason != nil {
		return *x.Reason
	}
	return ""
}

type DeactivateCourierResponse struct{}

type ArchiveCourierRequest struct {
	CourierId string  `json:"courier_id,omitempty"`
	Reason    *string `json:"reason,omitempty"` // proto3 optional
}

func (x *ArchiveCourierRequest) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

func (x *ArchiveCourierRequest) GetReason() string {
	if x != nil && x.Reason != nil {
		return *x.Reason
	}
	return ""
}

type ArchiveCourierResponse struct{}

// UpdateContactInfoRequest is a patch request: nil fields are not sent and
// must leave the stored value untouched on the server side.
type UpdateContactInfoRequest struct {
	CourierId string  `json:"courier_id,omitempty"`
	Phone     *string `json:"phone,omitempty"`      // proto3 optional
	Email     *string `json:"email,omitempty"`      // proto3 optional
	PushToken *string `json:"push_token,omitempty"` // proto3 optional
}

func (x *UpdateContactInfoRequest) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

func (x *UpdateContactInfoRequest) GetPhone() string {
	if x != nil && x.Phone != nil {
		return *x.Phone
	}
	return ""
}

func (x *UpdateContactInfoRequest) GetEmail() string {
	if x != nil && x.Email != nil {
		return *x.Email
	}
	return ""
}

func (x *UpdateContactInfoRequest) GetPushToken() string {
	if x != nil && x.PushToken != nil {
		return *x.PushToken
	}
	return ""
}

type UpdateContactInfoResponse struct{}

// UpdateWorkScheduleRequest is a patch request, same presence rules as
// UpdateContactInfoRequest.
type UpdateWorkScheduleRequest struct {
	CourierId     string     `json:"courier_id,omitempty"`
	WorkHours     *WorkHours `json:"work_hours,omitempty"`
	WorkZone      *string    `json:"work_zone,omitempty"`       // proto3 optional
	MaxDistanceKm *float64   `json:"max_distance_km,omitempty"` // proto3 optional
}

func (x *UpdateWorkScheduleRequest) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

func (x *UpdateWorkScheduleRequest) GetWorkHours() *WorkHours {
	if x != nil {
		return x.WorkHours
	}
	return nil
}

func (x *UpdateWorkScheduleRequest) GetWorkZone() string {
	if x != nil && x.WorkZone != nil {
		return *x.WorkZone
	}
	return ""
}

func (x *UpdateWorkScheduleRequest) GetMaxDistanceKm() float64 {
	if x != nil && x.MaxDistanceKm != nil {
		return *x.MaxDistanceKm
	}
	return 0
}

type UpdateWorkScheduleResponse struct{}

type ChangeTransportTypeRequest struct {
	CourierId     string        `json:"courier_id,omitempty"`
	TransportType TransportType `json:"transport_type,omitempty"`
}

func (x *ChangeTransportTypeRequest) GetCourierId() string {
	if x != nil {
		return x.CourierId
	}
	return ""
}

func (x *ChangeTransportTypeRequest) GetTransportType() TransportType {
	if x != nil {
		return x.TransportType
	}
	return TransportType_TRANSPORT_TYPE_UNSPECIFIED
}

// ChangeTransportTypeResponse carries the max load recalculated by the
// Delivery service for the new transport type.
type ChangeTransportTypeResponse struct {
	MaxLoad int32 `json:"max_load,omitempty"`
}

func (x *ChangeTransportTypeResponse) GetMaxLoad() int32 {
	if x != nil {
		return x.MaxLoad
	}
	return 0
}
