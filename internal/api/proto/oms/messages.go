package omspb

import (
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// OrderStatus is the order's lifecycle state on the OMS side.
type OrderStatus int32

const (
	OrderStatus_ORDER_STATUS_UNSPECIFIED OrderStatus = 0
	OrderStatus_ORDER_STATUS_PENDING     OrderStatus = 1
	OrderStatus_ORDER_STATUS_PROCESSING  OrderStatus = 2
	OrderStatus_ORDER_STATUS_COMPLETED   OrderStatus = 3
	OrderStatus_ORDER_STATUS_CANCELLED   OrderStatus = 4
)

var OrderStatus_name = map[int32]string{
	0: "ORDER_STATUS_UNSPECIFIED",
	1: "ORDER_STATUS_PENDING",
	2: "ORDER_STATUS_PROCESSING",
	3: "ORDER_STATUS_COMPLETED",
	4: "ORDER_STATUS_CANCELLED",
}

var OrderStatus_value = map[string]int32{
	"ORDER_STATUS_UNSPECIFIED": 0,
	"ORDER_STATUS_PENDING":     1,
	"ORDER_STATUS_PROCESSING":  2,
	"ORDER_STATUS_COMPLETED":   3,
	"ORDER_STATUS_CANCELLED":   4,
}

// DeliveryPriority mirrors the delivery-side priority enum.
type DeliveryPriority int32

const (
	DeliveryPriority_DELIVERY_PRIORITY_UNSPECIFIED DeliveryPriority = 0
	DeliveryPriority_DELIVERY_PRIORITY_NORMAL      DeliveryPriority = 1
	DeliveryPriority_DELIVERY_PRIORITY_URGENT      DeliveryPriority = 2
)

var DeliveryPriority_name = map[int32]string{
	0: "DELIVERY_PRIORITY_UNSPECIFIED",
	1: "DELIVERY_PRIORITY_NORMAL",
	2: "DELIVERY_PRIORITY_URGENT",
}

var DeliveryPriority_value = map[string]int32{
	"DELIVERY_PRIORITY_UNSPECIFIED": 0,
	"DELIVERY_PRIORITY_NORMAL":      1,
	"DELIVERY_PRIORITY_URGENT":      2,
}

// OrderItem is one line of an order. Price is a decimal string
// (e.g. "19.99") to keep currency amounts exact on the wire.
type OrderItem struct {
	Id       string `json:"id,omitempty"` // good ID
	Quantity int32  `json:"quantity,omitempty"`
	Price    string `json:"price,omitempty"`
}

func (x *OrderItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *OrderItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *OrderItem) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

// DeliveryAddress is a postal address with geo coordinates.
type DeliveryAddress struct {
	Street     string  `json:"street,omitempty"`
	City       string  `json:"city,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Country    string  `json:"country,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

func (x *DeliveryAddress) GetStreet() string {
	if x != nil {
		return x.Street
	}
	return ""
}

func (x *DeliveryAddress) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *DeliveryAddress) GetPostalCode() string {
	if x != nil {
		return x.PostalCode
	}
	return ""
}

func (x *DeliveryAddress) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *DeliveryAddress) GetLatitude() float64 {
	if x != nil {
		return x.Latitude
	}
	return 0
}

func (x *DeliveryAddress) GetLongitude() float64 {
	if x != nil {
		return x.Longitude
	}
	return 0
}

// DeliveryPeriod is the requested delivery time window.
type DeliveryPeriod struct {
	StartTime *timestamppb.Timestamp `json:"start_time,omitempty"`
	EndTime   *timestamppb.Timestamp `json:"end_time,omitempty"`
}

func (x *DeliveryPeriod) GetStartTime() *timestamppb.Timestamp {
	if x != nil {
		return x.StartTime
	}
	return nil
}

func (x *DeliveryPeriod) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

// DeliveryInfo groups the delivery-related parts of an order.
type DeliveryInfo struct {
	PickupAddress   *DeliveryAddress `json:"pickup_address,omitempty"`
	DeliveryAddress *DeliveryAddress `json:"delivery_address,omitempty"`
	DeliveryPeriod  *DeliveryPeriod  `json:"delivery_period,omitempty"`
	Priority        DeliveryPriority `json:"priority,omitempty"`
}

func (x *DeliveryInfo) GetPickupAddress() *DeliveryAddress {
	if x != nil {
		return x.PickupAddress
	}
	return nil
}

func (x *DeliveryInfo) GetDeliveryAddress() *DeliveryAddress {
	if x != nil {
		return x.DeliveryAddress
	}
	return nil
}

func (x *DeliveryInfo) GetDeliveryPeriod() *DeliveryPeriod {
	if x != nil {
		return x.DeliveryPeriod
	}
	return nil
}

func (x *DeliveryInfo) GetPriority() DeliveryPriority {
	if x != nil {
		return x.Priority
	}
	return DeliveryPriority_DELIVERY_PRIORITY_UNSPECIFIED
}

// Order is the full order record as stored by OMS.
type Order struct {
	Id           string                 `json:"id,omitempty"`
	CustomerId   string                 `json:"customer_id,omitempty"`
	Items        []*OrderItem           `json:"items,omitempty"`
	Status       OrderStatus            `json:"status,omitempty"`
	CreatedAt    *timestamppb.Timestamp `json:"created_at,omitempty"`
	UpdatedAt    *timestamppb.Timestamp `json:"updated_at,omitempty"`
	DeliveryInfo *DeliveryInfo          `json:"delivery_info,omitempty"`
}

func (x *Order) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Order) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *Order) GetItems() []*OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Order) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *Order) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Order) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Order) GetDeliveryInfo() *DeliveryInfo {
	if x != nil {
		return x.DeliveryInfo
	}
	return nil
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

type GetRequest struct {
	Id string `json:"id,omitempty"`
}

func (x *GetRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetResponse struct {
	Order *Order `json:"order,omitempty"`
}

func (x *GetResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type ListRequest struct {
	CustomerId   string        `json:"customer_id,omitempty"`
	StatusFilter []OrderStatus `json:"status_filter,omitempty"`
	Pagination   *Pagination   `json:"pagination,omitempty"`
}

func (x *ListRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *ListRequest) GetStatusFilter() []OrderStatus {
	if x != nil {
		return x.StatusFilter
	}
	return nil
}

func (x *ListRequest) GetPagination() *Pagination {
	if x != nil {
		return x.Pagination
	}
	return nil
}

type ListResponse struct {
	Orders     []*Order            `json:"orders,omitempty"`
	TotalCount int32               `json:"total_count,omitempty"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

func (x *ListResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

func (x *ListResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *ListResponse) GetPagination() *PaginationResponse {
	if x != nil {
		return x.Pagination
	}
	return nil
}

type CancelRequest struct {
	Id string `json:"id,omitempty"`
}

func (x *CancelRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type CancelResponse struct{}
