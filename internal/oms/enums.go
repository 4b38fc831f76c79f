package oms

import (
	omspb "github.com/parcelops/backoffice/internal/api/proto/oms"
)

// Domain enum tokens. Decoding is unknown-safe, same contract as the
// delivery package: novel wire values come back as EnumUnspecified.
const (
	EnumUnspecified = "UNSPECIFIED"

	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"

	PriorityNormal = "NORMAL"
	PriorityUrgent = "URGENT"
)

var orderStatusNames = map[omspb.OrderStatus]string{
	omspb.OrderStatus_ORDER_STATUS_UNSPECIFIED: EnumUnspecified,
	omspb.OrderStatus_ORDER_STATUS_PENDING:     StatusPending,
	omspb.OrderStatus_ORDER_STATUS_PROCESSING:  StatusProcessing,
	omspb.OrderStatus_ORDER_STATUS_COMPLETED:   StatusCompleted,
	omspb.OrderStatus_ORDER_STATUS_CANCELLED:   StatusCancelled,
}

var orderStatusValues = map[string]omspb.OrderStatus{
	EnumUnspecified:  omspb.OrderStatus_ORDER_STATUS_UNSPECIFIED,
	StatusPending:    omspb.OrderStatus_ORDER_STATUS_PENDING,
	StatusProcessing: omspb.OrderStatus_ORDER_STATUS_PROCESSING,
	StatusCompleted:  omspb.OrderStatus_ORDER_STATUS_COMPLETED,
	StatusCancelled:  omspb.OrderStatus_ORDER_STATUS_CANCELLED,
}

// statusDisplayNames render tokens for the admin UI.
var statusDisplayNames = map[string]string{
	EnumUnspecified:  "Unspecified",
	StatusPending:    "Pending",
	StatusProcessing: "Processing",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}

var priorityNames = map[omspb.DeliveryPriority]string{
	omspb.DeliveryPriority_DELIVERY_PRIORITY_UNSPECIFIED: EnumUnspecified,
	omspb.DeliveryPriority_DELIVERY_PRIORITY_NORMAL:      PriorityNormal,
	omspb.DeliveryPriority_DELIVERY_PRIORITY_URGENT:      PriorityUrgent,
}

// OrderStatusName decodes a wire order status.
func OrderStatusName(s omspb.OrderStatus) string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return EnumUnspecified
}

// OrderStatusValue encodes a domain status token.
func OrderStatusValue(name string) omspb.OrderStatus {
	return orderStatusValues[name]
}

// StatusDisplayName renders a status token for display. Unknown tokens come
// back as "Unknown" so stale filters still render.
func StatusDisplayName(token string) string {
	if name, ok := statusDisplayNames[token]; ok {
		return name
	}
	return "Unknown"
}

// PriorityName decodes a wire delivery priority.
func PriorityName(p omspb.DeliveryPriority) string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return EnumUnspecified
}

// encodeStatusFilter converts status tokens to wire values, silently
// dropping unknown tokens.
func encodeStatusFilter(names []string) []omspb.OrderStatus {
	var out []omspb.OrderStatus
	for _, name := range names {
		if v, ok := orderStatusValues[name]; ok {
			out = append(out, v)
		}
	}
	return out
}
