// Package omspb holds the wire types and client stub for the Order
// Management service gRPC API (proto/order/v1/order_rpc.proto).
//
// Hand-maintained mirror of the proto schema in protoc-gen-go conventions;
// see the deliverypb package doc for the ground rules. Monetary amounts
// travel as decimal strings, never as binary floats.
package omspb
