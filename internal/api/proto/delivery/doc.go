// Package deliverypb holds the wire types and client stub for the Delivery
// service gRPC API (proto/delivery/v1/delivery.proto).
//
// The types are a hand-maintained mirror of the proto schema, kept to the
// conventions of protoc-gen-go output: enums are named int32 types with
// name/value tables, proto3-optional fields are pointers, and every accessor
// tolerates a nil receiver. Only the client side is mirrored here; this
// module never serves the Delivery API.
package deliverypb
