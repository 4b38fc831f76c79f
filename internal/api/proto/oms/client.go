package omspb

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names of the OrderService API.
const (
	OrderService_Get_FullMethodName    = "/infrastructure.rpc.order.v1.OrderService/Get"
	OrderService_List_FullMethodName   = "/infrastructure.rpc.order.v1.OrderService/List"
	OrderService_Cancel_FullMethodName = "/infrastructure.rpc.order.v1.OrderService/Cancel"
)

// OrderServiceClient is the client API for the OrderService.
type OrderServiceClient interface {
	Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetResponse, error)
	List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error)
	Cancel(ctx context.Context, in *CancelRequest, opts ...grpc.CallOption) (*CancelResponse, error)
}

type orderServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewOrderServiceClient returns an OrderServiceClient bound to cc.
func NewOrderServiceClient(cc grpc.ClientConnInterface) OrderServiceClient {
	return &orderServiceClient{cc}
}

func (c *orderServiceClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetResponse, error) {
	out := new(GetResponse)
	err := c.cc.Invoke(ctx, OrderService_Get_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	err := c.cc.Invoke(ctx, OrderService_List_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderServiceClient) Cancel(ctx context.Context, in *CancelRequest, opts ...grpc.CallOption) (*CancelResponse, error) {
	out := new(CancelResponse)
	err := c.cc.Invoke(ctx, OrderService_Cancel_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
