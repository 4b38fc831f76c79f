package deliverypb

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names of the DeliveryService API.
const (
	DeliveryService_GetCourier_FullMethodName           = "/delivery.v1.DeliveryService/GetCourier"
	DeliveryService_GetCourierPool_FullMethodName       = "/delivery.v1.DeliveryService/GetCourierPool"
	DeliveryService_GetCourierDeliveries_FullMethodName = "/delivery.v1.DeliveryService/GetCourierDeliveries"
	DeliveryService_RegisterCourier_FullMethodName      = "/delivery.v1.DeliveryService/RegisterCourier"
	DeliveryService_ActivateCourier_FullMethodName      = "/delivery.v1.DeliveryService/ActivateCourier"
	DeliveryService_DeactivateCourier_FullMethodName    = "/delivery.v1.DeliveryService/DeactivateCourier"
	DeliveryService_ArchiveCourier_FullMethodName       = "/delivery.v1.DeliveryService/ArchiveCourier"
	DeliveryService_UpdateContactInfo_FullMethodName    = "/delivery.v1.DeliveryService/UpdateContactInfo"
	DeliveryService_UpdateWorkSchedule_FullMethodName   = "/delivery.v1.DeliveryService/UpdateWorkSchedule"
	DeliveryService_ChangeTransportType_FullMethodName  = "/delivery.v1.DeliveryService/ChangeTransportType"
)

// DeliveryServiceClient is the client API for the DeliveryService.
type DeliveryServiceClient interface {
	GetCourier(ctx context.Context, in *GetCourierRequest, opts ...grpc.CallOption) (*GetCourierResponse, error)
	GetCourierPool(ctx context.Context, in *GetCourierPoolRequest, opts ...grpc.CallOption) (*GetCourierPoolResponse, error)
	GetCourierDeliveries(ctx context.Context, in *GetCourierDeliveriesRequest, opts ...grpc.CallOption) (*GetCourierDeliveriesResponse, error)
	RegisterCourier(ctx context.Context, in *RegisterCourierRequest, opts ...grpc.CallOption) (*RegisterCourierResponse, error)
	ActivateCourier(ctx context.Context, in *ActivateCourierRequest, opts ...grpc.CallOption) (*ActivateCourierResponse, error)
	DeactivateCourier(ctx context.Context, in *DeactivateCourierRequest, opts ...grpc.CallOption) (*DeactivateCourierResponse, error)
	ArchiveCourier(ctx context.Context, in *ArchiveCourierRequest, opts ...grpc.CallOption) (*ArchiveCourierResponse, error)
	UpdateContactInfo(ctx context.Context, in *UpdateContactInfoRequest, opts ...grpc.CallOption) (*UpdateContactInfoResponse, error)
	UpdateWorkSchedule(ctx context.Context, in *UpdateWorkScheduleRequest, opts ...grpc.CallOption) (*UpdateWorkScheduleResponse, error)
	ChangeTransportType(ctx context.Context, in *ChangeTransportTypeRequest, opts ...grpc.CallOption) (*ChangeTransportTypeResponse, error)
}

type deliveryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDeliveryServiceClient returns a DeliveryServiceClient bound to cc.
func NewDeliveryServiceClient(cc grpc.ClientConnInterface) DeliveryServiceClient {
	return &deliveryServiceClient{cc}
}

func (c *deliveryServiceClient) GetCourier(ctx context.Context, in *GetCourierRequest, opts ...grpc.CallOption) (*GetCourierResponse, error) {
	out := new(GetCourierResponse)
	err := c.cc.Invoke(ctx, DeliveryService_GetCourier_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deliveryServiceClient) GetCourierPool(ctx context.Context, in *GetCourierPoolRequest, opts ...grpc.CallOption) (*GetCourierPoolResponse, error) {
	out := new(GetCourierPoolResponse)
	err := c.cc.Invoke(ctx, DeliveryService_GetCourierPool_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deliveryServiceClient) GetCourierDeliveries(ctx context.Context, in *GetCourierDeliveriesRequest, opts ...grpc.CallOption) (*GetCourierDeliveriesResponse, error) {
	out := new(GetCourierDeliveriesResponse)
	err := c.cc.Invoke(ctx, DeliveryService_GetCourierDeliveries_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deliveryServiceClient) RegisterCourier(ctx context.Context, in *RegisterCourierRequest, opts ...grpc.CallOption) (*RegisterCourierResponse, error) {
	out := new(RegisterCourierResponse)
	err := c.cc.Invoke(ctx, DeliveryService_RegisterCourier_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deliveryServiceClient) ActivateCourier(ctx context.Context, in *ActivateCourierRequest, opts ...grpc.CallOption) (*ActivateCourierResponse, error) {
	out := new(ActivateCourierResponse)
	err := c.cc.Invoke(ctx, DeliveryService_ActivateCourier_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deliveryServiceClient) DeactivateCourier(ctx context.Context, in *DeactivateCourierRequest, opts ...grpc.CallOption) (*DeactivateCourierResponse, error) {
	out := new(DeactivateCourierResponse)
	err := c.cc.Invoke(ctx, DeliveryService_DeactivateCourier_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deliveryServiceClient) ArchiveCourier(ctx context.Context, in *ArchiveCourierRequest, opts ...grpc.CallOption) (*ArchiveCourierResponse, error) {
	out := new(ArchiveCourierResponse)
	err := c.cc.Invoke(ctx, DeliveryService_ArchiveCourier_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deliveryServiceClient) UpdateContactInfo(ctx context.Context, in *UpdateContactInfoRequest, opts ...grpc.CallOption) (*UpdateContactInfoResponse, error) {
	out := new(UpdateContactInfoResponse)
	err := c.cc.Invoke(ctx, DeliveryService_UpdateContactInfo_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deliveryServiceClient) UpdateWorkSchedule(ctx context.Context, in *UpdateWorkScheduleRequest, opts ...grpc.CallOption) (*UpdateWorkScheduleResponse, error) {
	out := new(UpdateWorkScheduleResponse)
	err := c.cc.Invoke(ctx, DeliveryService_UpdateWorkSchedule_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deliveryServiceClient) ChangeTransportType(ctx context.Context, in *ChangeTransportTypeRequest, opts ...grpc.CallOption) (*ChangeTransportTypeResponse, error) {
	out := new(ChangeTransportTypeResponse)
	err := c.cc.Invoke(ctx, DeliveryService_ChangeTransportType_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
