package delivery

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	deliverypb "github.com/parcelops/backoffice/internal/api/proto/delivery"
	"github.com/parcelops/backoffice/internal/common/clienterr"
	"github.com/parcelops/backoffice/internal/common/logger"
	"github.com/parcelops/backoffice/internal/common/paging"
	"github.com/parcelops/backoffice/internal/common/rpc"
)

const serviceName = "delivery"

// DefaultDeliveriesLimit caps GetCourierDeliveries when the caller does not
// choose a limit; the admin detail page shows the five most recent tasks.
const DefaultDeliveriesLimit = 5

// Config configures a Client. Constructing a Client performs no I/O.
type Config struct {
	// Target is the host:port of the Delivery gRPC endpoint.
	Target string
	// AuthToken, when set, is attached as a bearer credential to every
	// call. Tokens are request-scoped: a client carrying one must not be
	// shared across requests.
	AuthToken string
	// TLSEnabled switches from the insecure channel to TLS with the CA
	// bundle at CACertPath.
	TLSEnabled bool
	CACertPath string
	// CallTimeout is applied per call when the caller's context has no
	// deadline. Zero disables the fallback deadline.
	CallTimeout time.Duration
	// Logger receives access logs; nil disables them.
	Logger logger.Logger
}

// Client is the typed client for the Delivery service. The connection is
// established lazily on first use and reused until Close. All methods are
// safe for concurrent use.
type Client struct {
	cfg Config

	mu   sync.Mutex
	conn *grpc.ClientConn
	stub deliverypb.DeliveryServiceClient

	// connect installs conn/stub under mu. Replaced in tests.
	connect func(c *Client) error
}

// NewClient builds a Client. No connection is made until the first call.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, connect: dial}
}

func dial(c *Client) error {
	creds := insecure.NewCredentials()
	if c.cfg.TLSEnabled && c.cfg.CACertPath != "" {
		tlsCreds, err := loadTLSCredentials(c.cfg.CACertPath)
		if err != nil {
			return err
		}
		creds = tlsCreds
	}

	conn, err := grpc.Dial(c.cfg.Target,
		grpc.WithTransportCredentials(creds),
		grpc.WithChainUnaryInterceptor(
			rpc.UnaryRequestIDInterceptor(),
			rpc.UnaryTracingInterceptor(serviceName),
			rpc.UnaryAccessLogInterceptor(c.cfg.Logger),
			rpc.UnaryAuthTokenInterceptor(c.cfg.AuthToken),
		),
	)
	if err != nil {
		return err
	}

	c.conn = conn
	c.stub = deliverypb.NewDeliveryServiceClient(conn)
	return nil
}

func loadTLSCredentials(certPath string) (credentials.TransportCredentials, error) {
	certPool := x509.NewCertPool()
	ca, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}
	if !certPool.AppendCertsFromPEM(ca) {
		return nil, fmt.Errorf("failed to add CA certificate to pool")
	}
	return credentials.NewTLS(&tls.Config{
		RootCAs:    certPool,
		MinVersion: tls.VersionTLS12,
	}), nil
}

// ensureConnected returns the stub, establishing the connection on first
// use (or after Close). Concurrent first uses are serialized by mu, so at
// most one connection is kept.
func (c *Client) ensureConnected() (deliverypb.DeliveryServiceClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stub != nil {
		return c.stub, nil
	}
	if err := c.connect(c); err != nil {
		return nil, clienterr.Wrap(serviceName, "Connect", err)
	}
	return c.stub, nil
}

// Close releases the connection. Safe to call repeatedly; the next call on
// the client reconnects.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		c.stub = nil
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.stub = nil
	return err
}

// callContext applies the configured fallback deadline when the caller's
// context has none.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok && c.cfg.CallTimeout > 0 {
		return context.WithTimeout(ctx, c.cfg.CallTimeout)
	}
	return ctx, func() {}
}

// GetCourier fetches a single courier. The second return value reports
// whether the courier exists; "not found" is an expected outcome, not an
// error. Any transport failure is returned as *clienterr.ServiceError.
func (c *Client) GetCourier(ctx context.Context, courierID string, includeLocation bool) (*Courier, bool, error) {
	stub, err := c.ensureConnected()
	if err != nil {
		return nil, false, err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := stub.GetCourier(ctx, &deliverypb.GetCourierRequest{
		CourierId:       courierID,
		IncludeLocation: includeLocation,
	})
	if err != nil {
		if clienterr.IsNotFoundStatus(err) {
			return nil, false, nil
		}
		return nil, false, clienterr.Wrap(serviceName, "GetCourier", err)
	}

	courier := courierFromProto(resp.GetCourier())
	return &courier, true, nil
}

// PoolQuery selects a page of the courier pool. Filter tokens not present
// in the enum tables are dropped, not rejected. Zero Page/PageSize take the
// defaults (1 and paging.DefaultPageSize); the values are otherwise
// forwarded as given, since clamping belongs to the admin boundary.
type PoolQuery struct {
	StatusFilter        []string
	TransportTypeFilter []string
	ZoneFilter          string
	AvailableOnly       bool
	IncludeLocation     bool
	Page                int
	PageSize            int
}

// GetCourierPool lists couriers with filtering and pagination. When the
// response omits pagination metadata, the result echoes the requested page
// and size and reports a single page.
func (c *Client) GetCourierPool(ctx context.Context, q PoolQuery) (*CourierPoolResult, error) {
	stub, err := c.ensureConnected()
	if err != nil {
		return nil, err
	}

	page := q.Page
	if page == 0 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = paging.DefaultPageSize
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := stub.GetCourierPool(ctx, &deliverypb.GetCourierPoolRequest{
		StatusFilter:        encodeStatusFilter(q.StatusFilter),
		TransportTypeFilter: encodeTransportFilter(q.TransportTypeFilter),
		ZoneFilter:          q.ZoneFilter,
		AvailableOnly:       q.AvailableOnly,
		IncludeLocation:     q.IncludeLocation,
		Pagination: &deliverypb.Pagination{
			Page:     int32(page),
			PageSize: int32(pageSize),
		},
	})
	if err != nil {
		return nil, clienterr.Wrap(serviceName, "GetCourierPool", err)
	}

	couriers := make([]Courier, 0, len(resp.GetCouriers()))
	for _, pc := range resp.GetCouriers() {
		couriers = append(couriers, courierFromProto(pc))
	}

	result := &CourierPoolResult{
		Couriers:    couriers,
		TotalCount:  int(resp.GetTotalCount()),
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  1,
	}
	if p := resp.GetPagination(); p != nil {
		result.CurrentPage = int(p.GetCurrentPage())
		result.PageSize = int(p.GetPageSize())
		result.TotalPages = int(p.GetTotalPages())
	}
	return result, nil
}

// GetCourierDeliveries lists a courier's recent delivery tasks. An unknown
// courier yields an empty result, matching how the detail page treats a
// courier with no history.
func (c *Client) GetCourierDeliveries(ctx context.Context, courierID string, limit int) (*CourierDeliveriesResult, error) {
	stub, err := c.ensureConnected()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultDeliveriesLimit
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := stub.GetCourierDeliveries(ctx, &deliverypb.GetCourierDeliveriesRequest{
		CourierId: courierID,
		Limit:     int32(limit),
	})
	if err != nil {
		if clienterr.IsNotFoundStatus(err) {
			return &CourierDeliveriesResult{}, nil
		}
		return nil, clienterr.Wrap(serviceName, "GetCourierDeliveries", err)
	}

	deliveries := make([]DeliveryRecord, 0, len(resp.GetDeliveries()))
	for _, pd := range resp.GetDeliveries() {
		deliveries = append(deliveries, deliveryRecordFromProto(pd))
	}
	return &CourierDeliveriesResult{
		Deliveries: deliveries,
		TotalCount: int(resp.GetTotalCount()),
	}, nil
}

// RegisterCourierParams are the fields of a new courier registration.
type RegisterCourierParams struct {
	Name          string
	Phone         string
	Email         string
	TransportType string // domain token, e.g. TransportBicycle
	MaxDistanceKm float64
	WorkZone      string
	WorkHours     WorkHours
	PushToken     string // optional; empty means not sent
}

// RegisterCourier registers a new courier and returns the server-assigned
// courier ID.
func (c *Client) RegisterCourier(ctx context.Context, p RegisterCourierParams) (string, error) {
	stub, err := c.ensureConnected()
	if err != nil {
		return "", err
	}

	req := &deliverypb.RegisterCourierRequest{
		Name:          p.Name,
		Phone:         p.Phone,
		Email:         p.Email,
		TransportType: TransportTypeValue(p.TransportType),
		MaxDistanceKm: p.MaxDistanceKm,
		WorkZone:      p.WorkZone,
		WorkHours:     workHoursToProto(&p.WorkHours),
	}
	if p.PushToken != "" {
		req.PushToken = &p.PushToken
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := stub.RegisterCourier(ctx, req)
	if err != nil {
		return "", clienterr.Wrap(serviceName, "RegisterCourier", err)
	}
	return resp.GetCourierId(), nil
}

// ActivateCourier sets the courier's status to FREE.
func (c *Client) ActivateCourier(ctx context.Context, courierID string) error {
	stub, err := c.ensureConnected()
	if err != nil {
		return err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	_, err = stub.ActivateCourier(ctx, &deliverypb.ActivateCourierRequest{CourierId: courierID})
	return c.mutationErr("ActivateCourier", courierID, err)
}

// DeactivateCourier sets the courier's status to UNAVAILABLE. The reason is
// optional; an empty string is not sent.
func (c *Client) DeactivateCourier(ctx context.Context, courierID, reason string) error {
	stub, err := c.ensureConnected()
	if err != nil {
		return err
	}

	req := &deliverypb.DeactivateCourierRequest{CourierId: courierID}
	if reason != "" {
		req.Reason = &reason
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	_, err = stub.DeactivateCourier(ctx, req)
	return c.mutationErr("DeactivateCourier", courierID, err)
}

// ArchiveCourier soft-deletes the courier. The reason is optional.
func (c *Client) ArchiveCourier(ctx context.Context, courierID, reason string) error {
	stub, err := c.ensureConnected()
	if err != nil {
		return err
	}

	req := &deliverypb.ArchiveCourierRequest{CourierId: courierID}
	if reason != "" {
		req.Reason = &reason
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	_, err = stub.ArchiveCourier(ctx, req)
	return c.mutationErr("ArchiveCourier", courierID, err)
}

// ContactInfoUpdate is a partial update: nil fields stay untouched on the
// server. Updating only the phone must not clear the stored email.
type ContactInfoUpdate struct {
	Phone     *string
	Email     *string
	PushToken *string
}

// UpdateContactInfo patches the courier's contact details.
func (c *Client) UpdateContactInfo(ctx context.Context, courierID string, upd ContactInfoUpdate) error {
	stub, err := c.ensureConnected()
	if err != nil {
		return err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	_, err = stub.UpdateContactInfo(ctx, &deliverypb.UpdateContactInfoRequest{
		CourierId: courierID,
		Phone:     upd.Phone,
		Email:     upd.Email,
		PushToken: upd.PushToken,
	})
	return c.mutationErr("UpdateContactInfo", courierID, err)
}

// WorkScheduleUpdate is a partial update of the courier's schedule.
type WorkScheduleUpdate struct {
	WorkHours     *WorkHours
	WorkZone      *string
	MaxDistanceKm *float64
}

// UpdateWorkSchedule patches the courier's work hours, zone or range.
func (c *Client) UpdateWorkSchedule(ctx context.Context, courierID string, upd WorkScheduleUpdate) error {
	stub, err := c.ensureConnected()
	if err != nil {
		return err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	_, err = stub.UpdateWorkSchedule(ctx, &deliverypb.UpdateWorkScheduleRequest{
		CourierId:     courierID,
		WorkHours:     workHoursToProto(upd.WorkHours),
		WorkZone:      upd.WorkZone,
		MaxDistanceKm: upd.MaxDistanceKm,
	})
	return c.mutationErr("UpdateWorkSchedule", courierID, err)
}

// ChangeTransportType switches the courier's conveyance and returns the max
// load recalculated by the Delivery service. The client reports the value
// verbatim; the load table is owned by the remote side.
func (c *Client) ChangeTransportType(ctx context.Context, courierID, transportType string) (int, error) {
	stub, err := c.ensureConnected()
	if err != nil {
		return 0, err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := stub.ChangeTransportType(ctx, &deliverypb.ChangeTransportTypeRequest{
		CourierId:     courierID,
		TransportType: TransportTypeValue(transportType),
	})
	if err != nil {
		return 0, c.mutationErr("ChangeTransportType", courierID, err)
	}
	return int(resp.GetMaxLoad()), nil
}

// mutationErr classifies a mutation failure: a missing target becomes
// clienterr.ErrNotFound so the caller can render "already gone", anything
// else is a ServiceError.
func (c *Client) mutationErr(op, courierID string, err error) error {
	if err == nil {
		return nil
	}
	if clienterr.IsNotFoundStatus(err) {
		return fmt.Errorf("courier %s: %w", courierID, clienterr.ErrNotFound)
	}
	return clienterr.Wrap(serviceName, op, err)
}
