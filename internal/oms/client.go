package oms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	omspb "github.com/parcelops/backoffice/internal/api/proto/oms"
	"github.com/parcelops/backoffice/internal/common/clienterr"
	"github.com/parcelops/backoffice/internal/common/logger"
	"github.com/parcelops/backoffice/internal/common/paging"
	"github.com/parcelops/backoffice/internal/common/rpc"
)

const serviceName = "oms"

// Config configures a Client. Constructing a Client performs no I/O.
type Config struct {
	// Target is the host:port of the OMS gRPC endpoint.
	Target string
	// CallTimeout is applied per call when the caller's context has no
	// deadline. Zero disables the fallback deadline.
	CallTimeout time.Duration
	// Logger receives access logs; nil disables them.
	Logger logger.Logger
}

// Client is the typed client for the OMS service. The connection is
// established lazily on first use and reused until Close. All methods are
// safe for concurrent use.
type Client struct {
	cfg Config

	mu   sync.Mutex
	conn *grpc.ClientConn
	stub omspb.OrderServiceClient

	// connect installs conn/stub under mu. Replaced in tests.
	connect func(c *Client) error
}

// NewClient builds a Client. No connection is made until the first call.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, connect: dial}
}

func dial(c *Client) error {
	conn, err := grpc.Dial(c.cfg.Target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(
			rpc.UnaryRequestIDInterceptor(),
			rpc.UnaryTracingInterceptor(serviceName),
			rpc.UnaryAccessLogInterceptor(c.cfg.Logger),
		),
	)
	if err != nil {
		return err
	}

	c.conn = conn
	c.stub = omspb.NewOrderServiceClient(conn)
	return nil
}

func (c *Client) ensureConnected() (omspb.OrderServiceClient, error) {
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

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok && c.cfg.CallTimeout > 0 {
		return context.WithTimeout(ctx, c.cfg.CallTimeout)
	}
	return ctx, func() {}
}

// GetOrder fetches a single order. The second return value reports whether
// the order exists; "not found" is an expected outcome, not an error.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, bool, error) {
	stub, err := c.ensureConnected()
	if err != nil {
		return nil, false, err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := stub.Get(ctx, &omspb.GetRequest{Id: orderID})
	if err != nil {
		if clienterr.IsNotFoundStatus(err) {
			return nil, false, nil
		}
		return nil, false, clienterr.Wrap(serviceName, "GetOrder", err)
	}

	order := orderFromProto(resp.GetOrder())
	return &order, true, nil
}

// ListQuery selects a page of the order listing. Status tokens not present
// in the enum table are dropped. Zero Page/PageSize take the defaults; the
// values are otherwise forwarded as given.
type ListQuery struct {
	CustomerID   string
	StatusFilter []string
	Page         int
	PageSize     int
}

// ListOrders lists orders with filtering and pagination. When the response
// omits pagination metadata, the result echoes the requested page and size
// and reports a single page.
func (c *Client) ListOrders(ctx context.Context, q ListQuery) (*OrderListResult, error) {
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

	resp, err := stub.List(ctx, &omspb.ListRequest{
		CustomerId:   q.CustomerID,
		StatusFilter: encodeStatusFilter(q.StatusFilter),
		Pagination: &omspb.Pagination{
			Page:     int32(page),
			PageSize: int32(pageSize),
		},
	})
	if err != nil {
		return nil, clienterr.Wrap(serviceName, "ListOrders", err)
	}

	orders := make([]Order, 0, len(resp.GetOrders()))
	for _, po := range resp.GetOrders() {
		orders = append(orders, orderFromProto(po))
	}

	result := &OrderListResult{
		Orders:      orders,
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

// CancelOrder cancels an order. A missing order comes back as
// clienterr.ErrNotFound so the caller can tell "already gone" from a
// genuine failure.
func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	stub, err := c.ensureConnected()
	if err != nil {
		return err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	_, err = stub.Cancel(ctx, &omspb.CancelRequest{Id: orderID})
	if err != nil {
		if clienterr.IsNotFoundStatus(err) {
			return fmt.Errorf("order %s: %w", orderID, clienterr.ErrNotFound)
		}
		return clienterr.Wrap(serviceName, "CancelOrder", err)
	}
	return nil
}
