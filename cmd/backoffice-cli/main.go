// backoffice-cli is an operator tool over the Delivery and OMS clients.
// It is also the reference composition root: config, logger, tracer,
// registry, clients, in the same order the admin application wires them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/parcelops/backoffice/internal/common/clienterr"
	"github.com/parcelops/backoffice/internal/common/config"
	"github.com/parcelops/backoffice/internal/common/logger"
	"github.com/parcelops/backoffice/internal/common/paging"
	"github.com/parcelops/backoffice/internal/common/tracing"
	"github.com/parcelops/backoffice/internal/delivery"
	"github.com/parcelops/backoffice/internal/oms"
	"github.com/parcelops/backoffice/internal/registry"
)

var (
	configPath = pflag.String("config", "", "path to JSON config file")
	consulKey  = pflag.String("consul-key", "", "load config from this Consul KV key instead of a file")
	authToken  = pflag.String("token", "", "bearer token forwarded to the delivery service")
	page       = pflag.Int("page", 1, "page number (1-indexed)")
	pageSize   = pflag.Int("page-size", paging.DefaultPageSize, "items per page")

	statusFilter    = pflag.StringSlice("status", nil, "status filter tokens (e.g. FREE,BUSY)")
	transportFilter = pflag.StringSlice("transport", nil, "transport type filter tokens")
	zoneFilter      = pflag.String("zone", "", "work zone filter")
	includeLocation = pflag.Bool("include-location", false, "include courier locations")
	customerID      = pflag.String("customer", "", "customer ID filter")
	limit           = pflag.Int("limit", delivery.DefaultDeliveriesLimit, "max deliveries to list")
	reason          = pflag.String("reason", "", "reason for deactivate/archive")

	name          = pflag.String("name", "", "courier name")
	phone         = pflag.String("phone", "", "courier phone")
	email         = pflag.String("email", "", "courier email")
	transportType = pflag.String("transport-type", delivery.TransportBicycle, "courier transport type")
	maxDistance   = pflag.Float64("max-distance", 10, "max delivery distance, km")
	workZone      = pflag.String("work-zone", "", "courier work zone")
	workStart     = pflag.String("work-start", "09:00", "work start, HH:MM")
	workEnd       = pflag.String("work-end", "18:00", "work end, HH:MM")
	workDays      = pflag.IntSlice("work-days", []int{1, 2, 3, 4, 5}, "work days, 1=Mon..7=Sun")
)

func main() {
	pflag.Usage = usage
	pflag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	_, closer, err := tracing.InitTracer("backoffice-cli", cfg.Jaeger.Endpoint, cfg.Jaeger.Sampler)
	if err != nil {
		log.Warnf("tracer disabled: %v", err)
	} else {
		defer closer.Close()
	}

	reg := registry.New(cfg, log)
	defer reg.Close()

	if err := run(reg, pflag.Args()); err != nil {
		switch {
		case errors.Is(err, clienterr.ErrNotFound):
			fmt.Fprintf(os.Stderr, "not found: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// loadConfig resolves the config source: Consul KV when a key is given,
// otherwise defaults plus the optional file. Environment overrides apply in
// both cases.
func loadConfig() (*config.Config, error) {
	if *consulKey != "" {
		base := config.Default()
		return config.LoadFromConsulKV(base.Consul.Host, base.Consul.Port, *consulKey)
	}
	return config.Load(*configPath)
}

func newLogger(cfg config.LogConfig) (logger.Logger, error) {
	if cfg.Backend == "zap" {
		return logger.NewZap(cfg.Level, cfg.Format)
	}
	return logger.New(cfg.Level, cfg.Format)
}

func run(reg *registry.Registry, args []string) error {
	if len(args) < 2 {
		usage()
		return fmt.Errorf("missing command")
	}

	ctx := context.Background()
	entity, action := args[0], args[1]
	rest := args[2:]

	switch entity {
	case "courier":
		return runCourier(ctx, reg, action, rest)
	case "order":
		return runOrder(ctx, reg, action, rest)
	default:
		usage()
		return fmt.Errorf("unknown entity %q", entity)
	}
}

func runCourier(ctx context.Context, reg *registry.Registry, action string, args []string) error {
	client := reg.DeliveryWithToken(*authToken)
	if *authToken != "" {
		// request-scoped client, not shared with the registry
		defer client.Close()
	}

	switch action {
	case "get":
		id, err := argAt(args, 0, "courier ID")
		if err != nil {
			return err
		}
		courier, found, err := client.GetCourier(ctx, id, *includeLocation)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("courier %s not found\n", id)
			return nil
		}
		printCourier(*courier)
		return nil

	case "pool":
		p, size := paging.Clamp(*page, *pageSize)
		pool, err := client.GetCourierPool(ctx, delivery.PoolQuery{
			StatusFilter:        *statusFilter,
			TransportTypeFilter: *transportFilter,
			ZoneFilter:          *zoneFilter,
			IncludeLocation:     *includeLocation,
			Page:                p,
			PageSize:            size,
		})
		if err != nil {
			return err
		}
		fmt.Printf("page %d/%d, %d couriers total\n", pool.CurrentPage, pool.TotalPages, pool.TotalCount)
		for _, courier := range pool.Couriers {
			fmt.Printf("  %s  %-20s %-10s %s (%d/%d)\n",
				courier.CourierID, courier.Name, courier.Status,
				courier.TransportType, courier.CurrentLoad, courier.MaxLoad)
		}
		return nil

	case "deliveries":
		id, err := argAt(args, 0, "courier ID")
		if err != nil {
			return err
		}
		result, err := client.GetCourierDeliveries(ctx, id, *limit)
		if err != nil {
			return err
		}
		fmt.Printf("%d deliveries total\n", result.TotalCount)
		for _, rec := range result.Deliveries {
			fmt.Printf("  %s  order=%s %s priority=%s\n", rec.PackageID, rec.OrderID, rec.Status, rec.Priority)
		}
		return nil

	case "register":
		courierID, err := client.RegisterCourier(ctx, delivery.RegisterCourierParams{
			Name:          *name,
			Phone:         *phone,
			Email:         *email,
			TransportType: *transportType,
			MaxDistanceKm: *maxDistance,
			WorkZone:      *workZone,
			WorkHours: delivery.WorkHours{
				StartTime: *workStart,
				EndTime:   *workEnd,
				WorkDays:  *workDays,
			},
		})
		if err != nil {
			return err
		}
		fmt.Printf("registered courier %s\n", courierID)
		return nil

	case "activate":
		id, err := argAt(args, 0, "courier ID")
		if err != nil {
			return err
		}
		if err := client.ActivateCourier(ctx, id); err != nil {
			return err
		}
		fmt.Printf("courier %s activated\n", id)
		return nil

	case "deactivate":
		id, err := argAt(args, 0, "courier ID")
		if err != nil {
			return err
		}
		if err := client.DeactivateCourier(ctx, id, *reason); err != nil {
			return err
		}
		fmt.Printf("courier %s deactivated\n", id)
		return nil

	case "archive":
		id, err := argAt(args, 0, "courier ID")
		if err != nil {
			return err
		}
		if err := client.ArchiveCourier(ctx, id, *reason); err != nil {
			return err
		}
		fmt.Printf("courier %s archived\n", id)
		return nil

	case "set-transport":
		id, err := argAt(args, 0, "courier ID")
		if err != nil {
			return err
		}
		maxLoad, err := client.ChangeTransportType(ctx, id, *transportType)
		if err != nil {
			return err
		}
		fmt.Printf("courier %s now %s, max load %d\n", id, *transportType, maxLoad)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown courier action %q", action)
	}
}

func runOrder(ctx context.Context, reg *registry.Registry, action string, args []string) error {
	client := reg.OMS()

	switch action {
	case "get":
		id, err := argAt(args, 0, "order ID")
		if err != nil {
			return err
		}
		order, found, err := client.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("order %s not found\n", id)
			return nil
		}
		printOrder(*order)
		return nil

	case "list":
		p, size := paging.Clamp(*page, *pageSize)
		result, err := client.ListOrders(ctx, oms.ListQuery{
			CustomerID:   *customerID,
			StatusFilter: *statusFilter,
			Page:         p,
			PageSize:     size,
		})
		if err != nil {
			return err
		}
		fmt.Printf("page %d/%d, %d orders total\n", result.CurrentPage, result.TotalPages, result.TotalCount)
		for _, order := range result.Orders {
			fmt.Printf("  %s  customer=%s %s %s (%d items)\n",
				order.OrderID, order.CustomerID, order.StatusName(),
				order.TotalAmount().StringFixed(2), order.ItemCount())
		}
		return nil

	case "cancel":
		id, err := argAt(args, 0, "order ID")
		if err != nil {
			return err
		}
		if err := client.CancelOrder(ctx, id); err != nil {
			return err
		}
		fmt.Printf("order %s cancelled\n", id)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown order action %q", action)
	}
}

func printCourier(c delivery.Courier) {
	fmt.Printf("courier %s\n", c.CourierID)
	fmt.Printf("  name:      %s\n", c.Name)
	fmt.Printf("  contact:   %s / %s\n", c.Phone, c.Email)
	fmt.Printf("  status:    %s\n", c.Status)
	fmt.Printf("  transport: %s (max %s km, load %d/%d)\n",
		c.TransportType, strconv.FormatFloat(c.MaxDistanceKm, 'f', -1, 64), c.CurrentLoad, c.MaxLoad)
	fmt.Printf("  rating:    %.2f (%d ok / %d failed)\n", c.Rating, c.SuccessfulDeliveries, c.FailedDeliveries)
	if c.WorkHours != nil {
		days := make([]string, 0, len(c.WorkHours.WorkDays))
		for _, d := range c.WorkHours.WorkDays {
			days = append(days, strconv.Itoa(d))
		}
		fmt.Printf("  schedule:  %s-%s on [%s] in %q\n",
			c.WorkHours.StartTime, c.WorkHours.EndTime, strings.Join(days, ","), c.WorkZone)
	}
	if c.CurrentLocation != nil {
		fmt.Printf("  location:  %.6f,%.6f\n", c.CurrentLocation.Latitude, c.CurrentLocation.Longitude)
	}
}

func printOrder(o oms.Order) {
	fmt.Printf("order %s\n", o.OrderID)
	fmt.Printf("  customer: %s\n", o.CustomerID)
	fmt.Printf("  status:   %s\n", o.StatusName())
	fmt.Printf("  total:    %s (%d items)\n", o.TotalAmount().StringFixed(2), o.ItemCount())
	for _, item := range o.Items {
		fmt.Printf("    %s x%d @ %s\n", item.GoodID, item.Quantity, item.Price.StringFixed(2))
	}
	if di := o.DeliveryInfo; di != nil {
		fmt.Printf("  priority: %s\n", di.Priority)
		if di.DeliveryAddress != nil {
			fmt.Printf("  deliver:  %s, %s %s, %s\n",
				di.DeliveryAddress.Street, di.DeliveryAddress.PostalCode,
				di.DeliveryAddress.City, di.DeliveryAddress.Country)
		}
	}
}

func argAt(args []string, i int, what string) (string, error) {
	if i >= len(args) || strings.TrimSpace(args[i]) == "" {
		return "", fmt.Errorf("missing %s", what)
	}
	return strings.TrimSpace(args[i]), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: backoffice-cli [flags] <entity> <action> [args]

  courier get <id>          fetch one courier
  courier pool              list the courier pool
  courier deliveries <id>   recent deliveries of a courier
  courier register          register a courier (see --name, --phone, ...)
  courier activate <id>     set status to FREE
  courier deactivate <id>   set status to UNAVAILABLE
  courier archive <id>      soft-delete a courier
  courier set-transport <id> change transport type (--transport-type)
  order get <id>            fetch one order
  order list                list orders
  order cancel <id>         cancel an order

flags:
`)
	pflag.PrintDefaults()
}
