// Package registry owns the shared client instances of the process.
//
// The registry replaces the ambient module-level singletons of the previous
// generation: it is created once by the composition root and handed to the
// callers that need clients, so tests can substitute their own instance
// without monkeypatching.
package registry

import (
	"errors"
	"sync"

	"github.com/parcelops/backoffice/internal/common/config"
	"github.com/parcelops/backoffice/internal/common/logger"
	"github.com/parcelops/backoffice/internal/delivery"
	"github.com/parcelops/backoffice/internal/oms"
)

// Registry lazily creates and holds one shared client per service. Shared
// clients are created on first access and reused until Close; access after
// Close re-establishes them. All methods are safe for concurrent use.
type Registry struct {
	cfg *config.Config
	log logger.Logger

	mu       sync.Mutex
	delivery *delivery.Client
	oms      *oms.Client
}

// New builds a Registry. No clients are created until first access.
func New(cfg *config.Config, log logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop{}
	}
	return &Registry{cfg: cfg, log: log}
}

// Delivery returns the shared Delivery client.
func (r *Registry) Delivery() *delivery.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.delivery == nil {
		r.delivery = delivery.NewClient(r.deliveryConfig(""))
	}
	return r.delivery
}

// DeliveryWithToken returns a fresh, non-shared Delivery client carrying
// the given bearer credential. Credentials are request-scoped, so the
// client is never cached; the caller owns its lifecycle and should Close it
// when the request is done. An empty token falls back to the shared client.
func (r *Registry) DeliveryWithToken(authToken string) *delivery.Client {
	if authToken == "" {
		return r.Delivery()
	}
	return delivery.NewClient(r.deliveryConfig(authToken))
}

// OMS returns the shared OMS client.
func (r *Registry) OMS() *oms.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.oms == nil {
		r.oms = oms.NewClient(oms.Config{
			Target:      r.cfg.OMS.Target(),
			CallTimeout: config.CallTimeout(r.cfg.OMS.CallTimeoutSeconds),
			Logger:      r.log,
		})
	}
	return r.oms
}

func (r *Registry) deliveryConfig(authToken string) delivery.Config {
	return delivery.Config{
		Target:      r.cfg.Delivery.Target,
		AuthToken:   authToken,
		TLSEnabled:  r.cfg.Delivery.TLSEnabled,
		CACertPath:  r.cfg.Delivery.CACertPath,
		CallTimeout: config.CallTimeout(r.cfg.Delivery.CallTimeoutSeconds),
		Logger:      r.log,
	}
}

// Close releases the shared clients and clears the holders, so the next
// access re-establishes them. Safe to call repeatedly.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.delivery != nil {
		errs = append(errs, r.delivery.Close())
		r.delivery = nil
	}
	if r.oms != nil {
		errs = append(errs, r.oms.Close())
		r.oms = nil
	}
	return errors.Join(errs...)
}
