package registry

import (
	"sync"
	"testing"

	"github.com/parcelops/backoffice/internal/common/config"
)

func newTestRegistry() *Registry {
	return New(config.Default(), nil)
}

func TestDeliveryIsShared(t *testing.T) {
	reg := newTestRegistry()
	defer reg.Close()

	if reg.Delivery() != reg.Delivery() {
		t.Error("Delivery() returned different instances")
	}
}

func TestOMSIsShared(t *testing.T) {
	reg := newTestRegistry()
	defer reg.Close()

	if reg.OMS() != reg.OMS() {
		t.Error("OMS() returned different instances")
	}
}

func TestDeliveryWithTokenIsFresh(t *testing.T) {
	reg := newTestRegistry()
	defer reg.Close()

	shared := reg.Delivery()

	a := reg.DeliveryWithToken("token-a")
	b := reg.DeliveryWithToken("token-a")
	if a == shared || b == shared {
		t.Error("token-carrying client must not be the shared instance")
	}
	if a == b {
		t.Error("token-carrying clients must not be cached")
	}
}

func TestDeliveryWithEmptyTokenFallsBackToShared(t *testing.T) {
	reg := newTestRegistry()
	defer reg.Close()

	if reg.DeliveryWithToken("") != reg.Delivery() {
		t.Error("empty token must return the shared client")
	}
}

func TestCloseIsIdempotentAndResets(t *testing.T) {
	reg := newTestRegistry()

	before := reg.Delivery()

	if err := reg.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := reg.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	after := reg.Delivery()
	if after == nil {
		t.Fatal("Delivery() after Close = nil")
	}
	if after == before {
		t.Error("Delivery() after Close returned the closed instance")
	}
	reg.Close()
}

func TestConcurrentFirstAccessYieldsOneInstance(t *testing.T) {
	reg := newTestRegistry()
	defer reg.Close()

	const n = 16
	clients := make([]interface{}, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			clients[i] = reg.Delivery()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if clients[i] != clients[0] {
			t.Fatalf("goroutine %d got a different instance", i)
		}
	}
}
