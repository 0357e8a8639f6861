package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlightCollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var calls atomic.Int32
	release := make(chan struct{})

	const waiters = 8
	var wg sync.WaitGroup
	results := make([]any, waiters)
	for idx := 0; idx < waiters; idx++ {
		idx := idx
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err, _ := flight.Do("key", func() (any, error) {
				calls.Add(1)
				<-release
				return "value", nil
			})
			if err != nil {
				t.Errorf("Do: %v", err)
			}
			results[idx] = value
		}()
	}

	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 execution, got %d", got)
	}
	for idx, value := range results {
		if value != "value" {
			t.Fatalf("waiter %d got %v", idx, value)
		}
	}
}

func TestSingleFlightDistinctKeysRunIndependently(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	a, err, shared := flight.Do("a", func() (any, error) { return 1, nil })
	if err != nil || shared || a != 1 {
		t.Fatalf("Do(a) = %v, %v, shared=%t", a, err, shared)
	}
	b, err, shared := flight.Do("b", func() (any, error) { return 2, nil })
	if err != nil || shared || b != 2 {
		t.Fatalf("Do(b) = %v, %v, shared=%t", b, err, shared)
	}
}
