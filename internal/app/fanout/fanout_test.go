package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/partner-report/internal/app/fanout"
)

func TestMap_EmptyItems(t *testing.T) {
	t.Parallel()

	got, err := fanout.Map(context.Background(), 5, []int{}, func(_ context.Context, _ int) (string, error) {
		t.Fatal("fn should not be called for empty items")
		return "", nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil slice for empty items")
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestMap_AllSucceed(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}

	got, err := fanout.Map(context.Background(), 3, items, func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	for i, v := range got {
		if want := items[i] * 10; v != want {
			t.Errorf("got[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestMap_FirstErrorWins(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	got, err := fanout.Map(context.Background(), 3, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errBoom
		}
		return n, nil
	})

	if !errors.Is(err, errBoom) {
		t.Errorf("Map() error = %v, want %v", err, errBoom)
	}
	if got != nil {
		t.Errorf("Map() values = %v, want nil on error", got)
	}
}

func TestMap_ErrorCancelsSiblings(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	var sawCancel atomic.Bool
	started := make(chan struct{})

	_, err := fanout.Map(context.Background(), 2, []int{1, 2}, func(ctx context.Context, n int) (int, error) {
		if n == 1 {
			// Fail only once the sibling is running, so it is not skipped.
			<-started
			return 0, errBoom
		}
		close(started)
		select {
		case <-ctx.Done():
			sawCancel.Store(true)
			return 0, ctx.Err()
		case <-time.After(time.Second):
			return n, nil
		}
	})

	if !errors.Is(err, errBoom) {
		t.Fatalf("Map() error = %v, want %v", err, errBoom)
	}
	if !sawCancel.Load() {
		t.Error("sibling did not observe cancellation")
	}
}

func TestMap_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	items := []time.Duration{
		30 * time.Millisecond,
		10 * time.Millisecond,
		20 * time.Millisecond,
	}

	got, err := fanout.Map(context.Background(), 3, items, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	for i, v := range got {
		if v != items[i] {
			t.Errorf("got[%d] = %v, want %v", i, v, items[i])
		}
	}
}

func TestMap_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const limit = 3
	const totalItems = 15

	var peak, active atomic.Int32

	items := make([]int, totalItems)
	for i := range items {
		items[i] = i
	}

	got, err := fanout.Map(context.Background(), limit, items, func(_ context.Context, n int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)

		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}

		time.Sleep(10 * time.Millisecond)
		return n, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	if len(got) != totalItems {
		t.Fatalf("got %d values, want %d", len(got), totalItems)
	}
	if p := peak.Load(); p > limit {
		t.Fatalf("peak concurrency %d exceeded limit %d", p, limit)
	}
}

func TestMap_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := fanout.Map(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Map() error = %v, want context.Canceled", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("fn called %d times, want 0", n)
	}
}

func TestMap_LimitBelowOne(t *testing.T) {
	t.Parallel()

	got, err := fanout.Map(context.Background(), 0, []int{1, 2}, func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if got[0] != 2 || got[1] != 4 {
		t.Errorf("got = %v, want [2 4]", got)
	}
}
