package tokenlock

import (
	"context"
	"testing"
	"time"
)

func TestContextBlockValues(t *testing.T) {
	ctx := context.Background()

	if _, ok := GetHeight(ctx); ok {
		t.Fatal("unset height must not be reported")
	}
	ctx = WithHeight(ctx, 123)
	if h, ok := GetHeight(ctx); !ok || h != 123 {
		t.Fatalf("unexpected height: %d %v", h, ok)
	}

	ctx = WithChainID(ctx, "test-chain-1")
	if got := GetChainID(ctx); got != "test-chain-1" {
		t.Fatalf("unexpected chain id: %q", got)
	}

	now := time.Now()
	ctx = WithBlockTime(ctx, now)
	if got, ok := BlockTime(ctx); !ok || !got.Equal(now) {
		t.Fatalf("unexpected block time: %v %v", got, ok)
	}
}

func TestContextSetTwicePanics(t *testing.T) {
	ctx := WithHeight(context.Background(), 1)
	defer func() {
		if recover() == nil {
			t.Fatal("setting the height twice must panic")
		}
	}()
	WithHeight(ctx, 2)
}

func TestInvalidChainIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("invalid chain id must panic")
		}
	}()
	WithChainID(context.Background(), "no")
}

func TestIsExpired(t *testing.T) {
	now := AsUnixTime(time.Unix(1500000000, 0))
	ctx := WithBlockTime(context.Background(), now.Time())

	if IsExpired(ctx, now.Add(time.Minute)) {
		t.Fatal("future timestamp must not be expired")
	}
	if !IsExpired(ctx, now.Add(-time.Minute)) {
		t.Fatal("past timestamp must be expired")
	}
	// expiration is inclusive
	if !IsExpired(ctx, now) {
		t.Fatal("present timestamp must be expired")
	}
}

func TestIsExpiredRequiresBlockTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("missing block time must panic")
		}
	}()
	IsExpired(context.Background(), AsUnixTime(time.Now()))
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	if GetLogger(ctx) != DefaultLogger {
		t.Fatal("expected the default logger")
	}
	ctx = WithLogInfo(ctx, "module", "test")
	if GetLogger(ctx) == DefaultLogger {
		t.Fatal("expected a custom logger")
	}
}
