package x_test

import (
	"context"
	"testing"

	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/locktest"
	"github.com/iov-one/tokenlock/locktest/assert"
	"github.com/iov-one/tokenlock/x"
)

func TestChainAuth(t *testing.T) {
	a := locktest.NewCondition()
	b := locktest.NewCondition()
	c := locktest.NewCondition()

	auth := x.ChainAuth(
		&locktest.Auth{Signer: a},
		&locktest.Auth{Signers: []tokenlock.Condition{b, c}},
	)

	ctx := context.Background()
	conds := auth.GetConditions(ctx)
	if len(conds) != 3 {
		t.Fatalf("unexpected conditions: %v", conds)
	}

	for _, cond := range []tokenlock.Condition{a, b, c} {
		if !auth.HasAddress(ctx, cond.Address()) {
			t.Fatalf("missing address: %s", cond)
		}
	}
	if auth.HasAddress(ctx, locktest.NewCondition().Address()) {
		t.Fatal("stranger must not authenticate")
	}
}

func TestMainSigner(t *testing.T) {
	a := locktest.NewCondition()
	b := locktest.NewCondition()

	ctx := context.Background()

	// the first condition wins
	auth := &locktest.Auth{Signers: []tokenlock.Condition{a, b}}
	assert.Equal(t, a, x.MainSigner(ctx, auth))

	// no signers, no main signer
	if got := x.MainSigner(ctx, &locktest.Auth{}); got != nil {
		t.Fatalf("unexpected signer: %s", got)
	}
}

func TestGetAddresses(t *testing.T) {
	a := locktest.NewCondition()
	b := locktest.NewCondition()

	auth := &locktest.Auth{Signers: []tokenlock.Condition{a, b}}
	addrs := x.GetAddresses(context.Background(), auth)
	assert.Equal(t, []tokenlock.Address{a.Address(), b.Address()}, addrs)
}

func TestHasAllAddresses(t *testing.T) {
	a := locktest.NewCondition()
	b := locktest.NewCondition()
	stranger := locktest.NewCondition()

	ctx := context.Background()
	auth := &locktest.Auth{Signers: []tokenlock.Condition{a, b}}

	if !x.HasAllAddresses(ctx, auth, []tokenlock.Address{a.Address(), b.Address()}) {
		t.Fatal("signed addresses not found")
	}
	if x.HasAllAddresses(ctx, auth, []tokenlock.Address{a.Address(), stranger.Address()}) {
		t.Fatal("stranger must not authenticate")
	}
	// an empty requirement always holds
	if !x.HasAllAddresses(ctx, auth, nil) {
		t.Fatal("empty requirement must hold")
	}
}

func TestHasNConditions(t *testing.T) {
	a := locktest.NewCondition()
	b := locktest.NewCondition()
	c := locktest.NewCondition()

	ctx := context.Background()
	auth := &locktest.Auth{Signers: []tokenlock.Condition{a, b}}

	requested := []tokenlock.Condition{a, b, c}
	if !x.HasNConditions(ctx, auth, requested, 2) {
		t.Fatal("two conditions are fulfilled")
	}
	if x.HasNConditions(ctx, auth, requested, 3) {
		t.Fatal("only two conditions are fulfilled")
	}
	if !x.HasNConditions(ctx, auth, requested, 0) {
		t.Fatal("zero threshold always holds")
	}
	if !x.HasAllConditions(ctx, auth, []tokenlock.Condition{a, b}) {
		t.Fatal("all conditions are fulfilled")
	}
}

func TestCtxAuth(t *testing.T) {
	a := locktest.NewCondition()
	auth := &locktest.CtxAuth{Key: "auth"}

	ctx := context.Background()
	if auth.HasAddress(ctx, a.Address()) {
		t.Fatal("empty context must not authenticate")
	}

	ctx = auth.SetConditions(ctx, a)
	if !auth.HasAddress(ctx, a.Address()) {
		t.Fatal("condition was set on the context")
	}
	assert.Equal(t, []tokenlock.Condition{a}, auth.GetConditions(ctx))
}
