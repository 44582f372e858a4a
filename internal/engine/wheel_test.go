package engine

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"
)

func TestWheelWeightedDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	total := wheelTotalWeight()

	const draws = 100_000
	counts := make([]int, len(wheelSegments))
	for i := 0; i < draws; i++ {
		counts[pickSegment(rng)]++
	}

	for i, seg := range wheelSegments {
		want := float64(seg.Weight) / float64(total)
		got := float64(counts[i]) / float64(draws)
		if math.Abs(got-want) > 0.01 {
			t.Fatalf("segment %s: frequency %.4f, want %.4f ±0.01", seg.ID, got, want)
		}
	}
}

func TestSpinCooldown(t *testing.T) {
	svc, _, now := newTestService(t)
	mustCreate(t, svc)
	fund(t, svc, 10_000)
	ctx := context.Background()
	cooldown := svc.Balance().WheelCooldown()

	res, err := svc.Spin(ctx)
	if err != nil {
		t.Fatalf("spin #1: %v", err)
	}
	if !res.NextAt.Equal(now.Add(cooldown)) {
		t.Fatalf("nextAt=%v, want %v", res.NextAt, now.Add(cooldown))
	}

	// A beat later: still cooling down.
	*now = now.Add(time.Minute)
	var cd CooldownError
	if _, err := svc.Spin(ctx); !errors.As(err, &cd) {
		t.Fatalf("spin #2 err=%v, want CooldownError", err)
	}
	if cd.Remaining <= 0 || cd.Remaining > cooldown {
		t.Fatalf("remaining=%v out of range", cd.Remaining)
	}

	// Past the cooldown: spinnable again.
	*now = now.Add(cooldown)
	if _, err := svc.Spin(ctx); err != nil {
		t.Fatalf("spin #3: %v", err)
	}
}

func TestSpinDebitsBeforeReward(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc)
	fund(t, svc, 1000)
	ctx := context.Background()
	cost := svc.Balance().WheelSpinCost

	res, err := svc.Spin(ctx)
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	wantShards := 1000 - cost + res.Segment.Shards
	if res.Shards != wantShards {
		t.Fatalf("shards=%d, want %d (segment %s)", res.Shards, wantShards, res.Segment.ID)
	}
	if res.Segment.ItemID != "" {
		p, _ := svc.Profile(ctx)
		if p.Qty(res.Segment.ItemID) != 1 {
			t.Fatalf("item prize %s not credited", res.Segment.ItemID)
		}
	}
}

func TestSpinInsufficientFunds(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc)
	fund(t, svc, 100)

	if _, err := svc.Spin(context.Background()); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err=%v, want ErrInsufficientFunds", err)
	}
	p, _ := svc.Profile(context.Background())
	if p.Shards != 100 || !p.Wheel.NextAt.IsZero() {
		t.Fatalf("failed spin mutated state: shards=%d nextAt=%v", p.Shards, p.Wheel.NextAt)
	}
}

func TestResetWheel(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc)
	fund(t, svc, 10_000)
	ctx := context.Background()

	if _, err := svc.Spin(ctx); err != nil {
		t.Fatalf("spin: %v", err)
	}
	if _, err := svc.ResetWheel(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	// Immediately spinnable again.
	if _, err := svc.Spin(ctx); err != nil {
		t.Fatalf("spin after reset: %v", err)
	}

	// Reset is also allowed while already spinnable.
	if _, err := svc.ResetWheel(ctx); err != nil {
		t.Fatalf("reset while spinnable: %v", err)
	}
}

func TestResetWheelInsufficientFunds(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc)
	fund(t, svc, 100)

	if _, err := svc.ResetWheel(context.Background()); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err=%v, want ErrInsufficientFunds", err)
	}
}

func TestSpinIsNotReentrant(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc)
	fund(t, svc, 100_000)
	ctx := context.Background()

	// A rapid double-click: both calls race, exactly one may draw.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Spin(ctx)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var cd CooldownError
		if !errors.As(err, &cd) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("%d spins succeeded, want exactly 1", succeeded)
	}
}
