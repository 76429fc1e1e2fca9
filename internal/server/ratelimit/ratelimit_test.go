package ratelimit

import (
	"testing"
)

func TestLimiter_AllowsWithinBudget(t *testing.T) {
	l := NewLimiter(60)
	defer l.Stop()

	for i := 0; i < 60; i++ {
		allowed, _ := l.Allow("client-a")
		if !allowed {
			t.Fatalf("request %d unexpectedly limited", i)
		}
	}
}

func TestLimiter_BlocksOverBudget(t *testing.T) {
	l := NewLimiter(5)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		if allowed, _ := l.Allow("client-a"); !allowed {
			t.Fatalf("request %d unexpectedly limited", i)
		}
	}

	allowed, info := l.Allow("client-a")
	if allowed {
		t.Fatal("sixth request should be limited")
	}
	if info.Limit != 5 {
		t.Errorf("info.Limit = %d, want 5", info.Limit)
	}
	if info.RetryAfter <= 0 {
		t.Error("expected a positive RetryAfter when limited")
	}
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(1)
	defer l.Stop()

	if allowed, _ := l.Allow("client-a"); !allowed {
		t.Fatal("client-a first request should pass")
	}
	if allowed, _ := l.Allow("client-a"); allowed {
		t.Fatal("client-a second request should be limited")
	}
	if allowed, _ := l.Allow("client-b"); !allowed {
		t.Fatal("client-b should have its own budget")
	}
}

func TestLimiter_ZeroLimitDisables(t *testing.T) {
	l := NewLimiter(0)
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		if allowed, _ := l.Allow("client-a"); !allowed {
			t.Fatal("disabled limiter should always allow")
		}
	}
}
