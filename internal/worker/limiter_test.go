package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("https://example.com/doc") {
			t.Fatalf("Request %d should be allowed within burst", i+1)
		}
	}
	if l.Allow("https://example.com/doc") {
		t.Error("Request beyond burst should be denied")
	}
}

func TestLimiter_PerHostIsolation(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://one.example/doc") {
		t.Fatal("First host should be allowed")
	}
	if !l.Allow("https://two.example/doc") {
		t.Error("Second host has its own budget")
	}
	if l.Allow("https://one.example/other") {
		t.Error("First host budget should be spent")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.01, 1)

	// Burn the burst token
	if !l.Allow("https://example.com/doc") {
		t.Fatal("Burst token should be available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "https://example.com/doc"); err == nil {
		t.Error("Expected context deadline error while rate limited")
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	l := NewLimiter(1, 1)

	if l.Allow("://not a url") {
		t.Error("Expected invalid URL to be denied")
	}
	if err := l.Wait(context.Background(), "://not a url"); err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestLimiter_DefaultBurst(t *testing.T) {
	l := NewLimiter(1, 0)

	if l.defaultBurst <= 0 {
		t.Errorf("Expected positive default burst, got %d", l.defaultBurst)
	}
}
