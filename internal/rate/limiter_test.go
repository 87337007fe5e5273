package rate

import (
	"testing"
	"time"
)

func TestWindowLimiter(t *testing.T) {
	l := NewWindowLimiter(2, time.Minute)

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two calls should pass")
	}
	if l.Allow("a") {
		t.Fatal("third call within the window should be denied")
	}
	if !l.Allow("b") {
		t.Fatal("other keys have their own budget")
	}
}

func TestWindowLimiterResets(t *testing.T) {
	l := NewWindowLimiter(1, 10*time.Millisecond)

	if !l.Allow("a") {
		t.Fatal("first call should pass")
	}
	if l.Allow("a") {
		t.Fatal("second call should be denied")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Allow("a") {
		t.Fatal("call after the window should pass")
	}
}
