package fn

import "testing"

func TestT(t *testing.T) {
	if got := T(true, "a", "b"); got != "a" {
		t.Errorf("T(true) = %q, want %q", got, "a")
	}
	if got := T(false, 1, 2); got != 2 {
		t.Errorf("T(false) = %d, want %d", got, 2)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "fallback"); got != "fallback" {
		t.Errorf("Or(\"\") = %q, want %q", got, "fallback")
	}
	if got := Or("set", "fallback"); got != "set" {
		t.Errorf("Or(\"set\") = %q, want %q", got, "set")
	}
	if got := Or(0, 7); got != 7 {
		t.Errorf("Or(0) = %d, want %d", got, 7)
	}
}
