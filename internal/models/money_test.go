package models

import "testing"

func TestMoneyFromMajor(t *testing.T) {
	cases := map[string]Money{
		"25.00":  2500,
		"0.01":   1,
		"0":      0,
		"199.99": 19999,
		"10":     1000,
	}
	for input, want := range cases {
		got, err := MoneyFromMajor(input)
		if err != nil {
			t.Fatalf("MoneyFromMajor(%q) failed: %v", input, err)
		}
		if got != want {
			t.Fatalf("MoneyFromMajor(%q) = %d, want %d", input, got, want)
		}
	}

	if _, err := MoneyFromMajor("not-a-number"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMoneyMajor(t *testing.T) {
	cases := map[Money]string{
		2500:  "25.00",
		1:     "0.01",
		0:     "0.00",
		19999: "199.99",
	}
	for input, want := range cases {
		if got := input.Major(); got != want {
			t.Fatalf("Money(%d).Major() = %q, want %q", input, got, want)
		}
	}
}

func TestMoneyMul(t *testing.T) {
	if got := Money(1250).Mul(3); got != 3750 {
		t.Fatalf("Mul = %d, want 3750", got)
	}
	if got := Money(1250).Mul(0); got != 0 {
		t.Fatalf("Mul zero = %d, want 0", got)
	}
}
