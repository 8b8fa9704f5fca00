package service

import (
	"testing"

	"github.com/shopnext/internal/constants"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{constants.OrderStatusPending, constants.OrderStatusShipped},
		{constants.OrderStatusPending, constants.OrderStatusCancelled},
		{constants.OrderStatusShipped, constants.OrderStatusDelivered},
		{constants.OrderStatusShipped, constants.OrderStatusCancelled},
	}
	for _, pair := range allowed {
		if !canTransition(pair[0], pair[1]) {
			t.Fatalf("expected transition %s -> %s allowed", pair[0], pair[1])
		}
	}

	denied := [][2]string{
		{constants.OrderStatusPending, constants.OrderStatusDelivered},
		{constants.OrderStatusShipped, constants.OrderStatusPending},
		{constants.OrderStatusDelivered, constants.OrderStatusShipped},
		{constants.OrderStatusDelivered, constants.OrderStatusCancelled},
		{constants.OrderStatusCancelled, constants.OrderStatusPending},
		{constants.OrderStatusCancelled, constants.OrderStatusShipped},
	}
	for _, pair := range denied {
		if canTransition(pair[0], pair[1]) {
			t.Fatalf("expected transition %s -> %s denied", pair[0], pair[1])
		}
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range constants.OrderStatuses {
		if !IsValidOrderStatus(status) {
			t.Fatalf("expected %s valid", status)
		}
	}
	if IsValidOrderStatus("paid") {
		t.Fatalf("unexpected status accepted")
	}
	if IsValidOrderStatus("") {
		t.Fatalf("empty status accepted")
	}
}

func TestStepIndexForStatus(t *testing.T) {
	cases := map[string]int{
		constants.OrderStatusPending:   1,
		constants.OrderStatusShipped:   3,
		constants.OrderStatusDelivered: constants.TrackingStepCount,
		constants.OrderStatusCancelled: -1,
	}
	for status, want := range cases {
		if got := stepIndexForStatus(status); got != want {
			t.Fatalf("stepIndexForStatus(%s) = %d, want %d", status, got, want)
		}
	}
}
