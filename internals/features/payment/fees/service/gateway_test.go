package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testServerKey = "SB-test-server-key"

func TestVerifySignature(t *testing.T) {
	g := NewPaymentGateway(testServerKey, false)

	orderID := "order_123"
	paymentID := "pay_456"
	valid := SignConfirmation(testServerKey, orderID, paymentID)

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{name: "exact match", orderID: orderID, paymentID: paymentID, signature: valid, want: true},
		{name: "mutated order id", orderID: "order_124", paymentID: paymentID, signature: valid},
		{name: "mutated payment id", orderID: orderID, paymentID: "pay_457", signature: valid},
		{name: "mutated signature", orderID: orderID, paymentID: paymentID, signature: valid[:len(valid)-1] + "0"},
		{name: "empty signature", orderID: orderID, paymentID: paymentID, signature: ""},
		{name: "swapped ids", orderID: paymentID, paymentID: orderID, signature: valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.VerifySignature(tt.orderID, tt.paymentID, tt.signature))
		})
	}
}

func TestVerifySignatureDifferentSecret(t *testing.T) {
	g := NewPaymentGateway(testServerKey, false)

	sig := SignConfirmation("some-other-secret", "order_123", "pay_456")
	assert.False(t, g.VerifySignature("order_123", "pay_456", sig))
}

func TestSignConfirmationDeterministic(t *testing.T) {
	a := SignConfirmation(testServerKey, "order_123", "pay_456")
	b := SignConfirmation(testServerKey, "order_123", "pay_456")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex sha256
}
