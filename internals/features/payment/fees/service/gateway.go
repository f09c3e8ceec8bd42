package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentGateway wraps the external payment processor. Constructed once at
// startup from runtime configuration and injected into the payment
// controller; the server key never lives in source.
type PaymentGateway struct {
	serverKey string
	snap      snap.Client
}

func NewPaymentGateway(serverKey string, production bool) *PaymentGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g := &PaymentGateway{serverKey: serverKey}
	g.snap.New(serverKey, env)
	return g
}

type GatewayOrder struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Token       string  `json:"token"`
	RedirectURL string  `json:"redirect_url"`
}

// CreateOrder opens a checkout transaction at the gateway and returns the
// order the dashboard hands to the payment widget.
func (g *PaymentGateway) CreateOrder(amount float64, currency, receipt string) (*GatewayOrder, error) {
	orderID := receipt
	if orderID == "" {
		orderID = "ORD-" + uuid.NewString()
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
	}
	resp, mErr := g.snap.CreateTransaction(req)
	if mErr != nil {
		return nil, mErr
	}

	if currency == "" {
		currency = "IDR"
	}
	return &GatewayOrder{
		OrderID:     orderID,
		Amount:      amount,
		Currency:    currency,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// SignConfirmation computes the hex HMAC-SHA256 over "orderID|paymentID"
// keyed by the shared secret. The gateway signs its confirmation callback
// the same way.
func SignConfirmation(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature recomputes the confirmation signature and compares it in
// constant time. A mismatch is a hard security rejection, never a retry.
func (g *PaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	expected := SignConfirmation(g.serverKey, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
