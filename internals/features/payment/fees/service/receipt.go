package service

import (
	"strings"

	"github.com/google/uuid"
)

const receiptPrefix = "REC-"

// NewReceiptNo returns a fresh unique receipt number. UUID-derived rather
// than wall-clock-derived, so two creations inside the same clock tick can
// never collide.
func NewReceiptNo() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return receiptPrefix + raw
}
