package shared

import (
	"fmt"
	"math/rand"
	"time"
)

// codeAlphabet leaves out I, L, O and U so generated codes stay
// unambiguous when read aloud or handwritten on a package label.
const codeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

func randomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

// NewOrderNumber generates an order number like ORD-20260830-7F3K. The
// date segment keeps numbers grouped by day; the random suffix keeps
// them unique within it.
func NewOrderNumber(t time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102"), randomCode(4))
}

// NewSKU formats a catalog sequence position as a SKU code, zero-padded
// to four digits (SKU-0001, SKU-0042).
func NewSKU(seq int64) string {
	return fmt.Sprintf("SKU-%04d", seq)
}

// NewTrackingNumber generates a delivery tracking number like
// TRK-7F3KM2Q9XW. Tracking numbers are immutable once assigned.
func NewTrackingNumber() string {
	return "TRK-" + randomCode(10)
}
