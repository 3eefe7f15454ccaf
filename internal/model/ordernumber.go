package model

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const orderNumberAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderNumber builds a human-readable order number from the current
// timestamp plus a short random suffix, e.g. "ORD-MBX1K2P3-A9F0".
// Not guaranteed unique; the orders table carries the unique index.
func NewOrderNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}

	return fmt.Sprintf("ORD-%s-%s", strings.ToUpper(ts), strings.ToUpper(string(suffix)))
}
