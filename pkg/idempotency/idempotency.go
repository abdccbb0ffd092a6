// Package idempotency records responses to retried create requests.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Header is the request header carrying the client's idempotency key.
const Header = "Idempotency-Key"

// Record is a response stored under an idempotency key.
type Record struct {
	BodyHash string `json:"bodyHash"`
	Status   int    `json:"status"`
	Body     []byte `json:"body"`
}

// Store keeps records for a limited time.
type Store interface {
	// Get returns the record for key; ok is false when none exists.
	Get(ctx context.Context, key string) (rec Record, ok bool, err error)
	Put(ctx context.Context, key string, rec Record, ttl time.Duration) error
}

// HashBody fingerprints a request body.
func HashBody(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
