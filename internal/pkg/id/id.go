package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs sort by creation time, which keeps
// DynamoDB partition keys for users, meetings and pets unique without a counter.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
