// Package errhash issues short references that tie a user visible error to a
// log line.
package errhash

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/google/uuid"
)

const Length = 10

func New() string {
	sum := sha1.Sum([]byte(uuid.NewString()))
	return hex.EncodeToString(sum[:])[:Length]
}
