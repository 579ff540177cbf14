package client

import (
	"strconv"

	"github.com/cespare/xxhash"
)

// Digest returns a short hex fingerprint of a payload, used in logs in
// place of the payload itself.
func Digest(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}
