// Package flexhash computes content digests for batch manifests,
// grounded on fulhash/hash.go and
// fulhash/digest.go. Only xxh3-128 survives the trim — the original's
// SHA256 option and its Hasher streaming interface have no caller here,
// since flexacc only ever hashes whole in-memory documents (see
// DESIGN.md).
package flexhash

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/flexacc/flexacc/internal/flextelemetry"
)

// Digest is a computed xxh3-128 hash.
type Digest struct {
	bytes []byte
}

// Bytes returns the raw 16-byte digest.
func (d Digest) Bytes() []byte {
	return d.bytes
}

// Hex returns the lowercase hexadecimal rendering.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.bytes)
}

// String renders the digest as "xxh3-128:<hex>", matching fulhash's
// "algorithm:hex" convention.
func (d Digest) String() string {
	return fmt.Sprintf("xxh3-128:%s", d.Hex())
}

// Hash computes the xxh3-128 digest of data, emitting the same
// bytes-hashed counter shape fulhash.Hash emits.
func Hash(data []byte) Digest {
	sum := xxh3.Hash128(data)
	b := sum.Bytes()
	flextelemetry.EmitCounter("flexhash_bytes_hashed_total", float64(len(data)), nil)
	return Digest{bytes: b[:]}
}

// HashString is a convenience wrapper around Hash for string inputs.
func HashString(s string) Digest {
	return Hash([]byte(s))
}
