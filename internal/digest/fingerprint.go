package digest

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/domain/types"
)

// fingerprintBytes is the truncated digest length.
const fingerprintBytes = 10

// Polar returns the fingerprint of t.
func Polar(t polar.Table) types.Fingerprint {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	var row [24]byte
	for _, p := range t.Points() {
		binary.BigEndian.PutUint64(row[0:8], math.Float64bits(p.AlphaDeg))
		binary.BigEndian.PutUint64(row[8:16], math.Float64bits(p.CL))
		binary.BigEndian.PutUint64(row[16:24], math.Float64bits(p.CD))
		h.Write(row[:])
	}
	sum := h.Sum(nil)
	return types.Fingerprint(hex.EncodeToString(sum[:fingerprintBytes]))
}

// Valid reports whether s has the shape of a fingerprint.
func Valid(s string) bool {
	if len(s) != 2*fingerprintBytes {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
