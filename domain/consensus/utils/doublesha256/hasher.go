// Package doublesha256 implements the fixed little-endian serializer and
// the SHA-256d ("double SHA-256") hash function used consensus-wide by the
// PoS kernel (spec.md §4.1, component C2). Every byte that ever crosses a
// hash boundary in this module goes through this package so the layout
// stays identical across components.
package doublesha256

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// HashWriter accumulates bytes for a SHA-256d digest. Writes never fail
// (an in-memory sha256.Sum can't error), so the methods are "infallible"
// the way the teacher's consensus hashing helpers are: callers chain writes
// without threading an error return through every serialization step.
type HashWriter struct {
	buf []byte
}

// NewHashWriter returns an empty HashWriter.
func NewHashWriter() *HashWriter {
	return &HashWriter{}
}

// InfallibleWrite appends raw bytes verbatim.
func (w *HashWriter) InfallibleWrite(b []byte) {
	w.buf = append(w.buf, b...)
}

// InfallibleWriteUint32LE appends a little-endian uint32.
func (w *HashWriter) InfallibleWriteUint32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// InfallibleWriteUint64LE appends a little-endian uint64.
func (w *HashWriter) InfallibleWriteUint64LE(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// Finalize returns SHA256d of everything written so far.
func (w *HashWriter) Finalize() *externalapi.DomainHash {
	return Sum(w.buf)
}

// Sum computes SHA-256 applied twice over data, per spec.md §4.1.
func Sum(data []byte) *externalapi.DomainHash {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return externalapi.NewDomainHashFromByteArray(&second)
}
