package day16

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrTruncated indicates the transmission ended inside a packet.
var ErrTruncated = errors.New("day16: transmission truncated")

// BitReader reads big-endian bit fields from a byte slice.
type BitReader struct {
	data []byte
	pos  int // next bit
}

// NewBitReader decodes a hexadecimal transmission.
func NewBitReader(hexStr string) (*BitReader, error) {
	data, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return nil, fmt.Errorf("day16: decode hex: %w", err)
	}
	return &BitReader{data: data}, nil
}

// Pos returns the number of bits consumed.
func (r *BitReader) Pos() int { return r.pos }

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int { return len(r.data)*8 - r.pos }

// Read consumes n (≤ 64) bits and returns them as an unsigned integer.
func (r *BitReader) Read(n int) (uint64, error) {
	if n > r.Remaining() {
		return 0, fmt.Errorf("%w: need %d bits at %d, %d left", ErrTruncated, n, r.pos, r.Remaining())
	}
	var v uint64
	for i := 0; i < n; i++ {
		b := r.data[r.pos/8] >> (7 - uint(r.pos%8)) & 1
		v = v<<1 | uint64(b)
		r.pos++
	}
	return v, nil
}

// Binary renders the whole transmission as a string of '0' and '1'.
func (r *BitReader) Binary() string {
	var sb strings.Builder
	for _, b := range r.data {
		fmt.Fprintf(&sb, "%08b", b)
	}
	return sb.String()
}
