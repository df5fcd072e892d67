// Package day16 solves "Packet Decoder": parsing a BITS transmission into a
// packet tree and evaluating the expression it encodes.
package day16

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/aoc2021/puzzle"
)

//go:embed input.txt
var input []byte

func init() {
	puzzle.Register(puzzle.Day{Number: 16, Title: "Packet Decoder", Solve: Solve, Input: input})
}

// Packet type IDs.
const (
	TypeSum     = 0
	TypeProduct = 1
	TypeMin     = 2
	TypeMax     = 3
	TypeLiteral = 4
	TypeGreater = 5
	TypeLess    = 6
	TypeEqual   = 7
)

// ErrBadOperator indicates an operator packet whose operands do not fit it.
var ErrBadOperator = errors.New("day16: bad operator packet")

// Packet is one node of the transmission.
type Packet struct {
	Version uint8
	TypeID  uint8
	// Value holds the literal value (TypeLiteral only).
	Value uint64
	// Sub holds the operands of an operator packet.
	Sub []*Packet
}

// Decode parses the outermost packet of a hexadecimal transmission.
// Trailing zero padding is ignored.
func Decode(hexStr string) (*Packet, error) {
	r, err := NewBitReader(hexStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", puzzle.ErrMalformedInput, err)
	}
	return ReadPacket(r)
}

// ReadPacket reads one packet, with its sub-packets, from r.
//
// Layout: 3-bit version, 3-bit type ID, then either literal groups (type 4:
// 5-bit groups, a leading 1 meaning more groups follow) or an operator body:
// a length type bit followed by a 15-bit total length of sub-packets in bits
// (0) or an 11-bit count of sub-packets (1).
func ReadPacket(r *BitReader) (*Packet, error) {
	version, err := r.Read(3)
	if err != nil {
		return nil, err
	}
	typeID, err := r.Read(3)
	if err != nil {
		return nil, err
	}
	p := &Packet{Version: uint8(version), TypeID: uint8(typeID)}

	if p.TypeID == TypeLiteral {
		for {
			group, err := r.Read(5)
			if err != nil {
				return nil, err
			}
			if p.Value > math.MaxUint64>>4 {
				return nil, fmt.Errorf("%w: literal overflows 64 bits", puzzle.ErrMalformedInput)
			}
			p.Value = p.Value<<4 | group&0xF
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}

	lengthType, err := r.Read(1)
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		length, err := r.Read(15)
		if err != nil {
			return nil, err
		}
		end := r.Pos() + int(length)
		for r.Pos() < end {
			sub, err := ReadPacket(r)
			if err != nil {
				return nil, err
			}
			p.Sub = append(p.Sub, sub)
		}
		if r.Pos() != end {
			return nil, fmt.Errorf("%w: sub-packets overrun their %d-bit length", puzzle.ErrMalformedInput, length)
		}
		return p, nil
	}

	count, err := r.Read(11)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < count; i++ {
		sub, err := ReadPacket(r)
		if err != nil {
			return nil, err
		}
		p.Sub = append(p.Sub, sub)
	}

	return p, nil
}

// VersionSum adds the versions of p and every nested packet.
func (p *Packet) VersionSum() int {
	sum := int(p.Version)
	for _, s := range p.Sub {
		sum += s.VersionSum()
	}
	return sum
}

// Eval computes the value of the expression rooted at p.
func (p *Packet) Eval() (uint64, error) {
	if p.TypeID == TypeLiteral {
		return p.Value, nil
	}
	if len(p.Sub) == 0 {
		return 0, fmt.Errorf("%w: type %d has no operands", ErrBadOperator, p.TypeID)
	}
	vals := make([]uint64, len(p.Sub))
	for i, s := range p.Sub {
		v, err := s.Eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}

	switch p.TypeID {
	case TypeSum:
		return puzzle.Sum(vals), nil
	case TypeProduct:
		prod := uint64(1)
		for _, v := range vals {
			prod *= v
		}
		return prod, nil
	case TypeMin:
		lo, _ := puzzle.MinMax(vals)
		return lo, nil
	case TypeMax:
		_, hi := puzzle.MinMax(vals)
		return hi, nil
	case TypeGreater, TypeLess, TypeEqual:
		if len(vals) != 2 {
			return 0, fmt.Errorf("%w: comparison type %d needs 2 operands, got %d", ErrBadOperator, p.TypeID, len(vals))
		}
		var ok bool
		switch p.TypeID {
		case TypeGreater:
			ok = vals[0] > vals[1]
		case TypeLess:
			ok = vals[0] < vals[1]
		default:
			ok = vals[0] == vals[1]
		}
		if ok {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("%w: unknown type %d", ErrBadOperator, p.TypeID)
}

// Solve sums packet versions and evaluates the transmission.
func Solve(_ context.Context, input []byte) (puzzle.Answer, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}
	p, err := Decode(lines[0])
	if err != nil {
		return puzzle.Answer{}, err
	}
	v, err := p.Eval()
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.NewAnswer(p.VersionSum(), v), nil
}
