package day16_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/days/day16"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func TestBitReader(t *testing.T) {
	r, err := day16.NewBitReader("38006F45291200")
	require.NoError(t, err)
	assert.Equal(t, "00111000000000000110111101000101001010010001001000000000", r.Binary())

	v, err := r.Read(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
	assert.Equal(t, 53, r.Remaining())

	_, err = r.Read(54)
	assert.ErrorIs(t, err, day16.ErrTruncated)
}

func TestDecode_Literal(t *testing.T) {
	p, err := day16.Decode("D2FE28")
	require.NoError(t, err)
	assert.Equal(t, &day16.Packet{Version: 6, TypeID: day16.TypeLiteral, Value: 2021}, p)
}

func TestDecode_Operators(t *testing.T) {
	// length type 0: two literals 10 and 20
	p, err := day16.Decode("38006F45291200")
	require.NoError(t, err)
	assert.Equal(t, uint8(1), p.Version)
	assert.Equal(t, uint8(day16.TypeLess), p.TypeID)
	require.Len(t, p.Sub, 2)
	assert.Equal(t, uint64(10), p.Sub[0].Value)
	assert.Equal(t, uint64(20), p.Sub[1].Value)

	// length type 1: three literals 1, 2, 3
	p, err = day16.Decode("EE00D40C823060")
	require.NoError(t, err)
	assert.Equal(t, uint8(7), p.Version)
	require.Len(t, p.Sub, 3)
	assert.Equal(t, []uint64{1, 2, 3}, []uint64{p.Sub[0].Value, p.Sub[1].Value, p.Sub[2].Value})
}

func TestVersionSum(t *testing.T) {
	cases := map[string]int{
		"8A004A801A8002F478":             16,
		"620080001611562C8802118E34":     12,
		"C0015000016115A2E0802F182340":   23,
		"A0016C880162017C3686B18A3D4780": 31,
	}
	for in, want := range cases {
		p, err := day16.Decode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, p.VersionSum(), in)
	}
}

func TestEval(t *testing.T) {
	cases := map[string]uint64{
		"C200B40A82":                 3,
		"04005AC33890":               54,
		"880086C3E88112":             7,
		"CE00C43D881120":             9,
		"D8005AC2A8F0":               1,
		"F600BC2D8F":                 0,
		"9C005AC2F8F0":               0,
		"9C0141080250320F1802104A08": 1,
	}
	for in, want := range cases {
		p, err := day16.Decode(in)
		require.NoError(t, err, in)
		got, err := p.Eval()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestEval_BadComparison(t *testing.T) {
	p := &day16.Packet{TypeID: day16.TypeGreater, Sub: []*day16.Packet{{TypeID: day16.TypeLiteral, Value: 1}}}
	_, err := p.Eval()
	assert.ErrorIs(t, err, day16.ErrBadOperator)
}

func TestDecode_Errors(t *testing.T) {
	_, err := day16.Decode("ZZ")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	// literal cut short after the first group
	_, err = day16.Decode("D2F")
	assert.Error(t, err)
	_, err = day16.Decode("D2")
	assert.ErrorIs(t, err, day16.ErrTruncated)
}

func TestSolve(t *testing.T) {
	ans, err := day16.Solve(context.Background(), []byte("9C0141080250320F1802104A08\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", ans.Part2)

	d, err := puzzle.Lookup(16)
	require.NoError(t, err)
	ans, err = day16.Solve(context.Background(), d.Input)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "893", Part2: "4358595186090"}, ans)
}
