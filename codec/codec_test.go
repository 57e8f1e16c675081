// SPDX-License-Identifier: MIT

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cipherlab/codec"
	"github.com/katalvlaran/cipherlab/matrix"
	"github.com/katalvlaran/cipherlab/ring"
)

func mustCodec(t *testing.T, opts ...codec.Option) *codec.Codec {
	t.Helper()
	c, err := codec.New(opts...)
	require.NoError(t, err)

	return c
}

func TestNewAlphabet(t *testing.T) {
	a, err := codec.NewAlphabet("ABC")
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.Size())
	v, ok := a.Index('C')
	assert.True(t, ok)
	assert.Equal(t, int64(2), v)
	assert.False(t, a.Contains('D'))
	assert.Equal(t, "ABC", a.String())

	_, err = codec.NewAlphabet("A")
	assert.ErrorIs(t, err, ring.ErrInvalidModulus)
	_, err = codec.NewAlphabet("")
	assert.ErrorIs(t, err, ring.ErrInvalidModulus)
	_, err = codec.NewAlphabet("ABA")
	assert.ErrorIs(t, err, codec.ErrDuplicateSymbol)
}

func TestAlphabet_Symbol(t *testing.T) {
	r, err := codec.Latin.Symbol(25)
	require.NoError(t, err)
	assert.Equal(t, 'Z', r)

	_, err = codec.Latin.Symbol(26)
	assert.ErrorIs(t, err, codec.ErrSymbolOutOfRange)
	_, err = codec.Latin.Symbol(-1)
	assert.ErrorIs(t, err, codec.ErrSymbolOutOfRange)
}

func TestNew_FillMustBeInAlphabet(t *testing.T) {
	_, err := codec.New(codec.WithFill('x'))
	assert.ErrorIs(t, err, codec.ErrFillNotInAlphabet)

	digits := codec.MustAlphabet("0123456789")
	_, err = codec.New(codec.WithAlphabet(digits))
	assert.ErrorIs(t, err, codec.ErrFillNotInAlphabet)

	c := mustCodec(t, codec.WithAlphabet(digits), codec.WithFill('0'))
	assert.Equal(t, int64(10), c.Modulus())
	assert.Equal(t, '0', c.Fill())
}

func TestClean(t *testing.T) {
	c := mustCodec(t)
	cases := []struct {
		in, want string
	}{
		{"Hello, World!", "HELLOWORLD"},
		{"  attack at dawn 123 ", "ATTACKATDAWN"},
		{"Crème brûlée", "CREMEBRULEE"},
		{"Straße", "STRASSE"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Clean(tc.in), "Clean(%q)", tc.in)
	}
}

func TestClean_NoCaseFold(t *testing.T) {
	mixed := codec.MustAlphabet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	c := mustCodec(t, codec.WithAlphabet(mixed), codec.WithCaseFold(false))
	assert.Equal(t, "HelloWorld", c.Clean("Hello, World!"))
}

func TestClean_KeepsAccentedMembers(t *testing.T) {
	spanish := codec.MustAlphabet("ABCDEFGHIJKLMNÑOPQRSTUVWXYZ .")
	c := mustCodec(t, codec.WithAlphabet(spanish))
	cases := []struct {
		in, want string
	}{
		{"ÑANDU", "ÑANDU"},
		{"ñandú", "ÑANDU"},
		{"N\u0303ANDU", "ÑANDU"}, // decomposed Ñ
		{"Señor, é!", "SEÑOR E"},
		{"ÑN", "ÑN"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Clean(tc.in), "Clean(%q)", tc.in)
	}
}

func TestClean_LowercaseAlphabet(t *testing.T) {
	lower := codec.MustAlphabet("abcdefghijklmnopqrstuvwxyz")
	c := mustCodec(t, codec.WithAlphabet(lower), codec.WithFill('x'))
	assert.Equal(t, "helloworld", c.Clean("Hello, World!"))
	assert.Equal(t, "creme", c.Clean("CRÈME"))

	strict := mustCodec(t, codec.WithAlphabet(lower), codec.WithFill('x'), codec.WithCaseFold(false))
	assert.Equal(t, "ello", strict.Clean("Hello"))
}

func TestClean_IsIdempotent(t *testing.T) {
	c := mustCodec(t)
	for _, in := range []string{"Hello, World!", "Crème brûlée", "Straße"} {
		once := c.Clean(in)
		assert.Equal(t, once, c.Clean(once), "Clean(%q)", in)
	}
}

func TestEncodeBlocks_Padding(t *testing.T) {
	c := mustCodec(t)

	blocks, err := c.EncodeBlocks("HELLO", 2)
	require.NoError(t, err)
	assert.Equal(t, []matrix.Vector{{7, 4}, {11, 11}, {14, 23}}, blocks) // HE LL OX

	text, err := c.DecodeBlocks(blocks)
	require.NoError(t, err)
	assert.Equal(t, "HELLOX", text, "decode must not strip the fill")
}

func TestEncodeBlocks_BlockCount(t *testing.T) {
	c := mustCodec(t)
	cases := []struct {
		text      string
		n, blocks int
		pad       int
	}{
		{"", 3, 0, 0},
		{"A", 3, 1, 2},
		{"ABC", 3, 1, 0},
		{"ABCD", 3, 2, 2},
		{"ABCD", 1, 4, 0},
	}
	for _, tc := range cases {
		got, err := c.EncodeBlocks(tc.text, tc.n)
		require.NoError(t, err)
		assert.Len(t, got, tc.blocks, "%q n=%d", tc.text, tc.n)
		assert.Equal(t, tc.pad, codec.Padding(len(tc.text), tc.n))
		for _, b := range got {
			assert.Len(t, b, tc.n)
		}
	}
}

func TestEncodeBlocks_Errors(t *testing.T) {
	c := mustCodec(t)

	_, err := c.EncodeBlocks("ABC", 0)
	assert.ErrorIs(t, err, codec.ErrInvalidBlockSize)
	_, err = c.EncodeBlocks("AbC", 2)
	assert.ErrorIs(t, err, codec.ErrUnknownSymbol)
}

func TestEncodeBlocks_BlocksDoNotAlias(t *testing.T) {
	c := mustCodec(t)
	blocks, err := c.EncodeBlocks("ABCD", 2)
	require.NoError(t, err)

	blocks[0] = append(blocks[0], 99) // must not overwrite block 1
	assert.Equal(t, matrix.Vector{2, 3}, blocks[1])
}

func TestDecodeBlocks_OutOfRange(t *testing.T) {
	c := mustCodec(t)
	_, err := c.DecodeBlocks([]matrix.Vector{{0, 26}})
	assert.ErrorIs(t, err, codec.ErrSymbolOutOfRange)
}
