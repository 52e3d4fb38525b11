package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum32_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"empty", nil, 0},
		{"single A", []byte{0x41}, 65},
		{"AB", []byte("AB"), 0x41<<4 + 0x42},
		{"abc", []byte("abc"), ((0x61<<4+0x62)<<4 + 0x63)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum32(tt.in))
			assert.Equal(t, tt.want, SumString(string(tt.in)))
		})
	}
}

func TestSum32_FoldsTopNibble(t *testing.T) {
	// Eight 0xFF bytes push bits into the top nibble; the fold must keep it clear.
	in := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	h := Sum32(in)
	assert.Zero(t, h&topNibble)

	// Reference computation spelled out.
	var ref uint32
	for _, b := range in {
		ref = (ref << 4) + uint32(b)
		if top := ref & 0xF0000000; top != 0 {
			ref ^= top >> 24
			ref ^= top
		}
	}
	assert.Equal(t, ref, h)
}

func TestSum32_Deterministic(t *testing.T) {
	key := []byte("expression_statement")
	assert.Equal(t, Sum32(key), Sum32(key))
}

func TestNew_StreamingMatchesOneShot(t *testing.T) {
	h := New()
	_, _ = h.Write([]byte("compound_"))
	_, _ = h.Write([]byte("statement"))
	assert.Equal(t, Sum32([]byte("compound_statement")), h.Sum32())

	sum := h.Sum(nil)
	assert.Len(t, sum, 4)

	h.Reset()
	assert.Zero(t, h.Sum32())
}
