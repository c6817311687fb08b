package internal

import (
	"testing"

	"github.com/saylorsolutions/cloak64/pkg/cloak"
	"github.com/stretchr/testify/assert"
)

func TestParseSignature(t *testing.T) {
	tests := map[string]uint32{
		"":           cloak.DefaultSignature,
		"0x4D524C41": 0x4D524C41,
		"0X11223344": 0x11223344,
		"1297239105": 0x4D524C41,
		"1296255041": 0x4D434841,
		"010":        8,
		"0b101":      5,
		"0xFFFFFFFF": 0xFFFFFFFF,
		"0":          0,
	}
	for arg, expected := range tests {
		got, err := ParseSignature(arg)
		assert.NoError(t, err, arg)
		assert.Equal(t, expected, got, arg)
	}
}

func TestParseSignature_Neg(t *testing.T) {
	for _, arg := range []string{"0x100000000", "-1", "ALRM", "0xZZ", " 1"} {
		_, err := ParseSignature(arg)
		assert.Error(t, err, arg)
	}
}

func TestParseKey(t *testing.T) {
	tests := map[string]byte{
		"":     cloak.DefaultKey,
		"0xB3": 0xB3,
		"179":  0xB3,
		"0xff": 0xFF,
		"0":    0,
		"0o17": 0o17,
	}
	for arg, expected := range tests {
		got, err := ParseKey(arg)
		assert.NoError(t, err, arg)
		assert.Equal(t, expected, got, arg)
	}
}

func TestParseKey_Neg(t *testing.T) {
	for _, arg := range []string{"0x100", "256", "-1", "key"} {
		_, err := ParseKey(arg)
		assert.Error(t, err, arg)
	}
}
