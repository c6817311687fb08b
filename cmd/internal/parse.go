package internal

import (
	"fmt"
	"strconv"

	"github.com/saylorsolutions/cloak64/pkg/cloak"
)

// ParseSignature parses a signature argument, defaulting to cloak.DefaultSignature when arg is empty.
// The prefixes 0x, 0o, and 0b select the base, as does a leading 0 for octal. Otherwise arg is decimal.
func ParseSignature(arg string) (uint32, error) {
	if arg == "" {
		return cloak.DefaultSignature, nil
	}
	val, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid signature '%s', must be an unsigned 32-bit integer: %w", arg, err)
	}
	return uint32(val), nil
}

// ParseKey parses a key argument the same way as ParseSignature, defaulting to cloak.DefaultKey.
func ParseKey(arg string) (byte, error) {
	if arg == "" {
		return cloak.DefaultKey, nil
	}
	val, err := strconv.ParseUint(arg, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid key '%s', must be a value from 0 to 0xFF: %w", arg, err)
	}
	return byte(val), nil
}
