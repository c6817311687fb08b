package cloak

import (
	"bytes"
	"fmt"
	"math"

	"github.com/saylorsolutions/cloak64/pkg/checksum"
	"github.com/saylorsolutions/cloak64/pkg/xor"
)

// NewHeader builds the header describing payload.
func NewHeader(sig uint32, payload []byte) Header {
	return Header{
		Signature:   sig,
		ContentSize: uint32(len(payload)),
		HeaderSize:  HeaderSize,
		Checksum:    checksum.Checksum(payload),
	}
}

// Craft wraps payload in a container identified by sig, screening the payload with key.
// The returned slice is always HeaderSize+len(payload) bytes, and the header doesn't depend on key.
func Craft(payload []byte, sig uint32, key byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyInput
	}
	if err := checkContentSize(uint64(len(payload))); err != nil {
		return nil, err
	}

	h := NewHeader(sig, payload)
	header, err := h.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(payload)))
	buf.Write(header)
	if _, err := xor.NewWriter(buf, key).Write(payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// checkContentSize returns ErrTooLarge if size can't be stored in the header's content size field.
func checkContentSize(size uint64) error {
	if size > math.MaxUint32 {
		return fmt.Errorf("%w: payload of %d bytes doesn't fit in a 32-bit content size", ErrTooLarge, size)
	}
	return nil
}

// Uncraft recovers the original payload from container.
// Checks are made in order: the container must not be empty, it must be larger than HeaderSize, and its signature must match sig.
// The stored content size and checksum are not verified.
func Uncraft(container []byte, sig uint32, key byte) ([]byte, error) {
	if len(container) == 0 {
		return nil, ErrReadFailure
	}
	if len(container) <= HeaderSize {
		return nil, fmt.Errorf("%w: container is %d bytes, must be more than %#x", ErrTooSmall, len(container), HeaderSize)
	}
	h, err := ParseHeader(container)
	if err != nil {
		return nil, err
	}
	if h.Signature != sig {
		return nil, fmt.Errorf("%w: expected %#08x, found %#08x", ErrSignatureMismatch, sig, h.Signature)
	}
	return xor.Screen(container[HeaderSize:], key), nil
}
