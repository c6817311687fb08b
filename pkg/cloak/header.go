package cloak

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
)

const (
	// HeaderSize is the length of every CLOAK64 header, and the offset of the payload.
	HeaderSize = 0x200
	// DefaultSignature is "ALRM" when written little-endian.
	DefaultSignature uint32 = 0x4D524C41
	DefaultKey       byte   = 0xB3

	fieldsLen  = 4 * 4
	paddingLen = HeaderSize - fieldsLen
)

var endian = binary.LittleEndian

// Header is the fixed-size metadata block at the start of a container.
type Header struct {
	Signature   uint32
	ContentSize uint32
	HeaderSize  uint32
	Checksum    uint32
}

func (h *Header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.Signature),
		bin.Int(&h.ContentSize),
		bin.Int(&h.HeaderSize),
		bin.Int(&h.Checksum),
		padding(paddingLen),
	)
}

// MarshalBinary encodes the header into exactly HeaderSize bytes.
func (h *Header) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize)
	if err := h.mapper().Write(&buf, endian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a header from the first HeaderSize bytes of data.
// Any bytes after the header are ignored.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes for a header, got %d", ErrTooSmall, HeaderSize, len(data))
	}
	return h.mapper().Read(bytes.NewReader(data[:HeaderSize]), endian)
}

func (h Header) String() string {
	return fmt.Sprintf(
		"signature=%#08x content_size=%d header_size=%#x checksum=%#08x",
		h.Signature, h.ContentSize, h.HeaderSize, h.Checksum,
	)
}

// ParseHeader reads the header at the start of a container without validating any of its fields.
func ParseHeader(container []byte) (Header, error) {
	var h Header
	if len(container) == 0 {
		return h, ErrReadFailure
	}
	if err := h.UnmarshalBinary(container); err != nil {
		return h, err
	}
	return h, nil
}

var _ bin.Mapper = padding(0)

// padding maps a run of reserved bytes.
// Zeros are written, and whatever is read is discarded.
type padding int

func (p padding) Read(r io.Reader, _ binary.ByteOrder) error {
	_, err := io.CopyN(io.Discard, r, int64(p))
	return err
}

func (p padding) Write(w io.Writer, _ binary.ByteOrder) error {
	_, err := w.Write(make([]byte, p))
	return err
}
