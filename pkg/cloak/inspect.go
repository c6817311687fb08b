package cloak

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/saylorsolutions/cloak64/pkg/checksum"
	"github.com/saylorsolutions/cloak64/pkg/xor"
)

// Report compares the fields stored in a container's header against the container itself.
type Report struct {
	Header           Header
	ExpectedSig      uint32
	PayloadSize      int
	ComputedChecksum uint32
}

// SignatureMatches reports whether the stored signature is the one the container was inspected with.
func (r Report) SignatureMatches() bool {
	return r.Header.Signature == r.ExpectedSig
}

// SizeMatches reports whether the stored content size is the length of the payload that follows the header.
func (r Report) SizeMatches() bool {
	return uint64(r.Header.ContentSize) == uint64(r.PayloadSize)
}

// HeaderSizeMatches reports whether the stored header size is HeaderSize.
func (r Report) HeaderSizeMatches() bool {
	return r.Header.HeaderSize == HeaderSize
}

// ChecksumMatches is only meaningful when the container was inspected with the key it was crafted with.
func (r Report) ChecksumMatches() bool {
	return r.Header.Checksum == r.ComputedChecksum
}

// Valid reports whether every stored field agrees with the container.
func (r Report) Valid() bool {
	return r.SignatureMatches() && r.SizeMatches() && r.HeaderSizeMatches() && r.ChecksumMatches()
}

// Err returns an ErrCorrupt error naming each mismatched field, or nil if the report is Valid.
func (r Report) Err() error {
	if r.Valid() {
		return nil
	}
	var fields []string
	if !r.SignatureMatches() {
		fields = append(fields, "signature")
	}
	if !r.SizeMatches() {
		fields = append(fields, "content_size")
	}
	if !r.HeaderSizeMatches() {
		fields = append(fields, "header_size")
	}
	if !r.ChecksumMatches() {
		fields = append(fields, "checksum")
	}
	return fmt.Errorf("%w: mismatched %s", ErrCorrupt, strings.Join(fields, ", "))
}

func (r Report) String() string {
	var sb strings.Builder
	line := func(name string, stored, actual any, ok bool) {
		status := "ok"
		if !ok {
			status = "MISMATCH"
		}
		_, _ = fmt.Fprintf(&sb, "%-13s %-12v %-12v %s\n", name, stored, actual, status)
	}
	_, _ = fmt.Fprintf(&sb, "%-13s %-12s %-12s\n", "FIELD", "STORED", "ACTUAL")
	line("signature", fmt.Sprintf("%#08x", r.Header.Signature), fmt.Sprintf("%#08x", r.ExpectedSig), r.SignatureMatches())
	line("content_size", r.Header.ContentSize, r.PayloadSize, r.SizeMatches())
	line("header_size", fmt.Sprintf("%#x", r.Header.HeaderSize), fmt.Sprintf("%#x", HeaderSize), r.HeaderSizeMatches())
	line("checksum", fmt.Sprintf("%#08x", r.Header.Checksum), fmt.Sprintf("%#08x", r.ComputedChecksum), r.ChecksumMatches())
	return sb.String()
}

// Inspect parses the header of container and checks it against the payload, which is unscreened with key to compute its checksum.
// Unlike Uncraft, a signature mismatch is reported rather than returned as an error.
func Inspect(container []byte, sig uint32, key byte) (Report, error) {
	h, err := ParseHeader(container)
	if err != nil {
		return Report{}, err
	}
	payload, err := io.ReadAll(xor.NewReader(bytes.NewReader(container[HeaderSize:]), key))
	if err != nil {
		return Report{}, err
	}
	return Report{
		Header:           h,
		ExpectedSig:      sig,
		PayloadSize:      len(payload),
		ComputedChecksum: checksum.Checksum(payload),
	}, nil
}
