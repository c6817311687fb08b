// Package checksum computes the CRC-32 used to label CLOAK64 payloads.
//
// The algorithm is the reflected CRC-32 with polynomial 0xEDB88320 (IEEE 802.3, CRC-32/ISO-HDLC),
// an initial register of 0xFFFFFFFF and a final XOR of 0xFFFFFFFF.
// The 256-entry lookup table is derived from the polynomial once, when the package is initialized, and is never modified afterward.
package checksum

import "hash/crc32"

// Polynomial is the reversed representation of the IEEE 802.3 CRC-32 polynomial.
const Polynomial uint32 = 0xEDB88320

var table = crc32.MakeTable(Polynomial)

// Checksum returns the CRC-32 of data. The checksum of an empty slice is 0.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, table)
}
