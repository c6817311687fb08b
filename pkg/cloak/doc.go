/*
Package cloak implements the CLOAK64 container format.

A container is a fixed 512 byte header followed by the XOR screened payload.
The header stores a caller chosen signature, the payload length, the header length, and the CRC-32 of the original payload, all as little-endian uint32 values.
The rest of the header is zero padding.

# How it works:

Craft measures and checksums the payload, writes the header, and screens the payload with the key using package xor.
Uncraft checks the container length and signature, then screens the payload again with the same key to recover the original bytes.

# Important note:

Uncraft only validates the signature.
The stored content size and checksum are informational, so a truncated or tampered container with a correct signature still decodes (to the wrong bytes).
Use Inspect to compare the stored fields against the actual payload.

A zero byte payload can't be represented: Craft rejects empty input, and Uncraft rejects containers that are 512 bytes or smaller.
*/
package cloak
