/*
Package xor provides the single-byte XOR screen applied to CLOAK64 payloads.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
With a one byte key there are only 256 possible keys, and a key of 0 leaves data unchanged.

# How it works:

Every byte that passes through Screen, Reader, or Writer is combined with the key using a bitwise XOR.
Applying the same key a second time restores the original bytes, so the same functions are used to both screen and unscreen data.
*/
package xor
