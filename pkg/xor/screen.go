package xor

// Screen returns a new slice where each byte of data has been XOR'd with key.
// The input slice is never modified.
func Screen(data []byte, key byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key
	}
	return out
}

// screenInPlace applies the key to a buffer the caller exclusively owns.
func screenInPlace(buf []byte, key byte) {
	for i := range buf {
		buf[i] ^= key
	}
}
