package bindings

import "bytes"

// bufToString converts a NUL-terminated C string held in a Go byte slice.
func bufToString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// bufferSaturated reports whether a NUL-terminated buffer was (possibly)
// truncated: no terminator, or the terminator sits in the final byte.
func bufferSaturated(buf []byte) bool {
	for i, b := range buf {
		if b == 0 {
			return i+1 >= len(buf)
		}
	}
	return true
}
