package cctype

import "unsafe"

// bytesToString converts []byte to string without allocation.
// SAFE to use here because every caller hands over a freshly built
// buffer that is never written to again.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}
