package cctype

// ASCII fast path: case mapping for the 52 ASCII letters only, with
// every other byte a fixed point. These never read the current table,
// so their results cannot change under SetTable.

// ASCIIToUpper maps 'a'-'z' to 'A'-'Z' and returns every other byte
// unchanged.
func ASCIIToUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// ASCIIToLower maps 'A'-'Z' to 'a'-'z' and returns every other byte
// unchanged.
func ASCIIToLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ASCIIToUpperString returns s with ASCII letters upper-cased. When s
// contains no lower-case ASCII letter it is returned as is, without
// allocating.
func ASCIIToUpperString(s string) string {
	i := 0
	for i < len(s) && !(s[i] >= 'a' && s[i] <= 'z') {
		i++
	}
	if i == len(s) {
		return s // Fast path: nothing to change
	}
	out := make([]byte, len(s))
	copy(out, s[:i])
	for ; i < len(s); i++ {
		out[i] = ASCIIToUpper(s[i])
	}
	return bytesToString(out)
}

// ASCIIToLowerString returns s with ASCII letters lower-cased. When s
// contains no upper-case ASCII letter it is returned as is, without
// allocating.
func ASCIIToLowerString(s string) string {
	i := 0
	for i < len(s) && !(s[i] >= 'A' && s[i] <= 'Z') {
		i++
	}
	if i == len(s) {
		return s // Fast path: nothing to change
	}
	out := make([]byte, len(s))
	copy(out, s[:i])
	for ; i < len(s); i++ {
		out[i] = ASCIIToLower(s[i])
	}
	return bytesToString(out)
}
