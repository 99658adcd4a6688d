// Package cctype classifies and case-converts single bytes and byte
// sequences with every input defined: all 256 byte values have a result
// for every predicate and transform, so there is no undefined-domain
// hazard to guard against at call sites.
//
// The package-level functions consult a process-wide classification
// table (POSIX by default, swappable with SetTable), mirroring a C
// locale that other code may change at any time. Callers that need
// behavior independent of that ambient state should use the ASCII fast
// path (ASCIIToUpper, ASCIIToLower) or hold their own *Table.
package cctype

// ToUpper maps c to upper case using the current table.
func ToUpper(c byte) byte { return current.Load().ToUpper(c) }

// ToLower maps c to lower case using the current table.
func ToLower(c byte) byte { return current.Load().ToLower(c) }

// IsAlpha reports whether c is a letter under the current table.
func IsAlpha(c byte) bool { return current.Load().IsAlpha(c) }

// IsDigit reports whether c is a decimal digit under the current table.
func IsDigit(c byte) bool { return current.Load().IsDigit(c) }

// IsAlnum reports whether c is a letter or digit under the current table.
func IsAlnum(c byte) bool { return current.Load().IsAlnum(c) }

// IsSpace reports whether c is whitespace under the current table.
func IsSpace(c byte) bool { return current.Load().IsSpace(c) }

// IsCntrl reports whether c is a control byte under the current table.
func IsCntrl(c byte) bool { return current.Load().IsCntrl(c) }

// IsPunct reports whether c is punctuation or a symbol under the current table.
func IsPunct(c byte) bool { return current.Load().IsPunct(c) }

// IsPrint reports whether c is printable under the current table.
func IsPrint(c byte) bool { return current.Load().IsPrint(c) }

// IsGraph reports whether c is graphical under the current table.
func IsGraph(c byte) bool { return current.Load().IsGraph(c) }

// IsXDigit reports whether c is a hexadecimal digit under the current table.
func IsXDigit(c byte) bool { return current.Load().IsXDigit(c) }
