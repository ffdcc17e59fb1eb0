// internal/app/system/normalize/normalize.go

// Package normalize canonicalizes user-supplied identifier strings before
// they are stored or compared. Stores call these so the same value always
// lands in the database in exactly one spelling.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RegNo uppercases and trims a registration number so whitelist checks are
// exact-match: " 2021/ict/01 " and "2021/ICT/01" normalize identically.
func RegNo(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
