package cindex

import "strings"

// normalizeSpelling maps libclang's anonymous-aggregate spellings to
// the empty name the Node contract promises. Newer libclang versions
// spell anonymous aggregates as "struct (unnamed at file.h:3:1)" or
// "(anonymous struct at file.h:3:1)" instead of an empty string. The
// parenthesized marker can never occur in a C identifier, so matching
// on it leaves declarations like "unnamed_t" untouched.
func normalizeSpelling(s string) string {
	if strings.Contains(s, "(unnamed") || strings.Contains(s, "(anonymous") {
		return ""
	}

	return s
}
