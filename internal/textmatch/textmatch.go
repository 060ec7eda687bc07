// Package textmatch holds the keyword matching primitives shared by the
// insights engine. Every lookup against the knowledge base is a
// case-insensitive substring test on a canonical lowercase string.
package textmatch

import "strings"

// Searchable joins the given fields with single spaces and lowercases the
// result. Empty fields still contribute their separator so field positions
// stay fixed for a given caller.
func Searchable(fields ...string) string {
	return strings.ToLower(strings.Join(fields, " "))
}

// Contains reports whether needle occurs in target, ignoring case.
func Contains(target, needle string) bool {
	return strings.Contains(strings.ToLower(target), strings.ToLower(needle))
}

// ContainsAny reports whether any needle occurs in target, ignoring case.
func ContainsAny(target string, needles ...string) bool {
	lower := strings.ToLower(target)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// SplitList parses a comma-delimited field into its trimmed, non-empty parts,
// keeping the original order. Malformed or empty input yields an empty slice.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse of SplitList: it trims, drops empties and
// duplicate entries (case-insensitively, first occurrence wins) and joins
// with ",".
func JoinList(items []string) string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		key := strings.ToLower(it)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return strings.Join(out, ",")
}

// Patterns splits a "a|b|c" keyword pattern into its parts.
func Patterns(pattern string) []string {
	return strings.Split(pattern, "|")
}
