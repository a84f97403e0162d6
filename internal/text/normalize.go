// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package text provides the low-level string helpers shared by every
// extractor: whitespace normalization, rune-aware length and truncation,
// boilerplate and table-row classification, and title/body segmentation.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize converts s to NFC, turns non-breaking spaces, tabs and line
// breaks into plain spaces, collapses whitespace runs and trims the ends.
// Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// Len returns the number of characters (runes) in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate returns the first n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Tail returns s without its first n characters.
func Tail(s string, n int) string {
	return s[len(Truncate(s, n)):]
}

// ContainsAny reports whether s contains any of subs.
func ContainsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// CountContained returns how many of subs occur in s.
func CountContained(s string, subs []string) int {
	n := 0
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			n++
		}
	}
	return n
}
