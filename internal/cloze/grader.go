package cloze

import "unicode/utf8"

// EmptyAnswer marks a blank that stands for an elided sentence element.
const EmptyAnswer = "-"

// trailingPunctuation holds the marks tolerated at the end of either answer.
var trailingPunctuation = map[rune]bool{
	'\'': true,
	'.':  true,
	',':  true,
	'?':  true,
	'!':  true,
	';':  true,
	'、':  true,
	'。':  true,
	'？':  true,
	'！':  true,
	' ':  true,
}

// IsCorrect reports whether given is an acceptable answer for expected.
//
// Strings are compared as typed. A single trailing punctuation mark or space is
// ignored on each side independently, and an empty blank ("-") accepts an
// empty answer or a single space.
func IsCorrect(expected, given string) bool {
	if given == expected {
		return true
	}
	if stripTrailingPunctuation(expected) == stripTrailingPunctuation(given) {
		return true
	}
	if expected == EmptyAnswer && (given == "" || given == " ") {
		return true
	}
	return false
}

func stripTrailingPunctuation(s string) string {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || !trailingPunctuation[r] {
		return s
	}
	return s[:len(s)-size]
}
