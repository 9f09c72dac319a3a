// Package store provides the sqlite-backed registry lookup cache and the
// batch run log. The categorization core never sees either; the cache wraps
// the registry client behind the same interface.
package store

import (
	"regexp"
	"strings"
)

// legalSuffixes lists Norwegian legal entity suffixes stripped during cache
// key normalization.
var legalSuffixes = []string{
	" AS", " A/S", " ASA",
	" ENK", " ENKELTPERSONFORETAK",
	" DA", " ANS",
	" BA", " SA",
	" NUF", " FIL",
	" KS", " IKS",
	" AL", " A/L",
}

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// NormalizeName standardizes a company name for cache lookup by:
//  1. Trimming whitespace
//  2. Converting to uppercase
//  3. Removing a trailing legal suffix (AS, ASA, ENK, NUF, ...)
//  4. Stripping punctuation (commas, periods, quotes, dashes, ampersands)
//  5. Collapsing multiple spaces into single spaces
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	name = strings.ToUpper(name)

	for _, suffix := range legalSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}

	name = strings.NewReplacer(
		",", "",
		".", "",
		"'", "",
		"\"", "",
		"&", "OG",
		"-", " ",
	).Replace(name)

	name = multiSpaceRe.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)

	return name
}
