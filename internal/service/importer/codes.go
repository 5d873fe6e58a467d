package importer

import (
	"regexp"
	"strings"
)

// Airport and airline cells embed a parenthesized code pair, e.g.
// "Frankfurt am Main / Frankfurt (FRA/EDDF)".
var codePattern = regexp.MustCompile(`\(([A-Za-z]+)/`)

// ExtractCode returns the uppercased operational code preceding the slash
// inside the first parenthesized group, or false when the text carries no
// such pair. Callers must treat a missing code as unknown; the free text is
// never truncated to fabricate one.
func ExtractCode(text string) (string, bool) {
	m := codePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}
