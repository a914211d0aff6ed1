package parser

import (
	"regexp"
	"strings"
)

const minLineLen = 5

var decorativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[-_=]+$`),
	regexp.MustCompile(`(?i)^Page\s+\d+\s*[-=]*$`),
	regexp.MustCompile(`(?i)^continued$`),
	regexp.MustCompile(`(?i)^end$`),
	regexp.MustCompile(`^[^a-zA-Z0-9]+$`),
}

// skipWordPattern is a single alternation over all skip keywords,
// word-bounded on both sides. Substring matching would drop real
// transaction lines ("CREDCLUB" contains "cr"), so boundaries are
// mandatory here.
var skipWordPattern = func() *regexp.Regexp {
	quoted := make([]string, len(skipKeywords))
	for i, kw := range skipKeywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}()

// IsSkipLine reports whether a line is statement noise rather than a
// candidate transaction: empty, too short, decorative, or containing a
// boilerplate keyword as a whole word.
func IsSkipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) < minLineLen {
		return true
	}

	for _, pat := range decorativePatterns {
		if pat.MatchString(trimmed) {
			return true
		}
	}

	return skipWordPattern.MatchString(strings.ToLower(trimmed))
}
