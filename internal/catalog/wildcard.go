package catalog

import (
	"regexp"
	"strings"
)

// Pattern is a compiled shell-style wildcard matched against whole paths.
// '*' matches any run of characters (including '/'), '?' one character and
// '[...]' a character class.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// SearchPattern wraps free search text into the "*text*" wildcard used by the search box
func SearchPattern(text string) string {
	return "*" + text + "*"
}

// CompileWildcard compiles pattern. Unterminated or invalid classes (such as
// "[z-a]") are taken literally.
func CompileWildcard(pattern string, caseSensitive bool) *Pattern {
	re, err := regexp.Compile(wildcardRegexp(pattern, caseSensitive, true))
	if err != nil {
		re = regexp.MustCompile(wildcardRegexp(pattern, caseSensitive, false))
	}
	return &Pattern{source: pattern, re: re}
}

func wildcardRegexp(pattern string, caseSensitive, classes bool) string {
	var b strings.Builder
	if !caseSensitive {
		b.WriteString("(?i)")
	}
	b.WriteString("^")

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			b.WriteString("(?s:.*)")
		case '?':
			b.WriteString("(?s:.)")
		case '[':
			class, next, ok := wildcardClass(runes, i)
			if !ok || !classes {
				b.WriteString(regexp.QuoteMeta(string(r)))
				continue
			}
			b.WriteString(class)
			i = next
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return b.String()
}

// wildcardClass converts a "[...]" class starting at runes[start] into regexp
// syntax and returns the index of the closing bracket.
func wildcardClass(runes []rune, start int) (string, int, bool) {
	i := start + 1
	var b strings.Builder
	b.WriteString("[")

	if i < len(runes) && (runes[i] == '!' || runes[i] == '^') {
		b.WriteString("^")
		i++
	}
	// a leading ']' is a literal member
	if i < len(runes) && runes[i] == ']' {
		b.WriteString(`\]`)
		i++
	}

	for ; i < len(runes); i++ {
		switch r := runes[i]; r {
		case ']':
			b.WriteString("]")
			return b.String(), i, true
		case '\\', '[', '^':
			b.WriteString(`\` + string(r))
		default:
			b.WriteRune(r)
		}
	}
	return "", start, false
}

// String returns the wildcard source
func (p *Pattern) String() string {
	return p.source
}

// Match reports whether the whole path matches
func (p *Pattern) Match(s string) bool {
	return p.re.MatchString(s)
}
