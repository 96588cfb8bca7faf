package filter

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// patternCacheSize bounds the process-wide cache of compiled patterns.
// Queries repeat the same handful of patterns, so a small cache removes
// nearly all recompilation.
const patternCacheSize = 256

var patternCache, _ = lru.New[string, *regexp.Regexp](patternCacheSize)

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ErrBadPattern{Pattern: pattern, cause: err}
	}
	patternCache.Add(pattern, re)
	return re, nil
}

// globPattern compiles a glob into an equivalent anchored regular
// expression: `*` matches within a path segment, `**` across segments,
// `?` a single non-separator character. Character classes pass through.
func globPattern(glob string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")

	runes := []rune(glob)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				b.WriteString(".*")
				i++
			} else {
				b.WriteString("[^/]*")
			}
		case '?':
			b.WriteString("[^/]")
		case '[':
			j := i + 1
			if j < len(runes) && (runes[j] == '!' || runes[j] == '^') {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				// Unterminated class, treat the bracket literally.
				b.WriteString(regexp.QuoteMeta(string(r)))
				break
			}
			class := string(runes[i+1 : j])
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + class + "]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	b.WriteString("$")

	re, err := compilePattern(b.String())
	if err != nil {
		// Report the original glob, not the translated form.
		return nil, &ErrBadPattern{Pattern: glob, cause: err}
	}
	return re, nil
}
