package extract

import (
	"regexp"
	"strconv"
	"strings"

	"tgschema/sentence"
)

// Default returns the default value named by the description, if any.
func Default(sentences []sentence.Sentence) (string, bool) {
	tail, ok := Match(defaultSet, sentences)
	if !ok || len(tail) == 0 {
		return "", false
	}
	return tail[0].Inner, true
}

// Range holds a pair of raw numeric bounds as they appear in prose.
type Range struct {
	Min string
	Max string
}

// MinMax returns the numeric range named by the description, if any.
// The captured Part must read "<min>-<max>" with both halves present.
func MinMax(sentences []sentence.Sentence) (Range, bool) {
	tail, ok := Match(minMaxSet, sentences)
	if !ok || len(tail) == 0 {
		return Range{}, false
	}
	halves := strings.SplitN(tail[0].Inner, "-", 2)
	if len(halves) != 2 || halves[0] == "" || halves[1] == "" {
		return Range{}, false
	}
	return Range{Min: halves[0], Max: halves[1]}, true
}

var (
	decimalRE = regexp.MustCompile(`^\d+$`)
	productRE = regexp.MustCompile(`^(\d+)\s*\*\s*(\d+)$`)
)

// valueLike reports whether a Part can stand for an enumeration value.
func valueLike(p sentence.Part) bool {
	return p.HasQuotes ||
		p.Kind == sentence.PartItalic ||
		p.Kind == sentence.PartCode ||
		decimalRE.MatchString(p.Inner)
}

// valueText resolves a value-like Part to its literal text. Code spans
// holding a simple integer product are evaluated ("6 * 3600" → "21600").
func valueText(p sentence.Part) string {
	if p.Kind == sentence.PartCode {
		if m := productRE.FindStringSubmatch(p.Inner); m != nil {
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			return strconv.Itoa(a * b)
		}
	}
	return p.Inner
}

func gatherValues(parts []sentence.Part) []string {
	var values []string
	seen := make(map[string]bool)
	for _, p := range parts {
		if !valueLike(p) {
			continue
		}
		v := valueText(p)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// OneOf gathers the enumeration values listed in the description. It
// scans sentences itself instead of delegating to Match because it
// needs every value-like Part in the capture region, not only the
// first. When the whole sentence holds more values than the capture
// slice it wins, which handles phrasings where the trigger words come
// after the first listed value ('pass "a", "b", or "c"').
func OneOf(sentences []sentence.Sentence) []string {
	for _, s := range sentences {
		for _, p := range oneOfSet {
			end, ok := p.findIn(s)
			if !ok {
				continue
			}
			values := gatherValues(p.capture(s, end))
			if whole := gatherValues(s); len(whole) > len(values) {
				values = whole
			}
			if len(values) > 0 {
				return values
			}
		}
	}
	return nil
}

// ReturnClause captures the clause naming a method's return type.
func ReturnClause(sentences []sentence.Sentence) (sentence.Sentence, bool) {
	return Match(returnTypeSet, sentences)
}
