// Package extract locates semantic clauses inside parsed Sentences and
// turns them into primitive constraint values and type trees.
package extract

import "tgschema/sentence"

// SearchBy is a predicate over a single Part.
type SearchBy func(sentence.Part) bool

// ByWord matches a Part whose text is exactly w.
func ByWord(w string) SearchBy {
	return func(p sentence.Part) bool { return p.Inner == w }
}

// ByKind matches a Part by its markup provenance.
func ByKind(k sentence.PartKind) SearchBy {
	return func(p sentence.Part) bool { return p.Kind == k }
}

// ByQuoted matches a Part built from a quoted span.
func ByQuoted() SearchBy {
	return func(p sentence.Part) bool { return p.HasQuotes }
}

// Pattern locates a clause inside a Sentence. Offset is added to the
// index one past the matched window to find where the capture starts;
// it may be negative, reaching back into the window. Exclude aborts the
// whole containing sentence for the extraction.
type Pattern struct {
	Parts   []SearchBy
	Offset  int
	Exclude bool
}

// findIn returns the index one past the leftmost matching window.
func (p Pattern) findIn(s sentence.Sentence) (int, bool) {
	n := len(p.Parts)
	for start := 0; start+n <= len(s); start++ {
		matched := true
		for j, pred := range p.Parts {
			if !pred(s[start+j]) {
				matched = false
				break
			}
		}
		if matched {
			return start + n, true
		}
	}
	return 0, false
}

// capture clamps the capture start into the sentence and returns the
// tail from there.
func (p Pattern) capture(s sentence.Sentence, end int) sentence.Sentence {
	start := end + p.Offset
	if start < 0 {
		start = 0
	}
	return s[start:]
}

// Match runs an ordered pattern set over the sentences. Sentences are
// tried in order; within a sentence, patterns in order at the leftmost
// window. An Exclude match skips the rest of the sentence; the first
// non-excluded match is returned immediately. Pattern order is part of
// the contract: exclusions must precede the catch-alls they guard.
func Match(set []Pattern, sentences []sentence.Sentence) (sentence.Sentence, bool) {
	for _, s := range sentences {
		for _, p := range set {
			end, ok := p.findIn(s)
			if !ok {
				continue
			}
			if p.Exclude {
				break
			}
			return p.capture(s, end), true
		}
	}
	return nil, false
}
