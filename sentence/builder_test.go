package sentence

import "testing"

func TestSingleSentenceWithoutPeriod(t *testing.T) {
	sentences := ParseDescription("Unique identifier for the target chat")

	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if len(sentences[0]) != 6 {
		t.Errorf("expected 6 parts, got %d: %+v", len(sentences[0]), sentences[0])
	}
}

func TestPeriodSplitsSentences(t *testing.T) {
	sentences := ParseDescription("First clause. Second clause.")

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %+v", len(sentences), sentences)
	}
	if sentences[0][0].Inner != "First" || sentences[1][0].Inner != "Second" {
		t.Errorf("unexpected sentence split: %+v", sentences)
	}
}

func TestQuotedSpanCollapsesToOnePart(t *testing.T) {
	sentences := ParseDescription(`The value is always "quoted value" here.`)

	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	s := sentences[0]
	if len(s) != 6 {
		t.Fatalf("expected 6 parts, got %d: %+v", len(s), s)
	}
	q := s[4]
	if !q.HasQuotes {
		t.Errorf("expected collapsed part to have quotes: %+v", q)
	}
	if q.Inner != "quoted value" {
		t.Errorf("expected inner \"quoted value\", got %q", q.Inner)
	}
}

func TestPeriodInsideQuoteDoesNotSplit(t *testing.T) {
	sentences := ParseDescription(`Pass "e.g. something" to see it.`)

	if len(sentences) != 1 {
		t.Fatalf("mid-quote period must not split the sentence, got %d: %+v", len(sentences), sentences)
	}
}

func TestParenthesizedSpanElided(t *testing.T) {
	sentences := ParseDescription("hello (world) again")

	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	s := sentences[0]
	if len(s) != 2 || s[0].Inner != "hello" || s[1].Inner != "again" {
		t.Errorf("parenthesized text must not produce parts: %+v", s)
	}
}

func TestLinkPartCarriesHref(t *testing.T) {
	sentences := ParseDescription(`See the <a href="#chat">Chat</a> object.`)

	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	s := sentences[0]
	if len(s) != 4 {
		t.Fatalf("expected 4 parts, got %d: %+v", len(s), s)
	}
	link := s[2]
	if link.Kind != PartLink || link.Inner != "Chat" || link.Href != "#chat" {
		t.Errorf("unexpected link part: %+v", link)
	}
}

func TestEmptyAnchorDropped(t *testing.T) {
	sentences := ParseDescription(`before <a href="#x"></a> after`)

	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if len(sentences[0]) != 2 {
		t.Errorf("empty anchor must not produce a part: %+v", sentences[0])
	}
}

func TestInlineMarkupKinds(t *testing.T) {
	sentences := ParseDescription(`<em>italic</em> <strong>bold</strong> <b>alsobold</b> <code>code</code>`)

	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	s := sentences[0]
	kinds := []PartKind{PartItalic, PartBold, PartBold, PartCode}
	if len(s) != len(kinds) {
		t.Fatalf("expected %d parts, got %d: %+v", len(kinds), len(s), s)
	}
	for i, k := range kinds {
		if s[i].Kind != k {
			t.Errorf("part %d: expected kind %v, got %v", i, k, s[i].Kind)
		}
	}
}

func TestImageAltInsideQuoteIsQuoted(t *testing.T) {
	inQuote := ParseDescription(`Send "<img alt="🎲">" now`)
	if len(inQuote) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(inQuote))
	}
	var found bool
	for _, p := range inQuote[0] {
		if p.Inner == "🎲" && p.HasQuotes {
			found = true
		}
	}
	if !found {
		t.Errorf("emoji alt inside quote should be a quoted part: %+v", inQuote[0])
	}

	outside := ParseDescription(`Send <img alt="🎲"> now`)
	if len(outside) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(outside))
	}
	for _, p := range outside[0] {
		if p.Inner == "🎲" && p.HasQuotes {
			t.Errorf("emoji alt outside quote must not be quoted: %+v", p)
		}
	}
}

func TestListItemsBecomeSeparateSentences(t *testing.T) {
	sentences := ParseDescription(`Type can be <ul><li>first kind.</li><li>second kind</li></ul>`)

	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %+v", len(sentences), sentences)
	}
	if sentences[1][0].Inner != "first" || sentences[2][0].Inner != "second" {
		t.Errorf("list items must parse independently: %+v", sentences)
	}
}

func TestContainerElementsDoNotSplit(t *testing.T) {
	sentences := ParseDescription(`<p>one half</p><p>other half</p>`)

	if len(sentences) != 1 {
		t.Fatalf("paragraphs without periods must not split, got %d: %+v", len(sentences), sentences)
	}
	if len(sentences[0]) != 4 {
		t.Errorf("expected 4 parts, got %+v", sentences[0])
	}
}

func TestEmptySentencesNeverEmitted(t *testing.T) {
	sentences := ParseDescription("One thing.. Another.")

	for i, s := range sentences {
		if len(s) == 0 {
			t.Errorf("sentence %d is empty", i)
		}
	}
}
