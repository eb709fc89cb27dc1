package sentence

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type quoteState int

const (
	quoteNone quoteState = iota
	quoteLeft
)

// builder accumulates Parts for the sentence under construction while
// walking a description fragment.
type builder struct {
	parts      []Part
	sentences  []Sentence
	quote      quoteState
	quoteStart int
	inParens   bool
}

// ParseDescription parses an HTML description fragment into Sentences.
// Malformed markup degrades to whatever the HTML parser recovers; the
// result is never an error, only fewer Sentences.
func ParseDescription(fragment string) []Sentence {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil
	}
	b := &builder{}
	for _, n := range nodes {
		b.walk(n)
	}
	b.finish()
	return b.sentences
}

func (b *builder) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.text(n.Data)
	case html.ElementNode:
		b.element(n)
	default:
		b.children(n)
	}
}

func (b *builder) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}
}

func (b *builder) element(n *html.Node) {
	switch n.Data {
	case "a":
		// Anchors without text would render as empty links downstream.
		if text := innerText(n); text != "" {
			b.append(Part{Inner: text, Kind: PartLink, Href: attr(n, "href")})
		}
	case "em":
		if text := innerText(n); text != "" {
			b.append(Part{Inner: text, Kind: PartItalic})
		}
	case "strong", "b":
		if text := innerText(n); text != "" {
			b.append(Part{Inner: text, Kind: PartBold})
		}
	case "code":
		if text := innerText(n); text != "" {
			b.append(Part{Inner: text, Kind: PartCode})
		}
	case "img":
		// An emoji image inside an open quote stands for a quoted value.
		if alt := attr(n, "alt"); alt != "" {
			b.append(Part{Inner: alt, HasQuotes: b.quote == quoteLeft, Kind: PartWord})
		}
	case "li":
		// Each list item is an independent sub-document, so bullet
		// lists reuse the full sentence grammar per item.
		b.finish()
		sub := &builder{}
		sub.children(n)
		sub.finish()
		b.sentences = append(b.sentences, sub.sentences...)
	case "br":
	default:
		b.children(n)
	}
}

func (b *builder) text(data string) {
	for _, tok := range Tokenize(data) {
		if b.inParens {
			if tok.Kind == TokenRParen {
				b.inParens = false
			}
			continue
		}
		switch tok.Kind {
		case TokenWord:
			b.append(Part{Inner: tok.Text, Kind: PartWord})
		case TokenDot:
			// Periods inside an open quote (abbreviations, version
			// numbers) do not end the sentence.
			if b.quote != quoteLeft {
				b.finish()
			}
		case TokenQuote:
			b.toggleQuote()
		case TokenLParen:
			b.inParens = true
		case TokenRParen:
			// Unbalanced close, nothing to do.
		}
	}
}

func (b *builder) toggleQuote() {
	if b.quote == quoteNone {
		b.quote = quoteLeft
		b.quoteStart = len(b.parts)
		return
	}
	// Closing quote: splice the quoted span out and replace it with one
	// combined Part.
	span := b.parts[b.quoteStart:]
	texts := make([]string, 0, len(span))
	for _, p := range span {
		texts = append(texts, p.Inner)
	}
	b.parts = append(b.parts[:b.quoteStart], Part{
		Inner:     strings.Join(texts, " "),
		HasQuotes: true,
		Kind:      PartWord,
	})
	b.quote = quoteNone
}

func (b *builder) append(p Part) {
	if b.inParens {
		return
	}
	b.parts = append(b.parts, p)
}

func (b *builder) finish() {
	if len(b.parts) == 0 {
		return
	}
	b.sentences = append(b.sentences, Sentence(b.parts))
	b.parts = nil
	b.quote = quoteNone
	b.quoteStart = 0
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func innerText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			walk(gc)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
