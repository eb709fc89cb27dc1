package schema

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"tgschema/extract"
	"tgschema/sentence"
)

// DetectEnum finds an enumeration of allowed values in a field's
// description. Precedence: emoji image alt texts, then the sentence
// grammar's one-of extraction, then quoted substrings in the stripped
// text. Fewer than two candidates at a stage produce no enum there.
//
// Numeric fields never take the emoji branch: a dice field illustrated
// with a 🎲 image must not inherit the emoji as a value set. They also
// require every candidate to parse as a number.
func DetectEnum(descriptionHTML string, sentences []sentence.Sentence, numeric bool) []string {
	if !numeric {
		if alts := emojiAlts(descriptionHTML); len(alts) >= 2 {
			return alts
		}
	}
	if values := extract.OneOf(sentences); len(values) > 1 {
		if !numeric || allNumeric(values) {
			return values
		}
	}
	if quoted := quotedStrings(PlainText(descriptionHTML)); len(quoted) >= 2 {
		if !numeric || allNumeric(quoted) {
			return quoted
		}
	}
	return nil
}

func allNumeric(values []string) bool {
	for _, v := range values {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return true
}

func parseFragment(fragment string) []*html.Node {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil
	}
	return nodes
}

// emojiAlts collects the alt texts of emoji images in the fragment.
func emojiAlts(fragment string) []string {
	var alts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			var class, alt string
			for _, a := range n.Attr {
				switch a.Key {
				case "class":
					class = a.Val
				case "alt":
					alt = a.Val
				}
			}
			if strings.Contains(class, "emoji") && alt != "" {
				alts = append(alts, alt)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range parseFragment(fragment) {
		walk(n)
	}
	return alts
}

// PlainText flattens a fragment to its text content, crossing tag
// boundaries so phrase checks are not broken by inline markup.
func PlainText(fragment string) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range parseFragment(fragment) {
		walk(n)
	}
	return sb.String()
}

var quotedRE = regexp.MustCompile(`"([^"]+)"|\x{201c}([^\x{201d}]+)\x{201d}`)

// quotedStrings returns the quoted substrings of the text, verbatim and
// deduplicated in first-seen order.
func quotedStrings(text string) []string {
	var values []string
	seen := make(map[string]bool)
	for _, m := range quotedRE.FindAllStringSubmatch(text, -1) {
		v := m[1]
		if v == "" {
			v = m[2]
		}
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
