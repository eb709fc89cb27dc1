package sentence

import "unicode"

func isQuoteRune(r rune) bool {
	return r == '"' || r == '“' || r == '”'
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func isBoundary(r rune) bool {
	return r == '.' || r == '(' || r == ')' || isQuoteRune(r) || isSeparator(r)
}

// Tokenize splits plain text into a flat token stream. Periods, quote
// characters (ASCII and curly, one token per character) and parentheses
// become their own tokens; everything between separators and those
// symbols becomes a word. An empty or all-separator input yields nil.
func Tokenize(text string) []Token {
	runes := []rune(text)
	var tokens []Token
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '.':
			tokens = append(tokens, Token{Kind: TokenDot, Text: "."})
			i++
		case isQuoteRune(r):
			tokens = append(tokens, Token{Kind: TokenQuote, Text: string(r)})
			i++
		case r == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Text: "("})
			i++
		case r == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Text: ")"})
			i++
		case isSeparator(r):
			i++
		default:
			start := i
			for i < len(runes) && !isBoundary(runes[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenWord, Text: string(runes[start:i])})
		}
	}
	return tokens
}
