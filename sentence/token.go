package sentence

// TokenKind classifies a lexical token in description text.
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenDot
	TokenQuote
	TokenLParen
	TokenRParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenDot:
		return "dot"
	case TokenQuote:
		return "quote"
	case TokenLParen:
		return "lparen"
	case TokenRParen:
		return "rparen"
	}
	return "unknown"
}

// Token is one lexical unit of plain description text. Commas and
// whitespace are separators and never surface as tokens.
type Token struct {
	Kind TokenKind
	Text string
}
