package extract

import "tgschema/sentence"

func words(ws ...string) []SearchBy {
	out := make([]SearchBy, len(ws))
	for i, w := range ws {
		out[i] = ByWord(w)
	}
	return out
}

// The named pattern sets. Order matters everywhere: the first match
// wins, so exclusions sit in front of the generic patterns they guard.
var (
	// returnTypeSet finds the clause naming a method's result. The
	// three exclusions skip summary sentences ("Returns the list of
	// gifts.") so a later, concrete clause gets matched instead.
	returnTypeSet = []Pattern{
		{Parts: words("Returns", "the", "bot's", "Telegram"), Exclude: true},
		{Parts: words("Returns", "the", "list", "of"), Exclude: true},
		{Parts: words("Returns", "the", "amount", "of"), Exclude: true},
		{Parts: words("On", "success")},
		{Parts: words("Returns")},
		{Parts: words("returns")},
		{Parts: words("An")},
		{Parts: words("is", "returned"), Offset: -3},
	}

	// defaultSet finds a field's default value. The backward offsets
	// make the capture include the value Part itself.
	defaultSet = []Pattern{
		{Parts: words("Defaults", "to")},
		{Parts: words("defaults", "to")},
		{Parts: []SearchBy{ByWord("must"), ByWord("be"), ByKind(sentence.PartItalic)}, Offset: -1},
		{Parts: []SearchBy{ByWord("always"), ByQuoted()}, Offset: -1},
	}

	// minMaxSet finds a numeric range Part such as "1-100". The
	// "characters" form has the range two positions before the match
	// end ("Must be 0-256 characters long").
	minMaxSet = []Pattern{
		{Parts: words("Values", "between")},
		{Parts: words("characters"), Offset: -2},
	}

	// oneOfSet finds enumeration clauses. The quoted-or-quoted form
	// reaches back to the first quoted value.
	oneOfSet = []Pattern{
		{Parts: words("either")},
		{Parts: words("One", "of")},
		{Parts: words("one", "of")},
		{Parts: words("Can", "be")},
		{Parts: []SearchBy{ByWord("can"), ByWord("be"), ByQuoted()}, Offset: -1},
		{Parts: []SearchBy{ByQuoted(), ByWord("or"), ByQuoted()}, Offset: -3},
		{Parts: words("Choose", "one")},
	}
)
