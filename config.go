package boolidx

// ═══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════
// Config gathers the tuning knobs spec'd as "default N, tuning constant":
// the postings skip step and the B-tree Knuth order. As with the teacher's
// AnalyzerConfig/BM25Parameters, a plain struct plus a DefaultConfig()
// constructor keeps zero-value Config unusable-by-accident obvious at a
// glance, while letting callers override only the fields they care about.
// ═══════════════════════════════════════════════════════════════════════════════

// Config holds the tunable parameters of the package. SkipStep and
// BTreeOrder do not affect query results (see spec invariants on advance_ge
// and B-tree order); they affect only step counts and tree shape. Tokenizer
// does affect results, since it decides which term each operand becomes.
type Config struct {
	// SkipStep is K, the anchor spacing for PostingsList skip pointers.
	// Every SkipStep-th append becomes a new anchor. Reference value 5.
	SkipStep int

	// BTreeOrder is m, the Knuth order of both TermBTree instances: node
	// key capacity is m-1, child capacity is m. Reference value 6.
	BTreeOrder int

	// Tokenizer normalizes operand lexemes during parsing and document
	// text during index loading. Defaults to NewDefaultTokenizer().
	Tokenizer Tokenizer
}

// DefaultConfig returns the reference configuration: skip step 5, B-tree
// order 6, and the default snowball-backed Tokenizer.
func DefaultConfig() Config {
	return Config{
		SkipStep:   5,
		BTreeOrder: 6,
		Tokenizer:  NewDefaultTokenizer(),
	}
}
