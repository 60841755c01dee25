// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS BOOLEAN RETRIEVAL?
// ═══════════════════════════════════════════════════════════════════════════════
// This package holds building blocks for the core of a small-scale search
// engine that, given a term dictionary already built by an external
// indexing pipeline, answers boolean queries ("cat AND dog", "cat -dog",
// "yo*der") against the resulting inverted index.
//
// Example: Given a dictionary built from these documents:
//
//	Doc 0: "the quick brown fox"
//	Doc 1: "the lazy dog"
//	Doc 2: "quick brown dogs"
//
// the inverted index looks like:
//
//	"quick"  → [0, 2]
//	"brown"  → [0, 2]
//	"fox"    → [0]
//	"lazy"   → [1]
//	"dog"    → [1]
//	"dogs"   → [2]
//	"*"      → [0, 1, 2]   (the universal set)
//
// Query "quick AND brown" evaluates to [0, 2]; "quick -dog" evaluates to
// [0, 2] as well, since neither matches "dog". "dog*" wildcard-expands to
// "dog OR dogs" before evaluation and returns [1, 2].
//
// ═══════════════════════════════════════════════════════════════════════════════
// PIPELINE
// ═══════════════════════════════════════════════════════════════════════════════
//
//	raw query ─▶ Parse ─▶ postfix plan ─┐
//	                                    ├─▶ Evaluate ─▶ sorted doc-id list
//	Load ─▶ InvertedIndex ───────────────┘
//	              ▲
//	              │ term enumeration at build time
//	              └── TermBTree (forward + reverse)
//	                         ▲
//	                         │
//	          ExpandWildcard (rewrites '*' operands before Evaluate)
//
// Of this pipeline, the package contains the shared plan types (types.go),
// the error types (errors.go), Config (config.go) and PostingsList with its
// skip pointers and builder (postings.go). It has no Parse, Evaluate, Load,
// InvertedIndex, TermBTree, ExpandWildcard or Engine, and so no Search,
// Prefix or Wildcard API; the example and the diagram above show the
// retrieval model these pieces belong to.
// ═══════════════════════════════════════════════════════════════════════════════

package boolidx
