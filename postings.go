package boolidx

import "fmt"

// ═══════════════════════════════════════════════════════════════════════════════
// POSTINGS LIST WITH SKIP POINTERS
// ═══════════════════════════════════════════════════════════════════════════════
// A PostingsList is a sorted, duplicate-free slice of DocIds. Every K-th
// element (the "anchor" spacing, Config.SkipStep) carries a forward skip
// reference to the next anchor; advance_ge follows these references to
// jump over runs of ids below the target value, falling back to one-by-one
// stepping once a skip would overshoot.
//
// Construction is append-only and strictly increasing — there is no way to
// build a PostingsList out of order, so every instance in the wild already
// satisfies the sortedness invariant by construction.
// ═══════════════════════════════════════════════════════════════════════════════

// PostingsList is immutable once built: all mutation happens through
// PostingsBuilder.
type PostingsList struct {
	ids  []DocId
	skip []int // skip[i] = index of the next anchor if i is an anchor with a successor anchor, else -1
}

// emptyPostings is the shared "no documents" sentinel. Every merge
// operation treats it as the identity for OR and the annihilator for AND.
var emptyPostings = PostingsList{}

// EmptyPostings returns the empty sentinel postings list: a valid operand
// representing "no documents".
func EmptyPostings() PostingsList { return emptyPostings }

// Len reports the number of elements in O(1).
func (p PostingsList) Len() int { return len(p.ids) }

// At returns the element at position i. Panics if i is out of range, same
// as a slice index — callers are expected to bound-check via Len first.
func (p PostingsList) At(i int) DocId { return p.ids[i] }

// Iter returns every element in ascending order.
func (p PostingsList) Iter() []DocId {
	out := make([]DocId, len(p.ids))
	copy(out, p.ids)
	return out
}

// IsEmpty reports whether this list carries no documents.
func (p PostingsList) IsEmpty() bool { return len(p.ids) == 0 }

// AdvanceGE returns the smallest index j >= i such that At(j) >= v, or
// Len() if no such j exists. From i it repeatedly follows the current
// anchor's skip link while the skip target's value is still < v; when the
// next skip would overshoot (or there is none), it falls back to stepping
// one element at a time. Monotone in both i and v; AdvanceGE(0, v) is
// equivalent to a lower-bound binary search.
func (p PostingsList) AdvanceGE(i int, v DocId) int {
	n := len(p.ids)
	if i < 0 {
		i = 0
	}
	j := i
	for j < n && p.ids[j] < v {
		if s := p.skip[j]; s != -1 && p.ids[s] < v {
			j = s
			continue
		}
		j++
	}
	return j
}

// ═══════════════════════════════════════════════════════════════════════════════
// BUILDER
// ═══════════════════════════════════════════════════════════════════════════════

// PostingsBuilder accumulates a strictly increasing sequence of DocIds and
// produces an immutable PostingsList. Every SkipStep-th append becomes a
// new anchor; the previous anchor's skip link is retargeted to it.
type PostingsBuilder struct {
	step       int
	ids        []DocId
	skip       []int
	lastAnchor int // index of the most recent anchor, -1 if none yet
}

// NewPostingsBuilder starts an empty builder with the given anchor
// spacing. step must be >= 1; a step of 1 makes every element an anchor.
func NewPostingsBuilder(step int) *PostingsBuilder {
	if step < 1 {
		step = 1
	}
	return &PostingsBuilder{step: step, lastAnchor: -1}
}

// Append adds id to the end of the list under construction. id must be
// strictly greater than the previous append (or this must be the first
// append); violating that ordering is a programmer error, reported via
// panic rather than a plumbed-through error, since it can never happen
// when the source is already sorted (dictionary files, merge outputs).
func (b *PostingsBuilder) Append(id DocId) {
	if n := len(b.ids); n > 0 && id <= b.ids[n-1] {
		panic(fmt.Sprintf("boolidx: PostingsBuilder.Append(%d) not greater than last id %d", id, b.ids[n-1]))
	}
	idx := len(b.ids)
	b.ids = append(b.ids, id)
	b.skip = append(b.skip, -1)
	if (idx+1)%b.step == 0 {
		if b.lastAnchor >= 0 {
			b.skip[b.lastAnchor] = idx
		}
		b.lastAnchor = idx
	}
}

// Build finalizes the list. The builder must not be reused afterward.
func (b *PostingsBuilder) Build() PostingsList {
	return PostingsList{ids: b.ids, skip: b.skip}
}

// NewPostingsList builds a PostingsList from an already-sorted,
// duplicate-free slice of ids in one call, using step as the anchor
// spacing.
func NewPostingsList(ids []DocId, step int) PostingsList {
	b := NewPostingsBuilder(step)
	for _, id := range ids {
		b.Append(id)
	}
	return b.Build()
}
