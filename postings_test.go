package boolidx

import "testing"

func TestPostingsList_LenAtIter(t *testing.T) {
	p := NewPostingsList([]DocId{0, 2, 5, 8, 10, 11}, 5)

	if got, want := p.Len(), 6; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for i, want := range []DocId{0, 2, 5, 8, 10, 11} {
		if got := p.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
	if got := p.Iter(); len(got) != 6 || got[5] != 11 {
		t.Errorf("Iter() = %v, want [0 2 5 8 10 11]", got)
	}
}

func TestPostingsList_StrictlyIncreasing(t *testing.T) {
	cases := [][]DocId{
		{0, 2, 5, 8, 10, 11},
		{},
		{42},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}
	for _, ids := range cases {
		p := NewPostingsList(ids, 5)
		for i := 1; i < p.Len(); i++ {
			if !(p.At(i-1) < p.At(i)) {
				t.Errorf("ids %v not strictly increasing at %d", ids, i)
			}
		}
	}
}

func TestPostingsBuilder_AppendNotIncreasingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-increasing append")
		}
	}()
	b := NewPostingsBuilder(5)
	b.Append(3)
	b.Append(3)
}

func TestPostingsList_AdvanceGE(t *testing.T) {
	ids := []DocId{0, 2, 5, 8, 10, 11, 14, 20, 21, 22, 30}
	p := NewPostingsList(ids, 5)

	tests := []struct {
		i, v, want int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 5, 2},
		{0, 9, 4},
		{0, 100, len(ids)},
		{3, 10, 4},
		{4, 11, 5},
		{len(ids), 5, len(ids)},
	}
	for _, tc := range tests {
		if got := p.AdvanceGE(tc.i, tc.v); got != tc.want {
			t.Errorf("AdvanceGE(%d, %d) = %d, want %d", tc.i, tc.v, got, tc.want)
		}
	}
}

func TestPostingsList_AdvanceGEMatchesLinearScan(t *testing.T) {
	ids := []DocId{1, 4, 6, 7, 9, 12, 15, 16, 19, 23, 24, 25, 29, 33, 40}
	for _, step := range []int{1, 3, 5, 7} {
		p := NewPostingsList(ids, step)
		for i := 0; i <= len(ids); i++ {
			for v := -1; v <= 45; v++ {
				want := len(ids)
				for j := i; j < len(ids); j++ {
					if ids[j] >= v {
						want = j
						break
					}
				}
				if got := p.AdvanceGE(i, v); got != want {
					t.Fatalf("step=%d AdvanceGE(%d, %d) = %d, want %d", step, i, v, got, want)
				}
			}
		}
	}
}

func TestPostingsList_AdvanceGELowerBoundAtZero(t *testing.T) {
	ids := []DocId{2, 4, 6, 8, 10, 12, 14}
	p := NewPostingsList(ids, 5)
	for _, v := range []DocId{0, 2, 3, 8, 15} {
		got := p.AdvanceGE(0, v)
		want := len(ids)
		for j, id := range ids {
			if id >= v {
				want = j
				break
			}
		}
		if got != want {
			t.Errorf("AdvanceGE(0, %d) = %d, want %d", v, got, want)
		}
	}
}

func TestEmptyPostings(t *testing.T) {
	p := EmptyPostings()
	if !p.IsEmpty() || p.Len() != 0 {
		t.Fatalf("EmptyPostings() not empty: %+v", p)
	}
	if got := p.AdvanceGE(0, 5); got != 0 {
		t.Errorf("AdvanceGE on empty = %d, want 0", got)
	}
}
