package search

import (
	"encoding/json"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearch_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		seq       []int
		target    int
		wantFound bool
		wantIndex int
	}{
		{name: "found at center", seq: []int{1, 2, 3, 4, 5}, target: 3, wantFound: true, wantIndex: 2},
		{name: "found at beginning", seq: []int{1, 2, 3, 4, 5}, target: 1, wantFound: true, wantIndex: 0},
		{name: "found at end", seq: []int{1, 2, 3, 4, 5}, target: 5, wantFound: true, wantIndex: 4},
		{name: "above range", seq: []int{1, 2, 3, 4, 5}, target: 6},
		{name: "below range", seq: []int{1, 2, 3, 4, 5}, target: 0},
		{name: "single element found", seq: []int{10}, target: 10, wantFound: true, wantIndex: 0},
		{name: "single element missing", seq: []int{10}, target: 5},
		{name: "negative values", seq: []int{-9, -4, -1, 0, 7}, target: -4, wantFound: true, wantIndex: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Search(tt.seq, tt.target)
			if got.Found != tt.wantFound {
				t.Fatalf("Found = %v; want %v", got.Found, tt.wantFound)
			}
			if len(got.Steps) == 0 {
				t.Fatal("expected at least one step for a non-empty sequence")
			}
			last := got.Steps[len(got.Steps)-1]
			if !tt.wantFound {
				if got.Index != nil {
					t.Fatalf("Index = %d; want nil", *got.Index)
				}
				if last.Comparison == Equal {
					t.Fatal("last step must not be EQUAL when not found")
				}
				return
			}
			if got.Index == nil || *got.Index != tt.wantIndex {
				t.Fatalf("Index = %v; want %d", got.Index, tt.wantIndex)
			}
			if last.Comparison != Equal {
				t.Errorf("last step comparison = %v; want EQUAL", last.Comparison)
			}
			if last.Mid != *got.Index {
				t.Errorf("last step mid = %d; want %d", last.Mid, *got.Index)
			}
			if last.MidValue != tt.target {
				t.Errorf("last step mid_value = %d; want %d", last.MidValue, tt.target)
			}
		})
	}
}

func TestSearch_CenterTrace(t *testing.T) {
	t.Parallel()

	got := Search([]int{1, 2, 3, 4, 5}, 3)
	want := []Step{{Low: 0, High: 4, Mid: 2, MidValue: 3, Comparison: Equal}}
	if diff := cmp.Diff(want, got.Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_NotFoundTrace(t *testing.T) {
	t.Parallel()

	got := Search([]int{1, 2, 3, 4, 5}, 6)
	want := []Step{
		{Low: 0, High: 4, Mid: 2, MidValue: 3, Comparison: LessThanMoveLow},
		{Low: 3, High: 4, Mid: 3, MidValue: 4, Comparison: LessThanMoveLow},
		{Low: 4, High: 4, Mid: 4, MidValue: 5, Comparison: LessThanMoveLow},
	}
	if diff := cmp.Diff(want, got.Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}

	got = Search([]int{1, 2, 3, 4, 5}, 0)
	want = []Step{
		{Low: 0, High: 4, Mid: 2, MidValue: 3, Comparison: GreaterThanMoveHigh},
		{Low: 0, High: 1, Mid: 0, MidValue: 1, Comparison: GreaterThanMoveHigh},
	}
	if diff := cmp.Diff(want, got.Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_EmptySequence(t *testing.T) {
	t.Parallel()

	for _, target := range []int{-1, 0, 1, 42} {
		got := Search([]int{}, target)
		if got.Found || got.Index != nil {
			t.Fatalf("Search([], %d) = found=%v index=%v; want not found", target, got.Found, got.Index)
		}
		if got.Steps == nil || len(got.Steps) != 0 {
			t.Fatalf("Search([], %d) steps = %#v; want empty non-nil slice", target, got.Steps)
		}
	}

	if got := Search(nil, 1); got.Found || len(got.Steps) != 0 {
		t.Fatalf("Search(nil, 1) = %+v; want empty result", got)
	}
}

func TestSearch_Duplicates(t *testing.T) {
	t.Parallel()

	got := Search([]int{1, 2, 2, 2, 3}, 2)
	if !got.Found || got.Index == nil {
		t.Fatal("expected target to be found")
	}
	if !slices.Contains([]int{1, 2, 3}, *got.Index) {
		t.Errorf("Index = %d; want one of 1, 2, 3", *got.Index)
	}
	if got.Steps[len(got.Steps)-1].MidValue != 2 {
		t.Errorf("last mid_value = %d; want 2", got.Steps[len(got.Steps)-1].MidValue)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	t.Parallel()

	seq := []int{2, 3, 5, 7, 11, 13, 17, 19, 23}
	for _, target := range []int{1, 7, 12, 23, 24} {
		first := Search(seq, target)
		second := Search(seq, target)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("target %d: repeated search differs (-first +second):\n%s", target, diff)
		}
	}
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	seq := []int{1, 4, 9, 16, 25}
	orig := slices.Clone(seq)
	_ = Search(seq, 9)
	_ = Search(seq, 10)
	if !slices.Equal(seq, orig) {
		t.Fatalf("input mutated: got %v; want %v", seq, orig)
	}
}

// TestSearch_Properties checks the trace invariants over random sorted inputs.
func TestSearch_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(64)
		seq := make([]int, n)
		for i := range seq {
			seq[i] = rng.Intn(100) - 50
		}
		slices.Sort(seq)
		target := rng.Intn(120) - 60

		got := Search(seq, target)
		present := slices.Contains(seq, target)

		if got.Found != present {
			t.Fatalf("seq=%v target=%d: Found = %v; want %v", seq, target, got.Found, present)
		}
		if got.Found {
			if got.Index == nil || seq[*got.Index] != target {
				t.Fatalf("seq=%v target=%d: bad index %v", seq, target, got.Index)
			}
			if got.Steps[len(got.Steps)-1].Mid != *got.Index {
				t.Fatalf("seq=%v target=%d: last mid != index", seq, target)
			}
		} else if got.Index != nil {
			t.Fatalf("seq=%v target=%d: Index = %d; want nil", seq, target, *got.Index)
		}

		if n > 0 && len(got.Steps) == 0 {
			t.Fatalf("seq=%v target=%d: empty trace", seq, target)
		}
		if len(got.Steps) > MaxSteps(n) {
			t.Fatalf("seq=%v target=%d: %d steps exceeds bound %d", seq, target, len(got.Steps), MaxSteps(n))
		}

		for i, s := range got.Steps {
			if s.Low > s.Mid || s.Mid > s.High {
				t.Fatalf("step %d: want low <= mid <= high, got %+v", i, s)
			}
			if s.Mid != (s.Low+s.High)/2 {
				t.Fatalf("step %d: mid %d is not floor((low+high)/2)", i, s.Mid)
			}
			if s.MidValue != seq[s.Mid] {
				t.Fatalf("step %d: mid_value %d != seq[mid] %d", i, s.MidValue, seq[s.Mid])
			}
			isLast := i == len(got.Steps)-1
			if s.Comparison == Equal && !isLast {
				t.Fatalf("step %d: EQUAL before the final step", i)
			}
		}
	}
}

func TestMaxSteps(t *testing.T) {
	t.Parallel()

	cases := map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 5: 3, 7: 3, 8: 4, 1023: 10, 1024: 11}
	for n, want := range cases {
		if got := MaxSteps(n); got != want {
			t.Errorf("MaxSteps(%d) = %d; want %d", n, got, want)
		}
	}
}

func TestResult_JSONShape(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Search([]int{10}, 10))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"found":true,"index":0,"steps":[{"low":0,"high":0,"mid":0,"mid_value":10,"comparison":"arr[mid] == target"}]}`
	if string(raw) != want {
		t.Errorf("json = %s\nwant   %s", raw, want)
	}

	raw, err = json.Marshal(Search([]int{}, 1))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"found":false,"index":null,"steps":[]}` {
		t.Errorf("json = %s", raw)
	}
}
