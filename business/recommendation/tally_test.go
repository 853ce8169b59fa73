//go:build !integration

package recommendation

import "testing"

func TestTallyMostCommonKeepsFirstSeenOrderOnTies(t *testing.T) {
	tally := NewTally[string]()
	tally.Add("b", 2)
	tally.Add("a", 3)
	tally.Add("c", 2)
	tally.Add("b", 1)
	tally.Add("d", 1)

	got := tally.MostCommon()
	want := []TallyEntry[string]{{"b", 3}, {"a", 3}, {"c", 2}, {"d", 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestTallyZeroAddStillRegistersKey(t *testing.T) {
	tally := NewTally[string]()
	tally.Add("x", 0)

	if !tally.Has("x") || tally.Count("x") != 0 || tally.Len() != 1 {
		t.Fatalf("expected key x with count 0, got has=%v count=%d len=%d",
			tally.Has("x"), tally.Count("x"), tally.Len())
	}
}
