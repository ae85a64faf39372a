package player

import (
	"reflect"
	"testing"
)

func TestNormalize_KeepsMaxGoalsPerName(t *testing.T) {
	raw := []Player{
		{Name: "C", Club: "X", Goals: 10},
		{Name: "D", Club: "Y", Goals: 4},
		{Name: "C", Club: "X", Goals: 15},
	}

	got := Normalize(raw)
	want := []Player{
		{Name: "D", Club: "Y", Goals: 4},
		{Name: "C", Club: "X", Goals: 15},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected normalized rows:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestNormalize_RetainsTiesAtMaximum(t *testing.T) {
	raw := []Player{
		{Name: "E", Club: "X", Goals: 7},
		{Name: "E", Club: "Y", Goals: 7},
		{Name: "E", Club: "Z", Goals: 2},
	}

	got := Normalize(raw)
	if len(got) != 2 {
		t.Fatalf("expected both tied rows, got %d", len(got))
	}
	if got[0].Club != "X" || got[1].Club != "Y" {
		t.Fatalf("expected input order to be preserved, got %+v", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := []Player{
		{Name: "A", Goals: 1},
		{Name: "A", Goals: 3},
		{Name: "B", Goals: 0},
		{Name: "B", Goals: 0},
	}

	once := Normalize(raw)
	twice := Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected normalization to be idempotent:\n once=%+v\ntwice=%+v", once, twice)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	got := Normalize(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := []Player{
		{Name: "A", Goals: 1},
		{Name: "A", Goals: 3},
	}
	snapshot := append([]Player(nil), raw...)

	_ = Normalize(raw)
	if !reflect.DeepEqual(raw, snapshot) {
		t.Fatalf("input mutated: %+v", raw)
	}
}
