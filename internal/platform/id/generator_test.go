package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected uuid, got %q: %v", first, err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}

func TestStaticGenerator_NewID(t *testing.T) {
	got, err := StaticGenerator("run-1").NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if got != "run-1" {
		t.Fatalf("unexpected id %q", got)
	}
}
