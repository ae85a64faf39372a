package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/player-relations/internal/domain/player"
	"github.com/riskibarqy/player-relations/internal/domain/rules"
)

func TestPlayerSource_FetchReturnsCopies(t *testing.T) {
	t.Parallel()

	source := NewPlayerSource(SeedPlayers())

	first, err := source.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("fetch players: %v", err)
	}
	first[0].Goals = -1
	*first[0].BirthCountry = "Nowhere"

	second, err := source.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("fetch players: %v", err)
	}
	if second[0].Goals == -1 {
		t.Fatalf("fetch leaked internal row")
	}
	if got, _ := second[0].Country(); got != "Brazil" {
		t.Fatalf("fetch leaked internal country pointer, got %q", got)
	}
}

func TestPlayerSource_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewPlayerSource(SeedPlayers()).FetchPlayers(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestPlayerSource_Replace(t *testing.T) {
	t.Parallel()

	source := NewPlayerSource(SeedPlayers())
	source.Replace([]player.Player{{Name: "Solo", Club: "Nowhere FC"}})

	got, err := source.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("fetch players: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Solo" {
		t.Fatalf("unexpected rows after replace: %+v", got)
	}
}

func TestSeedPlayers_CoversDefaultSubjects(t *testing.T) {
	t.Parallel()

	players := player.Normalize(SeedPlayers())

	teammates, err := rules.TeammatesOf(players, "Lucas Piazon")
	if err != nil {
		t.Fatalf("teammates of seeded subject: %v", err)
	}
	if len(teammates) != 3 {
		t.Fatalf("unexpected teammates: %v", teammates)
	}
	if !rules.IsStriker(players, "Jeison Medina") {
		t.Fatalf("expected seeded striker subject to be a striker")
	}

	for _, p := range players {
		if p.Name == "Harry Kane" && p.Goals != 213 {
			t.Fatalf("expected max goals after normalize, got %d", p.Goals)
		}
	}
}
