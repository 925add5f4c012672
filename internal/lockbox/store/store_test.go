package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MATTBOX19/lockbox-backend/internal/lockbox/dto"
)

func TestListEmpty(t *testing.T) {
	s := New()

	if got := s.ListGames(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil games slice, got %#v", got)
	}
	if got := s.ListPicks(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil picks slice, got %#v", got)
	}

	games, picks := s.Counts()
	if games != 0 || picks != 0 {
		t.Fatalf("expected zero counts, got games=%d picks=%d", games, picks)
	}
}

func TestUpsertAndCounts(t *testing.T) {
	s := New()

	g, p := s.Upsert(
		[]dto.Game{{ID: "g1", League: "NFL", Home: "A", Away: "B", KickoffAt: "2024-01-01T00:00:00Z"}},
		[]dto.Pick{{ID: "p1", League: "NFL", GameID: "g1", Market: "spread", Selection: "A -2.5", Tier: "A", HitProb: 0.55}},
	)
	if g != 1 || p != 1 {
		t.Fatalf("expected totals 1/1, got games=%d picks=%d", g, p)
	}

	games, picks := s.Counts()
	if games != 1 || picks != 1 {
		t.Fatalf("counts mismatch: games=%d picks=%d", games, picks)
	}
}

func TestUpsertReplacesWholeRecord(t *testing.T) {
	s := New()

	weather := "rain"
	s.Upsert([]dto.Game{{ID: "g1", League: "NFL", Home: "A", Away: "B", KickoffAt: "2024-01-01T00:00:00Z", Weather: &weather}}, nil)
	s.Upsert([]dto.Game{{ID: "g1", League: "NFL", Home: "A", Away: "B", KickoffAt: "2024-01-02T00:00:00Z"}}, nil)

	games := s.ListGames()
	if len(games) != 1 {
		t.Fatalf("expected one game, got %d", len(games))
	}
	if games[0].KickoffAt != "2024-01-02T00:00:00Z" {
		t.Fatalf("expected replaced kickoff, got %q", games[0].KickoffAt)
	}
	// substituição total: o weather do registro antigo não pode sobrar
	if games[0].Weather != nil {
		t.Fatalf("expected weather cleared on replace, got %q", *games[0].Weather)
	}
}

func TestLaterDuplicateWinsWithinBatch(t *testing.T) {
	s := New()

	s.Upsert(nil, []dto.Pick{
		{ID: "p1", League: "NFL", GameID: "g1", Market: "spread", Selection: "A -2.5", HitProb: 0.60},
		{ID: "p1", League: "NFL", GameID: "g1", Market: "spread", Selection: "A -2.5", HitProb: 0.70},
	})

	picks := s.ListPicks()
	if len(picks) != 1 {
		t.Fatalf("expected one pick, got %d", len(picks))
	}
	if picks[0].HitProb != 0.70 {
		t.Fatalf("expected later duplicate to win, got hit_prob=%v", picks[0].HitProb)
	}
}

func TestUpsertIdempotent(t *testing.T) {
	s := New()

	batch := []dto.Game{{ID: "g1", League: "NBA", Home: "H", Away: "A", KickoffAt: "2024-02-01T00:00:00Z"}}
	s.Upsert(batch, nil)
	g, p := s.Upsert(batch, nil)

	if g != 1 || p != 0 {
		t.Fatalf("repeated upsert changed totals: games=%d picks=%d", g, p)
	}
}

func TestConcurrentUpserts(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("g%d", i)
			s.Upsert([]dto.Game{{ID: id, League: "NFL", Home: "H", Away: "A", KickoffAt: "2024-01-01T00:00:00Z"}}, nil)
			s.ListGames()
		}(i)
	}
	wg.Wait()

	games, _ := s.Counts()
	if games != 16 {
		t.Fatalf("expected 16 games after concurrent upserts, got %d", games)
	}
}
