package storage

import (
	"sync"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, r RoundResult) RoundResult {
	t.Helper()
	saved, err := store.SaveRound(r)
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	return saved
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	mustSave(t, a, RoundResult{Variant: "tiletap", Score: 1})

	rounds, err := b.Rounds()
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("Expected a new store to be empty, got %d rounds", len(rounds))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	at := time.Unix(1700000000, 123456789)
	first := mustSave(t, store, RoundResult{Variant: "tiletap", Score: 10})
	mustSave(t, store, RoundResult{Variant: "tiletap", Score: 5})
	mustSave(t, store, RoundResult{Variant: "tiletap", Score: 20, Misses: 3, FinishedAt: at})
	mustSave(t, store, RoundResult{Variant: "tiletap_sudden", Score: 50, Misses: 1, EndedByMiss: true})

	if first.ID != 1 {
		t.Errorf("Expected first ID 1, got %d", first.ID)
	}
	if first.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be filled in")
	}

	rounds, err := store.Rounds()
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 4 {
		t.Fatalf("Expected 4 rounds, got %d", len(rounds))
	}
	for i, r := range rounds {
		if r.ID != int64(i+1) {
			t.Errorf("Round %d has ID %d", i, r.ID)
		}
	}
	if r := rounds[2]; r.Misses != 3 || r.EndedByMiss || !r.FinishedAt.Equal(at) {
		t.Errorf("Round 3 not stored faithfully: %+v", r)
	}
	if r := rounds[3]; !r.EndedByMiss || r.Variant != "tiletap_sudden" {
		t.Errorf("Round 4 not stored faithfully: %+v", r)
	}

	scores, err := store.TopScores("tiletap", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		mustSave(t, store, RoundResult{Variant: "test", Score: (i + 1) * 100})
	}
	mustSave(t, store, RoundResult{Variant: "test", Score: 500})

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 500 || scores[2].Score != 400 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].ID != 5 || scores[1].ID != 6 {
		t.Errorf("Ties should keep play order, got IDs %d, %d", scores[0].ID, scores[1].ID)
	}

	all, err := store.TopScores("", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected default limit to cover 6 results, got %d", len(all))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	if high, err := store.HighScore("tiletap"); err != nil || high != 0 {
		t.Errorf("HighScore() on empty store = %d, %v; expected 0", high, err)
	}
	empty, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty store: %+v", empty)
	}

	early := time.Unix(100, 0)
	late := time.Unix(200, 0)
	mustSave(t, store, RoundResult{Variant: "tiletap", Score: 4, FinishedAt: late})
	mustSave(t, store, RoundResult{Variant: "tiletap", Score: 8, FinishedAt: early})
	mustSave(t, store, RoundResult{Variant: "tiletap_sudden", Score: 1, FinishedAt: early})

	stats, err := store.Stats("tiletap")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.HighScore != 8 || stats.TotalScore != 12 || stats.AvgScore != 6 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if !stats.LastPlayed.Equal(late) {
		t.Errorf("Expected LastPlayed %v, got %v", late, stats.LastPlayed)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["tiletap_sudden"].Rounds != 1 || all["tiletap"].HighScore != 8 {
		t.Errorf("Unexpected AllStats: %+v", all)
	}

	total, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if total.Rounds != 3 {
		t.Errorf("Expected empty variant to aggregate every round, got %d", total.Rounds)
	}
	if high, _ := store.HighScore(""); high != 8 {
		t.Errorf("Expected overall high score 8, got %d", high)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, RoundResult{Variant: "tiletap", Score: 3})
	mustSave(t, store, RoundResult{Variant: "tiletap", Score: 4})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	rounds, err := store.Rounds()
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("Expected empty store after Clear, got %d", len(rounds))
	}
	if r := mustSave(t, store, RoundResult{Variant: "tiletap"}); r.ID != 1 {
		t.Errorf("Expected IDs to restart after Clear, got %d", r.ID)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := store.SaveRound(RoundResult{Variant: "tiletap", Score: score}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("SaveRound() failed: %v", err)
	}

	stats, err := store.Stats("tiletap")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 20 || stats.HighScore != 19 {
		t.Errorf("Expected 20 rounds with high score 19, got %+v", stats)
	}
}

type fakeGame struct{}

func (fakeGame) ID() string               { return "tiletap_sudden" }
func (fakeGame) RoundMisses() (int, bool) { return 2, true }

type plainGame struct{}

func (plainGame) ID() string { return "plain" }

func TestResultFor(t *testing.T) {
	at := time.Unix(50, 0)

	r := ResultFor(fakeGame{}, 7, at)
	if r.Variant != "tiletap_sudden" || r.Score != 7 || r.Misses != 2 || !r.EndedByMiss || !r.FinishedAt.Equal(at) {
		t.Errorf("Unexpected result: %+v", r)
	}

	r = ResultFor(plainGame{}, 3, at)
	if r.Misses != 0 || r.EndedByMiss {
		t.Errorf("Expected no miss details, got %+v", r)
	}
}
