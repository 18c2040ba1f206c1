package registry

import (
	"path/filepath"
	"testing"

	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

func newTestSQLStore(t *testing.T) *SQLStore {
	t.Helper()

	store, err := NewSQLStore(filepath.Join(t.TempDir(), "socrates.db"))
	if err != nil {
		t.Fatalf("NewSQLStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLStoreSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestSQLStore(t)

	in := []model.ShowCityEntry{
		entry("Campinas", "Circo Estoril", "01/01/2025", "31/01/2025"),
		entry("Santos", "Circo Mirage", "05/02/2025", "28/02/2025"),
	}
	in[0].ID = "a-1"
	in[1].ID = "b-2"

	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	// O backend relacional preserva as chaves substitutas e a ordem de inserção
	if out[0].ID != "a-1" || out[1].ID != "b-2" {
		t.Fatalf("ids not preserved: %+v", out)
	}
	if !sameEntries(in, out) {
		t.Fatalf("round trip mismatch")
	}
}

func TestSQLStoreSaveReplacesContent(t *testing.T) {
	t.Parallel()

	store := newTestSQLStore(t)

	first := []model.ShowCityEntry{entry("Campinas", "Circo Estoril", "01/01/2025", "31/01/2025")}
	first[0].ID = "a-1"
	if err := store.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := []model.ShowCityEntry{entry("Santos", "Circo Mirage", "05/02/2025", "28/02/2025")}
	second[0].ID = "b-2"
	if err := store.Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 1 || out[0].City != "Santos" {
		t.Fatalf("content not replaced: %+v", out)
	}
}
