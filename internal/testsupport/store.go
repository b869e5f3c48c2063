package testsupport

import (
	"testing"

	"cineload/internal/config"
	"cineload/internal/store"
)

// MustOpenStore opens a store against the test config's database path and
// registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}
