package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	for i, kind := range []string{"search", "sample", "search"} {
		if err := st.Record(ctx, Entry{SessionID: "s1", Kind: kind, Matches: i}); err != nil {
			t.Fatal(err)
		}
	}
	_ = st.Record(ctx, Entry{SessionID: "s2", Kind: "search", Matches: 9})

	got, err := st.Recent(ctx, "s1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d rows, want 2", len(got))
	}
	if got[0].Matches != 2 || got[1].Matches != 1 {
		t.Errorf("order = %+v", got)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
}

func TestRecentUnknownSession(t *testing.T) {
	st := openTemp(t)
	got, err := st.Recent(context.Background(), "nobody", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Recent = %+v", got)
	}
}

func TestOpenTwiceSkipsAppliedMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	a, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = a.Close()
	b, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = b.Close()
}

func TestRecentRejectsMalformedTimestamp(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	if _, err := st.db.ExecContext(ctx, `
        INSERT INTO searches (session_id, kind, constraints, matches, created_at)
        VALUES ('s1', 'search', '', 0, 'yesterday')`); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Recent(ctx, "s1", 5); err == nil {
		t.Error("expected error for malformed created_at")
	}
}
