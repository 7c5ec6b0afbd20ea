package employee

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("pool error: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS pegawai"); err != nil {
		t.Fatalf("drop error: %v", err)
	}
	// deliberately minimal: EnsureSchema must heal the missing columns
	if _, err := pool.Exec(ctx, "CREATE TABLE pegawai (nip TEXT PRIMARY KEY)"); err != nil {
		t.Fatalf("create error: %v", err)
	}

	store := NewStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema error: %v", err)
	}
	return store, ctx
}

func TestUpsertScanRoundTrip(t *testing.T) {
	store, ctx := testStore(t)

	rec := FromFields(map[string]string{"NIP": "100", "NAMA": "Budi", "UNOR INDUK": "DINAS A"})
	if err := store.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert error: %v", err)
	}

	recs, err := store.Scan(ctx)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 row, got %d", len(recs))
	}
	if recs[0].NIP != "100" || recs[0].Nama != "Budi" || recs[0].TanggalLahir != "" {
		t.Fatalf("unexpected row: %+v", recs[0])
	}
}

func TestUpsertIsIdempotentAndReplaces(t *testing.T) {
	store, ctx := testStore(t)

	rec := FromFields(map[string]string{"NIP": "100", "NAMA": "Budi"})
	if err := store.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if err := store.Upsert(ctx, rec); err != nil {
		t.Fatalf("second upsert error: %v", err)
	}

	rec.Nama = "Budi Santoso"
	if err := store.Upsert(ctx, rec); err != nil {
		t.Fatalf("replacing upsert error: %v", err)
	}

	recs, err := store.Scan(ctx)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(recs) != 1 || recs[0].Nama != "Budi Santoso" {
		t.Fatalf("key collision must resolve by replacement: %+v", recs)
	}
}

func TestUpsertRejectsMissingKey(t *testing.T) {
	store, ctx := testStore(t)
	if err := store.Upsert(ctx, Record{Nama: "Tanpa NIP"}); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestDeleteSemantics(t *testing.T) {
	store, ctx := testStore(t)

	if matched, err := store.Delete(ctx, "tidak-ada"); err != nil || matched {
		t.Fatalf("delete of absent key should be a clean no-op, matched=%v err=%v", matched, err)
	}

	if err := store.Upsert(ctx, FromFields(map[string]string{"NIP": "100"})); err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if matched, err := store.Delete(ctx, "100"); err != nil || !matched {
		t.Fatalf("delete should match, matched=%v err=%v", matched, err)
	}

	recs, err := store.Scan(ctx)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(recs))
	}
}

func TestReplaceAllIsNotAMerge(t *testing.T) {
	store, ctx := testStore(t)

	if err := store.Upsert(ctx, FromFields(map[string]string{"NIP": "900", "NAMA": "Lama"})); err != nil {
		t.Fatalf("upsert error: %v", err)
	}

	fresh := []Record{
		FromFields(map[string]string{"NIP": "1", "NAMA": "Satu"}),
		FromFields(map[string]string{"NIP": "2", "NAMA": "Dua"}),
	}
	if err := store.ReplaceAll(ctx, fresh); err != nil {
		t.Fatalf("replace error: %v", err)
	}

	recs, err := store.Scan(ctx)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(recs) != 2 || recs[0].NIP != "1" || recs[1].NIP != "2" {
		t.Fatalf("replace-all must not merge with prior state: %+v", recs)
	}

	if err := store.ReplaceAll(ctx, nil); err != nil {
		t.Fatalf("wipe error: %v", err)
	}
	if total, err := store.Count(ctx); err != nil || total != 0 {
		t.Fatalf("wipe should empty the table, total=%d err=%v", total, err)
	}
}

func TestGetNotFound(t *testing.T) {
	store, ctx := testStore(t)
	if _, err := store.Get(ctx, "hantu"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
