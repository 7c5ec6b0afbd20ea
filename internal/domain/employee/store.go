package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound   = errors.New("employee not found")
	ErrMissingKey = errors.New("NIP is required")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// EnsureSchema adds any expected column missing from the pegawai table.
// Healing is additive only: columns are never dropped or retyped.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, col := range dbColumns() {
		stmt := fmt.Sprintf("ALTER TABLE pegawai ADD COLUMN IF NOT EXISTS %s TEXT NOT NULL DEFAULT ''", col)
		if _, err := s.DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure column %s: %w", col, err)
		}
	}
	return nil
}

// Upsert inserts the record or replaces the existing row with the same NIP.
// A key collision is resolved by replacement, never an error.
func (s *Store) Upsert(ctx context.Context, rec Record) error {
	if strings.TrimSpace(rec.NIP) == "" {
		return ErrMissingKey
	}
	if _, err := s.DB.Exec(ctx, upsertSQL(), rec.storeValues()...); err != nil {
		return fmt.Errorf("upsert employee: %w", err)
	}
	return nil
}

// Delete removes the row with the given NIP. A missing key is reported as
// matched=false, not an error.
func (s *Store) Delete(ctx context.Context, nip string) (bool, error) {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM pegawai WHERE nip = $1", nip)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ReplaceAll clears the table and repopulates it from recs in a single
// transaction. An empty list wipes the table.
func (s *Store) ReplaceAll(ctx context.Context, recs []Record) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM pegawai"); err != nil {
		return fmt.Errorf("clear pegawai: %w", err)
	}

	batch := &pgx.Batch{}
	insert := insertSQL()
	for i := range recs {
		batch.Queue(insert, recs[i].storeValues()...)
	}
	results := tx.SendBatch(ctx, batch)
	for range recs {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("replace pegawai: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Scan returns every record in stable NIP order.
func (s *Store) Scan(ctx context.Context) ([]Record, error) {
	rows, err := s.DB.Query(ctx, selectSQL()+" ORDER BY nip")
	if err != nil {
		return nil, fmt.Errorf("scan pegawai: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(rec.scanDest()...); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Get returns the record with the given NIP, or ErrNotFound.
func (s *Store) Get(ctx context.Context, nip string) (*Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, selectSQL()+" WHERE nip = $1", nip).Scan(rec.scanDest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &rec, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM pegawai").Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func selectSQL() string {
	return "SELECT " + strings.Join(dbColumns(), ", ") + " FROM pegawai"
}

func insertSQL() string {
	cols := dbColumns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO pegawai (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.Join(placeholders, ", "))
}

func upsertSQL() string {
	cols := dbColumns()
	assignments := make([]string, 0, len(cols))
	for _, col := range cols {
		if col == "nip" {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	return insertSQL() + " ON CONFLICT (nip) DO UPDATE SET " + strings.Join(assignments, ", ")
}
