package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Action kinds are an open set; new kinds need no schema change.
const (
	ActionLogin         = "LOGIN"
	ActionLogout        = "LOGOUT"
	ActionInsert        = "INSERT"
	ActionUpdate        = "UPDATE"
	ActionDelete        = "DELETE"
	ActionRestore       = "RESTORE"
	ActionAddUser       = "ADD_USER"
	ActionResetPassword = "RESET_PASSWORD"
)

// TargetAll marks an entry that touched the whole table.
const TargetAll = "ALL"

// Entry is one immutable audit line.
type Entry struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"createdAt"`
}

type Filter struct {
	Roles   []string
	Actions []string
	Match   string // substring on actor or target
}

type Logger struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Logger {
	return &Logger{DB: db}
}

// Append records who did what to which target, timestamped now. It is
// best-effort: a storage failure is logged and swallowed so the primary
// mutation it accompanies is never rolled back or blocked.
func (l *Logger) Append(ctx context.Context, actor, role, action, target string) {
	_, err := l.DB.Exec(ctx, `
    INSERT INTO audit_log (actor, role, action, target)
    VALUES ($1,$2,$3,$4)
  `, actor, role, action, target)
	if err != nil {
		slog.Warn("audit append failed", "action", action, "target", target, "err", err)
	}
}

// Query returns matching entries, newest first.
func (l *Logger) Query(ctx context.Context, filter Filter) ([]Entry, error) {
	query := "SELECT id, actor, role, action, target, created_at FROM audit_log"
	var args []any
	var where []string
	if len(filter.Roles) > 0 {
		args = append(args, filter.Roles)
		where = append(where, fmt.Sprintf("role = ANY($%d)", len(args)))
	}
	if len(filter.Actions) > 0 {
		args = append(args, filter.Actions)
		where = append(where, fmt.Sprintf("action = ANY($%d)", len(args)))
	}
	if filter.Match != "" {
		args = append(args, "%"+filter.Match+"%")
		where = append(where, fmt.Sprintf("(actor ILIKE $%d OR target ILIKE $%d)", len(args), len(args)))
	}
	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := l.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Actor, &entry.Role, &entry.Action, &entry.Target, &entry.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// CountToday counts entries stamped with the current calendar date, using
// the database server's local date.
func (l *Logger) CountToday(ctx context.Context) (int, error) {
	var total int
	err := l.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM audit_log WHERE created_at::date = CURRENT_DATE
  `).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
