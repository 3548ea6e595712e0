package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"limber/internal/modules/workout/domain"
	workoutout "limber/internal/modules/workout/port/out"
	apperrors "limber/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(db *sql.DB) (workoutout.SessionStore, error) {
	store := &SQLiteSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  routine_id TEXT NOT NULL,
  started_at TEXT NOT NULL,
  ended_at TEXT,
  completed INTEGER NOT NULL DEFAULT 0,
  completions TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return apperrors.Storage("create sessions table", err)
	}
	return nil
}

const sessionColumns = `id, routine_id, started_at, ended_at, completed, completions`

func (s *SQLiteSessionStore) GetAll(ctx context.Context) ([]domain.SessionLog, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY started_at DESC`)
	if err != nil {
		return nil, apperrors.Storage("list sessions", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (s *SQLiteSessionStore) GetByID(ctx context.Context, id string) (domain.SessionLog, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SessionLog{}, apperrors.NotFound("session", id)
	}
	if err != nil {
		return domain.SessionLog{}, apperrors.Storage("get session", err)
	}
	return session, nil
}

// Timestamps are stored as RFC 3339 in the local zone, so the first ten
// characters of started_at are the local calendar date.
func (s *SQLiteSessionStore) GetByDate(ctx context.Context, dateISO string) ([]domain.SessionLog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE substr(started_at, 1, 10) = ? ORDER BY started_at DESC`,
		dateISO)
	if err != nil {
		return nil, apperrors.Storage("list sessions by date", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (s *SQLiteSessionStore) GetByDateRange(ctx context.Context, startISO, endISO string) ([]domain.SessionLog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE substr(started_at, 1, 10) BETWEEN ? AND ? ORDER BY started_at DESC`,
		startISO, endISO)
	if err != nil {
		return nil, apperrors.Storage("list sessions by date range", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (s *SQLiteSessionStore) Save(ctx context.Context, session domain.SessionLog) error {
	return s.write(ctx, "save session", session)
}

func (s *SQLiteSessionStore) Update(ctx context.Context, session domain.SessionLog) error {
	return s.write(ctx, "update session", session)
}

func (s *SQLiteSessionStore) write(ctx context.Context, op string, session domain.SessionLog) error {
	const stmt = `
INSERT INTO sessions (` + sessionColumns + `)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  routine_id=excluded.routine_id,
  started_at=excluded.started_at,
  ended_at=excluded.ended_at,
  completed=excluded.completed,
  completions=excluded.completions;
`
	var endedAt sql.NullString
	if !session.EndedAt.IsZero() {
		endedAt = sql.NullString{String: session.EndedAt.Format(time.RFC3339), Valid: true}
	}
	payload, err := json.Marshal(completionRecords(session.Completions))
	if err != nil {
		return apperrors.Storage(op, err)
	}
	_, err = s.db.ExecContext(ctx, stmt,
		session.ID,
		session.RoutineID,
		session.StartedAt.Format(time.RFC3339),
		endedAt,
		boolToInt(session.Completed),
		string(payload),
	)
	if err != nil {
		return apperrors.Storage(op, err)
	}
	return nil
}

func (s *SQLiteSessionStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return apperrors.Storage("delete session", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete session", err)
	}
	if affected == 0 {
		return apperrors.NotFound("session", id)
	}
	return nil
}

type completionRecord struct {
	ExerciseID    string `json:"exercise_id"`
	Completed     bool   `json:"completed"`
	ActualReps    int    `json:"actual_reps"`
	ActualSeconds int    `json:"actual_seconds"`
}

func completionRecords(completions []domain.ExerciseCompletion) []completionRecord {
	out := make([]completionRecord, 0, len(completions))
	for _, c := range completions {
		out = append(out, completionRecord{
			ExerciseID:    c.ExerciseID,
			Completed:     c.Completed,
			ActualReps:    c.ActualReps,
			ActualSeconds: c.ActualSeconds,
		})
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.SessionLog, error) {
	var session domain.SessionLog
	var startedAt string
	var endedAt sql.NullString
	var completed int
	var completions string
	if err := row.Scan(&session.ID, &session.RoutineID, &startedAt, &endedAt, &completed, &completions); err != nil {
		return domain.SessionLog{}, err
	}
	started, err := time.ParseInLocation(time.RFC3339, startedAt, time.Local)
	if err != nil {
		return domain.SessionLog{}, err
	}
	session.StartedAt = started
	if endedAt.Valid {
		ended, err := time.ParseInLocation(time.RFC3339, endedAt.String, time.Local)
		if err != nil {
			return domain.SessionLog{}, err
		}
		session.EndedAt = ended
	}
	session.Completed = completed != 0
	var records []completionRecord
	if completions != "" {
		if err := json.Unmarshal([]byte(completions), &records); err != nil {
			return domain.SessionLog{}, err
		}
	}
	for _, r := range records {
		session.Completions = append(session.Completions, domain.ExerciseCompletion{
			ExerciseID:    r.ExerciseID,
			Completed:     r.Completed,
			ActualReps:    r.ActualReps,
			ActualSeconds: r.ActualSeconds,
		})
	}
	return session, nil
}

func scanSessions(rows *sql.Rows) ([]domain.SessionLog, error) {
	out := make([]domain.SessionLog, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, apperrors.Storage("scan session", err)
		}
		out = append(out, session)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("iterate sessions", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
