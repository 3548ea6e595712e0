package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"limber/internal/modules/routine/domain"
	routineout "limber/internal/modules/routine/port/out"
	apperrors "limber/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteRoutineStore struct {
	db *sql.DB
}

func NewSQLiteRoutineStore(db *sql.DB) (routineout.RoutineStore, error) {
	store := &SQLiteRoutineStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteRoutineStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS routines (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  kind TEXT NOT NULL,
  exercise_ids TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_routines_kind ON routines(kind);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return apperrors.Storage("create routines table", err)
	}
	return nil
}

func (s *SQLiteRoutineStore) GetAll(ctx context.Context) ([]domain.Routine, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, kind, exercise_ids, created_at FROM routines ORDER BY created_at ASC`)
	if err != nil {
		return nil, apperrors.Storage("list routines", err)
	}
	defer rows.Close()

	out := make([]domain.Routine, 0)
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, apperrors.Storage("scan routine", err)
		}
		out = append(out, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("iterate routines", err)
	}
	return out, nil
}

func (s *SQLiteRoutineStore) GetByID(ctx context.Context, id string) (domain.Routine, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, kind, exercise_ids, created_at FROM routines WHERE id = ?`, id)
	routine, err := scanRoutine(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Routine{}, apperrors.NotFound("routine", id)
	}
	if err != nil {
		return domain.Routine{}, apperrors.Storage("get routine", err)
	}
	return routine, nil
}

func (s *SQLiteRoutineStore) GetByKind(ctx context.Context, kind domain.Kind) (domain.Routine, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, kind, exercise_ids, created_at FROM routines WHERE kind = ? LIMIT 1`, string(kind))
	routine, err := scanRoutine(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Routine{}, apperrors.NotFound("routine kind", string(kind))
	}
	if err != nil {
		return domain.Routine{}, apperrors.Storage("get routine by kind", err)
	}
	return routine, nil
}

func (s *SQLiteRoutineStore) Save(ctx context.Context, routine domain.Routine) error {
	return s.write(ctx, "save routine", routine)
}

func (s *SQLiteRoutineStore) Update(ctx context.Context, routine domain.Routine) error {
	return s.write(ctx, "update routine", routine)
}

func (s *SQLiteRoutineStore) write(ctx context.Context, op string, routine domain.Routine) error {
	ids, err := json.Marshal(routine.ExerciseIDs)
	if err != nil {
		return apperrors.Storage(op, err)
	}
	const stmt = `
INSERT INTO routines (id, name, kind, exercise_ids, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  kind=excluded.kind,
  exercise_ids=excluded.exercise_ids,
  created_at=excluded.created_at;
`
	if _, err := s.db.ExecContext(ctx, stmt,
		routine.ID,
		routine.Name,
		string(routine.Kind),
		string(ids),
		routine.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return apperrors.Storage(op, err)
	}
	return nil
}

func (s *SQLiteRoutineStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM routines WHERE id = ?`, id)
	if err != nil {
		return apperrors.Storage("delete routine", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete routine", err)
	}
	if affected == 0 {
		return apperrors.NotFound("routine", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoutine(row rowScanner) (domain.Routine, error) {
	var r domain.Routine
	var kind, ids, createdAt string
	if err := row.Scan(&r.ID, &r.Name, &kind, &ids, &createdAt); err != nil {
		return domain.Routine{}, err
	}
	r.Kind = domain.Kind(kind)
	if err := json.Unmarshal([]byte(ids), &r.ExerciseIDs); err != nil {
		return domain.Routine{}, err
	}
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return domain.Routine{}, err
	}
	r.CreatedAt = parsed
	return r, nil
}
