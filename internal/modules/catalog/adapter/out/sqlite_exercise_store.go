package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"limber/internal/modules/catalog/domain"
	catalogout "limber/internal/modules/catalog/port/out"
	apperrors "limber/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteExerciseStore struct {
	db *sql.DB
}

func NewSQLiteExerciseStore(db *sql.DB) (catalogout.ExerciseStore, error) {
	store := &SQLiteExerciseStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// OpenDB opens (creating if needed) the shared application database. The
// process owns its lifecycle: opened once at startup, closed at shutdown.
func OpenDB(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

func (s *SQLiteExerciseStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS exercises (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  category TEXT NOT NULL,
  mode TEXT NOT NULL,
  target_reps INTEGER NOT NULL,
  target_seconds INTEGER NOT NULL,
  sets INTEGER NOT NULL,
  rest_seconds INTEGER NOT NULL,
  muscles TEXT NOT NULL,
  steps TEXT NOT NULL,
  form_cues TEXT NOT NULL,
  contraindications TEXT NOT NULL,
  easier TEXT,
  harder TEXT,
  image TEXT
);
CREATE INDEX IF NOT EXISTS idx_exercises_category ON exercises(category);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return apperrors.Storage("create exercises table", err)
	}
	return nil
}

const exerciseColumns = `id, name, description, category, mode, target_reps, target_seconds, sets, rest_seconds, muscles, steps, form_cues, contraindications, easier, harder, image`

func (s *SQLiteExerciseStore) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY name ASC`)
	if err != nil {
		return nil, apperrors.Storage("list exercises", err)
	}
	defer rows.Close()
	return scanExercises(rows)
}

func (s *SQLiteExerciseStore) GetByID(ctx context.Context, id string) (domain.Exercise, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = ?`, id)
	exercise, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Exercise{}, apperrors.NotFound("exercise", id)
	}
	if err != nil {
		return domain.Exercise{}, apperrors.Storage("get exercise", err)
	}
	return exercise, nil
}

func (s *SQLiteExerciseStore) GetByCategory(ctx context.Context, category domain.Category) ([]domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE category = ? ORDER BY name ASC`, string(category))
	if err != nil {
		return nil, apperrors.Storage("list exercises by category", err)
	}
	defer rows.Close()
	return scanExercises(rows)
}

func (s *SQLiteExerciseStore) Save(ctx context.Context, exercise domain.Exercise) error {
	return s.write(ctx, "save exercise", exercise)
}

func (s *SQLiteExerciseStore) Update(ctx context.Context, exercise domain.Exercise) error {
	return s.write(ctx, "update exercise", exercise)
}

func (s *SQLiteExerciseStore) write(ctx context.Context, op string, exercise domain.Exercise) error {
	const stmt = `
INSERT INTO exercises (` + exerciseColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  description=excluded.description,
  category=excluded.category,
  mode=excluded.mode,
  target_reps=excluded.target_reps,
  target_seconds=excluded.target_seconds,
  sets=excluded.sets,
  rest_seconds=excluded.rest_seconds,
  muscles=excluded.muscles,
  steps=excluded.steps,
  form_cues=excluded.form_cues,
  contraindications=excluded.contraindications,
  easier=excluded.easier,
  harder=excluded.harder,
  image=excluded.image;
`
	_, err := s.db.ExecContext(ctx, stmt,
		exercise.ID,
		exercise.Name,
		exercise.Description,
		string(exercise.Category),
		string(exercise.Mode),
		exercise.TargetReps,
		exercise.TargetSeconds,
		exercise.Sets,
		exercise.RestSeconds,
		mustJSON(exercise.Muscles),
		mustJSON(exercise.Steps),
		mustJSON(exercise.FormCues),
		mustJSON(exercise.Contraindications),
		exercise.Easier,
		exercise.Harder,
		exercise.Image,
	)
	if err != nil {
		return apperrors.Storage(op, err)
	}
	return nil
}

func (s *SQLiteExerciseStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return apperrors.Storage("delete exercise", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete exercise", err)
	}
	if affected == 0 {
		return apperrors.NotFound("exercise", id)
	}
	return nil
}

func (s *SQLiteExerciseStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&count); err != nil {
		return 0, apperrors.Storage("count exercises", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (domain.Exercise, error) {
	var e domain.Exercise
	var category, mode string
	var muscles, steps, formCues, contraindications string
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &category, &mode,
		&e.TargetReps, &e.TargetSeconds, &e.Sets, &e.RestSeconds,
		&muscles, &steps, &formCues, &contraindications,
		&e.Easier, &e.Harder, &e.Image,
	)
	if err != nil {
		return domain.Exercise{}, err
	}
	e.Category = domain.Category(category)
	e.Mode = domain.Mode(mode)
	if err := fromJSON(muscles, &e.Muscles); err != nil {
		return domain.Exercise{}, err
	}
	if err := fromJSON(steps, &e.Steps); err != nil {
		return domain.Exercise{}, err
	}
	if err := fromJSON(formCues, &e.FormCues); err != nil {
		return domain.Exercise{}, err
	}
	if err := fromJSON(contraindications, &e.Contraindications); err != nil {
		return domain.Exercise{}, err
	}
	return e, nil
}

func scanExercises(rows *sql.Rows) ([]domain.Exercise, error) {
	out := make([]domain.Exercise, 0)
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, apperrors.Storage("scan exercise", err)
		}
		out = append(out, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("iterate exercises", err)
	}
	return out, nil
}

func mustJSON(values []string) string {
	if values == nil {
		values = []string{}
	}
	payload, _ := json.Marshal(values)
	return string(payload)
}

func fromJSON(payload string, target *[]string) error {
	if payload == "" {
		*target = nil
		return nil
	}
	return json.Unmarshal([]byte(payload), target)
}
