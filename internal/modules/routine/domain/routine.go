package domain

import (
	"strings"
	"time"

	apperrors "limber/internal/platform/errors"
)

type Kind string

const (
	KindMorning Kind = "morning"
	KindEvening Kind = "evening"
	KindCustom  Kind = "custom"
)

// Routine is a named ordered list of exercise ids. The two default kinds are
// seeded once and can never be deleted.
type Routine struct {
	ID          string
	Name        string
	Kind        Kind
	ExerciseIDs []string
	CreatedAt   time.Time
}

func (k Kind) Validate() error {
	switch k {
	case KindMorning, KindEvening, KindCustom:
		return nil
	default:
		return apperrors.Invalid("unsupported routine kind %q", string(k))
	}
}

// Default reports whether the routine is one of the permanent seeded kinds.
func (k Kind) Default() bool {
	return k == KindMorning || k == KindEvening
}

func (r Routine) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.Invalid("routine name is required")
	}
	if len(r.ExerciseIDs) == 0 {
		return apperrors.Invalid("routine needs at least one exercise")
	}
	return r.Kind.Validate()
}
