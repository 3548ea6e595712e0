package domain

import (
	"strings"

	apperrors "limber/internal/platform/errors"
)

type Category string

const (
	CategoryMobility Category = "mobility"
	CategoryStrength Category = "strength"
	CategoryBalance  Category = "balance"
	CategoryStretch  Category = "stretch"
	CategoryBreath   Category = "breath"
)

type Mode string

const (
	ModeReps     Mode = "reps"
	ModeDuration Mode = "duration"
)

// Exercise is an immutable catalog entry. Exactly one of TargetReps and
// TargetSeconds is set, selected by Mode.
type Exercise struct {
	ID                string
	Name              string
	Description       string
	Category          Category
	Mode              Mode
	TargetReps        int
	TargetSeconds     int
	Sets              int
	RestSeconds       int
	Muscles           []string
	Steps             []string
	FormCues          []string
	Contraindications []string
	Easier            string
	Harder            string
	Image             string
}

func (c Category) Validate() error {
	switch c {
	case CategoryMobility, CategoryStrength, CategoryBalance, CategoryStretch, CategoryBreath:
		return nil
	default:
		return apperrors.Invalid("unsupported category %q", string(c))
	}
}

// Validate checks the catalog entry in a fixed order: name, description,
// category, then the exactly-one-of reps/duration rule. The populated target
// must be the one Mode selects. The first failing check's error is returned.
func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return apperrors.Invalid("exercise name is required")
	}
	if strings.TrimSpace(e.Description) == "" {
		return apperrors.Invalid("exercise description is required")
	}
	if err := e.Category.Validate(); err != nil {
		return err
	}
	hasReps := e.TargetReps > 0
	hasDuration := e.TargetSeconds > 0
	if hasReps == hasDuration {
		return apperrors.Invalid("exercise %q must set exactly one of reps or duration", e.Name)
	}
	switch e.Mode {
	case ModeReps:
		if !hasReps {
			return apperrors.Invalid("rep based exercise %q must set a rep target", e.Name)
		}
	case ModeDuration:
		if !hasDuration {
			return apperrors.Invalid("duration based exercise %q must set a seconds target", e.Name)
		}
	default:
		return apperrors.Invalid("unsupported mode %q", string(e.Mode))
	}
	return nil
}
