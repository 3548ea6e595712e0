package out

import (
	"embed"
	"encoding/json"
	"fmt"

	"limber/internal/modules/catalog/domain"
	catalogout "limber/internal/modules/catalog/port/out"
)

//go:embed seed/exercises.json
var seedFS embed.FS

type seedExercise struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Mode              string   `json:"mode"`
	TargetReps        int      `json:"target_reps"`
	TargetSeconds     int      `json:"target_seconds"`
	Sets              int      `json:"sets"`
	RestSeconds       int      `json:"rest_seconds"`
	Muscles           []string `json:"muscles"`
	Steps             []string `json:"steps"`
	FormCues          []string `json:"form_cues"`
	Contraindications []string `json:"contraindications"`
	Easier            string   `json:"easier"`
	Harder            string   `json:"harder"`
	Image             string   `json:"image"`
}

// EmbeddedSeedSource serves the definition list bundled into the binary.
type EmbeddedSeedSource struct{}

func NewEmbeddedSeedSource() catalogout.SeedSource {
	return EmbeddedSeedSource{}
}

func (EmbeddedSeedSource) Load() ([]domain.Exercise, error) {
	payload, err := seedFS.ReadFile("seed/exercises.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded seed: %w", err)
	}
	var raw []seedExercise
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode embedded seed: %w", err)
	}
	out := make([]domain.Exercise, 0, len(raw))
	for _, item := range raw {
		out = append(out, domain.Exercise{
			ID:                item.ID,
			Name:              item.Name,
			Description:       item.Description,
			Category:          domain.Category(item.Category),
			Mode:              domain.Mode(item.Mode),
			TargetReps:        item.TargetReps,
			TargetSeconds:     item.TargetSeconds,
			Sets:              item.Sets,
			RestSeconds:       item.RestSeconds,
			Muscles:           item.Muscles,
			Steps:             item.Steps,
			FormCues:          item.FormCues,
			Contraindications: item.Contraindications,
			Easier:            item.Easier,
			Harder:            item.Harder,
			Image:             item.Image,
		})
	}
	return out, nil
}
