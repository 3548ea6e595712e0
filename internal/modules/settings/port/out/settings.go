package out

import (
	"context"

	"limber/internal/modules/settings/domain"
)

type SettingsStore interface {
	// Load returns ErrNotFound when no settings have been saved yet.
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}
