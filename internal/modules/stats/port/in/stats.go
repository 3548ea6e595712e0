package in

import (
	"context"

	"limber/internal/modules/stats/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.StatisticsOutput, error)
}
