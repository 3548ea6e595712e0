package in

import (
	"context"

	"limber/internal/modules/stats/dto"
	statsin "limber/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) (dto.StatisticsOutput, error) {
	return h.usecase.Overview(ctx)
}
