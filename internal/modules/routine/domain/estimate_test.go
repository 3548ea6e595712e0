package domain_test

import (
	"testing"

	"limber/internal/modules/routine/domain"
)

func TestEstimateDurationMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		items []domain.PlanItem
		want  int
	}{
		{
			name: "single duration item rounds up",
			items: []domain.PlanItem{
				{Mode: domain.PlanModeDuration, TargetSeconds: 61},
			},
			want: 2,
		},
		{
			name: "single reps item",
			items: []domain.PlanItem{
				{Mode: domain.PlanModeReps, TargetReps: 10},
			},
			want: 1,
		},
		{
			name: "rest counted between items only",
			// 60 + 60 + 60 work, 2 gaps of 10: 200s total.
			items: []domain.PlanItem{
				{Mode: domain.PlanModeDuration, TargetSeconds: 60},
				{Mode: domain.PlanModeDuration, TargetSeconds: 60},
				{Mode: domain.PlanModeDuration, TargetSeconds: 60},
			},
			want: 4,
		},
		{
			name: "mixed modes",
			// 12*3 + 45 work plus one 10s gap: 91s.
			items: []domain.PlanItem{
				{Mode: domain.PlanModeReps, TargetReps: 12},
				{Mode: domain.PlanModeDuration, TargetSeconds: 45},
			},
			want: 2,
		},
		{
			name:  "empty playlist",
			items: nil,
			want:  0,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.EstimateDurationMinutes(tc.items); got != tc.want {
				t.Fatalf("expected %d minutes, got %d", tc.want, got)
			}
		})
	}
}
