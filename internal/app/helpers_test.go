package app_test

import (
	"turbofanvpf/internal/app"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/report"
)

func reportRun(w *app.Wire, outcomes []domain.Outcome) report.Run {
	return report.NewRun(w.Polar, w.Target, outcomes)
}
