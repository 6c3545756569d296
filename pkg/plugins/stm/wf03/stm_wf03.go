// Package wf03 implements STM-WF03, report generation.
package wf03

import (
	"time"

	"github.com/electric-power/algo-service/pkg/algorithm"
	"github.com/electric-power/algo-service/pkg/types"
)

type ReportGeneration struct{}

func (a *ReportGeneration) Meta() types.SchemeInfo {
	return types.SchemeInfo{
		Code:         "STM-WF03",
		Name:         "Digital Twin - Report Generation",
		Description:  "Simulation result visualization and report compilation",
		ResourceType: types.ResourceCPU,
	}
}

func (a *ReportGeneration) Execute(ctx *algorithm.Context) (map[string]any, error) {
	ctx.Logger.Info().Str("task_id", ctx.TaskID).Msg("STM-WF03 started")

	if err := ctx.ReportProgress(20, "Collecting simulation data..."); err != nil {
		return nil, err
	}
	time.Sleep(500 * time.Millisecond)

	if err := ctx.ReportProgress(50, "Generating charts..."); err != nil {
		return nil, err
	}
	time.Sleep(800 * time.Millisecond)

	if err := ctx.ReportProgress(80, "Compiling report..."); err != nil {
		return nil, err
	}
	time.Sleep(500 * time.Millisecond)

	return map[string]any{
		"report_id":        "RPT-2026-001",
		"pages":            15,
		"charts_generated": 8,
		"format":           "PDF",
		"demo":             true,
	}, nil
}

// Register adds the scheme to the algorithm registry.
func Register() {
	algorithm.Register(&ReportGeneration{})
}
