// Package wf03 implements SCM-WF03, stability margin assessment.
package wf03

import (
	"time"

	"github.com/electric-power/algo-service/pkg/algorithm"
	"github.com/electric-power/algo-service/pkg/types"
)

type StabilityMargin struct{}

func (a *StabilityMargin) Meta() types.SchemeInfo {
	return types.SchemeInfo{
		Code:         "SCM-WF03",
		Name:         "Security Check - Stability Margin",
		Description:  "Voltage and transient stability margin assessment",
		ResourceType: types.ResourceCPU,
	}
}

func (a *StabilityMargin) Execute(ctx *algorithm.Context) (map[string]any, error) {
	ctx.Logger.Info().Str("task_id", ctx.TaskID).Msg("SCM-WF03 started")

	if err := ctx.ReportProgress(15, "Building network model..."); err != nil {
		return nil, err
	}
	time.Sleep(600 * time.Millisecond)

	if err := ctx.ReportProgress(55, "Computing stability margins..."); err != nil {
		return nil, err
	}
	time.Sleep(time.Second)

	if err := ctx.ReportProgress(90, "Ranking weak buses..."); err != nil {
		return nil, err
	}

	return map[string]any{
		"margin_pct": 18.4,
		"weak_buses": []any{"Bus-17", "Bus-23"},
		"demo":       true,
	}, nil
}

// Register adds the scheme to the algorithm registry.
func Register() {
	algorithm.Register(&StabilityMargin{})
}
