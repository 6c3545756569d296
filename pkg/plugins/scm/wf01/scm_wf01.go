// Package wf01 implements SCM-WF01, static security screening.
package wf01

import (
	"time"

	"github.com/electric-power/algo-service/pkg/algorithm"
	"github.com/electric-power/algo-service/pkg/types"
)

type SecurityScreening struct{}

func (a *SecurityScreening) Meta() types.SchemeInfo {
	return types.SchemeInfo{
		Code:         "SCM-WF01",
		Name:         "Security Check - Static Screening",
		Description:  "Static security screening over the operating snapshot",
		ResourceType: types.ResourceCPU,
	}
}

func (a *SecurityScreening) Execute(ctx *algorithm.Context) (map[string]any, error) {
	ctx.Logger.Info().Str("task_id", ctx.TaskID).Msg("SCM-WF01 started")

	if err := ctx.ReportProgress(10, "Loading snapshot..."); err != nil {
		return nil, err
	}
	time.Sleep(500 * time.Millisecond)

	if err := ctx.ReportProgress(50, "Screening branches..."); err != nil {
		return nil, err
	}
	time.Sleep(time.Second)

	if err := ctx.ReportProgress(85, "Summarizing..."); err != nil {
		return nil, err
	}

	return map[string]any{
		"branches_screened": 420,
		"overloads":         0,
		"rows":              ctx.Data.Len(),
		"demo":              true,
	}, nil
}

// Register adds the scheme to the algorithm registry.
func Register() {
	algorithm.Register(&SecurityScreening{})
}
