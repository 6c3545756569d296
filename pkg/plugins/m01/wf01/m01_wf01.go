// Package wf01 implements M01_WF01, the GNN-assisted safety check.
package wf01

import (
	"time"

	"github.com/electric-power/algo-service/pkg/algorithm"
	"github.com/electric-power/algo-service/pkg/types"
)

type SafetyCheck struct{}

func (a *SafetyCheck) Meta() types.SchemeInfo {
	return types.SchemeInfo{
		Code:         "M01_WF01",
		Name:         "Hybrid Safety Check",
		Description:  "GNN screening with power-flow verification",
		ResourceType: types.ResourceGPU,
	}
}

func (a *SafetyCheck) Execute(ctx *algorithm.Context) (map[string]any, error) {
	limit := 0.8
	if v, ok := ctx.Params["load_limit"].(float64); ok {
		limit = v
	}

	ctx.Logger.Info().Str("task_id", ctx.TaskID).Msg("M01_WF01 started")

	if err := ctx.ReportProgress(10, "Loading snapshot..."); err != nil {
		return nil, err
	}
	time.Sleep(time.Second)

	if err := ctx.ReportProgress(30, "AI inference (GNN)..."); err != nil {
		return nil, err
	}
	predLoad := 0.85

	result := map[string]any{
		"is_safe":    true,
		"violations": []any{},
	}

	if predLoad > limit {
		ctx.Logger.Warn().Float64("pred_load", predLoad).Msg("high load detected, starting mechanism check")
		if err := ctx.ReportProgress(60, "Running power flow verification..."); err != nil {
			return nil, err
		}
		time.Sleep(2 * time.Second)
		result["is_safe"] = false
		result["violations"] = []any{"Line-A", "Transformer-B"}
	}

	return result, nil
}

// Register adds the scheme to the algorithm registry.
func Register() {
	algorithm.Register(&SafetyCheck{})
}
