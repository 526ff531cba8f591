package day19

import "github.com/katalvlaran/aoc2022/resource"

// BlueprintSummary is the reportable part of one Evaluation.
type BlueprintSummary struct {
	ID        int     `json:"id"`
	MaxGeodes int     `json:"max_geodes"`
	Quality   int     `json:"quality"`
	Examined  int     `json:"examined"`
	Pruned    int     `json:"pruned"`
	ElapsedMS float64 `json:"elapsed_ms"`
	// MaxOreCost is the largest ore cost of any robot.
	MaxOreCost int `json:"max_ore_cost"`
}

// Summary is a serialisable view of one EvaluateAll run.
type Summary struct {
	Minutes      int                `json:"minutes"`
	MaxBranches  int                `json:"max_branches"`
	Blueprints   []BlueprintSummary `json:"blueprints"`
	QualitySum   int                `json:"quality_sum"`
	GeodeProduct int                `json:"geode_product"`
}

// Summarize condenses evals, run at minutes with cfg, into a Summary.
func Summarize(evals []Evaluation, minutes int, cfg Config) Summary {
	s := Summary{
		Minutes:      minutes,
		MaxBranches:  cfg.MaxBranches,
		Blueprints:   make([]BlueprintSummary, 0, len(evals)),
		QualitySum:   QualitySum(evals),
		GeodeProduct: GeodeProduct(evals),
	}
	for _, e := range evals {
		s.Blueprints = append(s.Blueprints, BlueprintSummary{
			ID:         e.Blueprint.ID,
			MaxGeodes:  e.Result.Max,
			Quality:    e.Quality(),
			Examined:   e.Result.Examined,
			Pruned:     e.Result.Pruned,
			ElapsedMS:  float64(e.Elapsed.Microseconds()) / 1000,
			MaxOreCost: e.Blueprint.MaxCost(resource.Ore),
		})
	}

	return s
}
