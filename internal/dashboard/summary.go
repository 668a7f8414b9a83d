package dashboard

import "pod-dashboard/pkg/api"

// HighScoreThreshold is the exclusive lower bound for the high-demand and
// profitable counts.
const HighScoreThreshold = 70

// Summary holds the four score cards shown above the trend grid.
type Summary struct {
	Total        int     `json:"total"`
	AverageScore float64 `json:"average_score"`
	HighDemand   int     `json:"high_demand"`
	Profitable   int     `json:"profitable"`
}

// Summarize derives the aggregates from trends. It is recomputed on every
// render and does not depend on element order.
func Summarize(trends []api.Trend) Summary {
	sum := Summary{Total: len(trends)}
	if len(trends) == 0 {
		return sum
	}

	var total float64
	for _, t := range trends {
		total += t.OverallScore
		if t.DemandScore > HighScoreThreshold {
			sum.HighDemand++
		}
		if t.ProfitabilityScore > HighScoreThreshold {
			sum.Profitable++
		}
	}
	sum.AverageScore = total / float64(len(trends))
	return sum
}
