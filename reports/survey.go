package reports

import (
	"sort"

	"github.com/parkdash/models"
)

// ScoreCount is one bar of a score distribution.
type ScoreCount struct {
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// SentimentCounts are the three sentiment scorecards.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// SurveySummary backs the customer-experience dashboard: satisfaction score
// and distribution, intent to return, sentiment scorecards, and the survey
// periods available for filtering.
type SurveySummary struct {
	Responses       int             `json:"responses"`
	CSATScore       float64         `json:"csat_score"`
	AvgCSI          float64         `json:"avg_csi"`
	CSIDistribution []ScoreCount    `json:"csi_distribution"`
	AvgWillReturn   float64         `json:"avg_will_return"`
	WillReturn      []ScoreCount    `json:"will_return_distribution"`
	Sentiment       SentimentCounts `json:"sentiment"`
	Periods         []string        `json:"periods"`
}

// SummarizeSurvey aggregates survey responses. CSAT is the share of CSI
// ratings of 4 or above, in percent; averages skip null scores; periods are
// the distinct campaign send dates formatted dd-mm-yyyy, sorted.
func SummarizeSurvey(responses []models.SurveyResponse) SurveySummary {
	s := SurveySummary{Responses: len(responses)}

	csiTotal, csiCount, satisfied := 0.0, 0, 0
	cliTotal, cliCount := 0.0, 0
	csiDist := make(map[float64]int)
	cliDist := make(map[float64]int)
	periods := make(map[string]bool)

	for _, r := range responses {
		if r.NumericCSI != nil {
			csiTotal += *r.NumericCSI
			csiCount++
			csiDist[*r.NumericCSI]++
			if *r.NumericCSI >= 4 {
				satisfied++
			}
		}
		if r.NumericWillReturn != nil {
			cliTotal += *r.NumericWillReturn
			cliCount++
			cliDist[*r.NumericWillReturn]++
		}
		switch r.SentimentPrimaryReason {
		case "Positive":
			s.Sentiment.Positive++
		case "Neutral":
			s.Sentiment.Neutral++
		case "Negative":
			s.Sentiment.Negative++
		}
		if r.CampSentOn != nil {
			periods[r.CampSentOn.Format("02-01-2006")] = true
		}
	}

	if csiCount > 0 {
		s.CSATScore = float64(satisfied) / float64(csiCount) * 100
		s.AvgCSI = csiTotal / float64(csiCount)
	}
	if cliCount > 0 {
		s.AvgWillReturn = cliTotal / float64(cliCount)
	}
	s.CSIDistribution = sortedScoreCounts(csiDist)
	s.WillReturn = sortedScoreCounts(cliDist)

	for p := range periods {
		s.Periods = append(s.Periods, p)
	}
	sort.Strings(s.Periods)
	return s
}

func sortedScoreCounts(dist map[float64]int) []ScoreCount {
	out := make([]ScoreCount, 0, len(dist))
	for score, count := range dist {
		out = append(out, ScoreCount{Score: score, Count: count})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Score < out[b].Score })
	return out
}
