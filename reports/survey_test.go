package reports

import (
	"testing"
	"time"

	"github.com/parkdash/models"
)

func TestSummarizeSurvey(t *testing.T) {
	sent1 := time.Date(2024, 12, 20, 8, 0, 0, 0, time.UTC)
	sent2 := time.Date(2024, 11, 15, 8, 0, 0, 0, time.UTC)
	responses := []models.SurveyResponse{
		{NumericCSI: fptr(5), NumericWillReturn: fptr(5), SentimentPrimaryReason: "Positive", CampSentOn: &sent1},
		{NumericCSI: fptr(4), NumericWillReturn: fptr(4), SentimentPrimaryReason: "Positive", CampSentOn: &sent1},
		{NumericCSI: fptr(2), NumericWillReturn: fptr(1), SentimentPrimaryReason: "Negative", CampSentOn: &sent2},
		{NumericCSI: fptr(5), SentimentPrimaryReason: "Neutral"},
		{SentimentPrimaryReason: ""},
	}

	s := SummarizeSurvey(responses)

	if s.Responses != 5 {
		t.Fatalf("Responses = %d, want 5", s.Responses)
	}
	if s.CSATScore != 75 {
		t.Fatalf("CSATScore = %v, want 75 (3 of 4 rated >= 4)", s.CSATScore)
	}
	if s.AvgCSI != 4 {
		t.Fatalf("AvgCSI = %v, want 4", s.AvgCSI)
	}
	if s.AvgWillReturn != 10.0/3 {
		t.Fatalf("AvgWillReturn = %v, want %v", s.AvgWillReturn, 10.0/3)
	}

	if s.Sentiment.Positive != 2 || s.Sentiment.Neutral != 1 || s.Sentiment.Negative != 1 {
		t.Fatalf("Sentiment = %+v", s.Sentiment)
	}

	wantDist := []ScoreCount{{Score: 2, Count: 1}, {Score: 4, Count: 1}, {Score: 5, Count: 2}}
	if len(s.CSIDistribution) != len(wantDist) {
		t.Fatalf("CSIDistribution = %+v", s.CSIDistribution)
	}
	for i, w := range wantDist {
		if s.CSIDistribution[i] != w {
			t.Fatalf("CSIDistribution[%d] = %+v, want %+v", i, s.CSIDistribution[i], w)
		}
	}

	wantPeriods := []string{"15-11-2024", "20-12-2024"}
	if len(s.Periods) != 2 || s.Periods[0] != wantPeriods[0] || s.Periods[1] != wantPeriods[1] {
		t.Fatalf("Periods = %v, want %v", s.Periods, wantPeriods)
	}
}

func TestSummarizeSurveyEmpty(t *testing.T) {
	s := SummarizeSurvey(nil)
	if s.Responses != 0 || s.CSATScore != 0 || s.AvgCSI != 0 {
		t.Fatalf("empty survey summary should be zero: %+v", s)
	}
	if len(s.CSIDistribution) != 0 || len(s.Periods) != 0 {
		t.Fatalf("empty survey summary has data: %+v", s)
	}
}
