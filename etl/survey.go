package etl

import (
	"io"
	"regexp"
	"strings"

	"github.com/parkdash/dataset"
	"github.com/parkdash/models"
)

// Canonical survey column names. The raw export repeats the full question
// text in its headers; the wording drifts between campaigns (the park name
// changes per unit), so headers are matched by pattern, first match wins.
const (
	ColCSI                    = "CSI"
	ColNumericCSI             = "Numeric_CSI"
	ColPrimaryReason          = "Primary Reason"
	ColTagsPrimaryReason      = "Tags_Primary Reason"
	ColSentimentPrimaryReason = "Sentiment_Primary Reason"
	ColNumericWillReturn      = "Numeric_Will Return"
	ColSyncOn                 = "Sync On-DateTime"
	ColSurveyName             = "Name"
	ColSurveyEmail            = "Email"
	ColSurveyPhone            = "Phone Number"
	ColCampaignID             = "Campaign Id"
	ColCampSentOn             = "Camp Sent On Date Time"
)

var surveyColumnPatterns = []struct {
	re        *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`^Group_Secara keseluruhan, seberapa puaskah`), ColCSI},
	{regexp.MustCompile(`^Numeric_Secara keseluruhan, seberapa puaskah`), ColNumericCSI},
	{regexp.MustCompile(`^Tags_What is the primary reason`), ColTagsPrimaryReason},
	{regexp.MustCompile(`^Sentiment_What is the primary reason`), ColSentimentPrimaryReason},
	{regexp.MustCompile(`^What is the primary reason`), ColPrimaryReason},
	{regexp.MustCompile(`^Numeric_Dari Pengalaman Anda`), ColNumericWillReturn},
}

// LoadSurvey reads a raw survey export and produces one SurveyResponse per
// row. Columns the export does not carry stay null; nothing here errors on
// shape, only on unreadable CSV text.
func LoadSurvey(r io.Reader) ([]models.SurveyResponse, error) {
	table, err := dataset.ReadCSV(r)
	if err != nil {
		return nil, err
	}

	canonical := resolveSurveyColumns(table)
	get := func(row int, name string) string {
		col, ok := canonical[name]
		if !ok {
			return ""
		}
		return strings.TrimSpace(table.Get(row, col))
	}

	responses := make([]models.SurveyResponse, 0, table.NumRows())
	for i := 0; i < table.NumRows(); i++ {
		resp := models.SurveyResponse{
			CSI:                    get(i, ColCSI),
			PrimaryReason:          get(i, ColPrimaryReason),
			TagsPrimaryReason:      get(i, ColTagsPrimaryReason),
			SentimentPrimaryReason: get(i, ColSentimentPrimaryReason),
			Name:                   get(i, ColSurveyName),
			Email:                  get(i, ColSurveyEmail),
			PhoneNumber:            get(i, ColSurveyPhone),
			CampaignID:             get(i, ColCampaignID),
		}
		if v, ok := parseNumber(get(i, ColNumericCSI)); ok {
			resp.NumericCSI = ptr(v)
		}
		if v, ok := parseNumber(get(i, ColNumericWillReturn)); ok {
			resp.NumericWillReturn = ptr(v)
		}
		// Sync timestamps are written day-first by the survey tool; the
		// campaign send time is recorded in UTC.
		if t, ok := ParseDate(get(i, ColSyncOn), true); ok {
			resp.SyncOn = &t
		}
		if t, ok := ParseDate(get(i, ColCampSentOn), false); ok {
			utc := t.UTC()
			resp.CampSentOn = &utc
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// resolveSurveyColumns maps canonical names to the actual header names of
// this export. Fixed-name columns resolve to themselves when present.
func resolveSurveyColumns(t *dataset.Table) map[string]string {
	resolved := make(map[string]string)
	for _, header := range t.Columns() {
		for _, p := range surveyColumnPatterns {
			if _, done := resolved[p.canonical]; done {
				continue
			}
			if p.re.MatchString(header) {
				resolved[p.canonical] = header
				break
			}
		}
	}
	for _, name := range []string{
		ColSyncOn, ColSurveyName, ColSurveyEmail, ColSurveyPhone,
		ColCampaignID, ColCampSentOn,
	} {
		if t.HasColumn(name) {
			resolved[name] = name
		}
	}
	return resolved
}
