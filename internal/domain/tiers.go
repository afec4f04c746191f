package domain

// ScoreTier classifies a match score for display. Renderers map tiers to colors.
type ScoreTier string

const (
	TierNone      ScoreTier = ""
	TierExcellent ScoreTier = "excellent"
	TierGood      ScoreTier = "good"
	TierFair      ScoreTier = "fair"
	TierLow       ScoreTier = "low"
)

// Score thresholds, inclusive lower bounds.
const (
	ExcellentThreshold = 90
	GoodThreshold      = 75
	FairThreshold      = 60
)

// ScoreTierFor returns the tier of a score, or TierNone for a missing score.
func ScoreTierFor(score *float64) ScoreTier {
	if score == nil {
		return TierNone
	}
	switch s := *score; {
	case s >= ExcellentThreshold:
		return TierExcellent
	case s >= GoodThreshold:
		return TierGood
	case s >= FairThreshold:
		return TierFair
	default:
		return TierLow
	}
}

// StatusTone classifies a status as good news, bad news or neither.
type StatusTone string

const (
	TonePositive StatusTone = "positive"
	ToneNeutral  StatusTone = "neutral"
	ToneNegative StatusTone = "negative"
)

var statusTones = map[string]StatusTone{
	"shortlisted":  TonePositive,
	"interviewing": TonePositive,
	"hired":        TonePositive,
	"open":         TonePositive,
	"completed":    TonePositive,
	"rejected":     ToneNegative,
	"closed":       ToneNegative,
	"cancelled":    ToneNegative,
	"no_show":      ToneNegative,
}

// StatusToneFor returns the tone of a status. Unknown statuses are neutral.
func StatusToneFor(status string) StatusTone {
	if tone, ok := statusTones[status]; ok {
		return tone
	}
	return ToneNeutral
}
