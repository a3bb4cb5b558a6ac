package services

// The quiz has 71 items: 50 personality statements rated 1-5 followed by
// 21 values statements rated 1-6. Item order is fixed by the survey and is
// never re-indexed; every index below refers to that fixed order.
const (
	QuizLength = 71

	personalityItems  = 50
	personalityRatMin = 1
	personalityRatMax = 5
	valuesRatMin      = 1
	valuesRatMax      = 6
)

// Canonical trait names. Their listing order in TraitKeys (features.go) is
// part of the classifier contract.
const (
	TraitExtraversion      = "extraversion"
	TraitAgreeableness     = "agreeableness"
	TraitConscientiousness = "conscientiousness"
	TraitEmotionalRange    = "emotionalRange"
	TraitOpenness          = "openness"
	TraitConservation      = "conservation"
	TraitOpennessToChange  = "opennessToChange"
	TraitHedonism          = "hedonism"
	TraitSelfEnhancement   = "selfEnhancement"
	TraitSelfTranscendence = "selfTranscendence"
)

// personalityParams describes one Big Five style trait. Each trait draws on
// ten items: one per 5-item block, at offset `column` within the block.
// Signs encode reverse-scored items. Min/max are empirically chosen
// calibration bounds for linear normalization; they were carried over from
// the calibrated survey and should only change together with the classifier.
type personalityParams struct {
	trait    string
	column   int
	base     float64
	signs    [10]float64
	min, max float64
}

var personalityTable = []personalityParams{
	{TraitExtraversion, 0, 20, [10]float64{1, -1, 1, -1, 1, -1, 1, -1, 1, -1}, -30, 70},
	{TraitAgreeableness, 1, 14, [10]float64{-1, 1, -1, 1, -1, 1, -1, 1, -1, -1}, -36, 64},
	{TraitConscientiousness, 2, 14, [10]float64{1, -1, 1, -1, 1, -1, 1, -1, 1, 1}, -36, 64},
	{TraitEmotionalRange, 3, 38, [10]float64{-1, 1, -1, 1, -1, 1, 1, 1, 1, 1}, -12, 88},
	{TraitOpenness, 4, 8, [10]float64{1, -1, 1, -1, 1, -1, 1, 1, 1, 1}, -42, 58},
}

// valueItems maps each Schwartz value subscore to the quiz indices it
// averages (items 50-70).
var valueItems = map[string][]int{
	"universalism":  {51, 56, 67},
	"benevolence":   {60, 66},
	"conformity":    {55, 64},
	"tradition":     {58, 68},
	"security":      {53, 65},
	"power":         {52, 63},
	"achievement":   {54, 62},
	"hedonism":      {59, 70},
	"stimulation":   {57, 69},
	"selfDirection": {50, 61},
}

// Normalization bounds for the values-derived traits. Composites average
// 1-5-ish subscores; hedonism is reported raw on the 1-6 item scale.
const (
	compositeMin = 1.0
	compositeMax = 5.0
	hedonismMin  = 1.0
	hedonismMax  = 6.0
)

// ScoringService turns raw quiz ratings into normalized trait scores.
// Pure and deterministic: identical ratings always produce identical output.
type ScoringService interface {
	Score(ratings []int) (map[string]float64, error)
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score validates the 71 ratings and computes the ten trait scores, each
// linearly normalized into [0,1].
func (s *scoringService) Score(ratings []int) (map[string]float64, error) {
	if err := validateRatings(ratings); err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(TraitKeys))

	for _, p := range personalityTable {
		sum := p.base
		for block := 0; block < 10; block++ {
			sum += p.signs[block] * float64(ratings[p.column+block*5])
		}
		scores[p.trait] = normalize(sum, p.min, p.max)
	}

	values := make(map[string]float64, len(valueItems))
	for name, indices := range valueItems {
		var sum float64
		for _, i := range indices {
			sum += float64(ratings[i])
		}
		values[name] = sum / float64(len(indices))
	}

	conservation := (values["security"] + values["conformity"] + values["tradition"]) / 3
	opennessToChange := (values["selfDirection"] + values["stimulation"]) / 2
	selfEnhancement := (values["achievement"] + values["power"]) / 2
	selfTranscendence := (values["benevolence"] + values["universalism"]) / 2

	scores[TraitConservation] = normalize(conservation, compositeMin, compositeMax)
	scores[TraitOpennessToChange] = normalize(opennessToChange, compositeMin, compositeMax)
	scores[TraitSelfEnhancement] = normalize(selfEnhancement, compositeMin, compositeMax)
	scores[TraitSelfTranscendence] = normalize(selfTranscendence, compositeMin, compositeMax)
	scores[TraitHedonism] = normalize(values["hedonism"], hedonismMin, hedonismMax)

	return scores, nil
}

func validateRatings(ratings []int) error {
	if len(ratings) != QuizLength {
		return NewValidationError("quiz must contain exactly %d ratings, got %d", QuizLength, len(ratings))
	}

	for i, r := range ratings {
		min, max := personalityRatMin, personalityRatMax
		if i >= personalityItems {
			min, max = valuesRatMin, valuesRatMax
		}
		if r < min || r > max {
			return NewValidationError("rating at index %d must be between %d and %d, got %d", i, min, max, r)
		}
	}

	return nil
}

// normalize linearly maps score into [0,1] over the trait's calibration
// bounds. Overshoot is clamped: a composite fed by top-rated 1-6 items can
// exceed its calibration max of 5.
func normalize(score, min, max float64) float64 {
	n := (score - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
