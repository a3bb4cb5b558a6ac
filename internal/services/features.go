package services

// SkillKeys is the canonical listing order of the 17 résumé skill scores.
// TraitKeys is the canonical listing order of the 10 trait scores.
// Together they define the feature-vector layout the role classifier was
// trained on: 17 technical values followed by 10 trait values, 27 in total.
// The classifier consumes positions, not names, so reordering either slice
// silently corrupts predictions. These slices are the single source of
// truth for that order; nothing else may enumerate the keys.
var SkillKeys = []string{
	"Database Fundamentals",
	"Computer Architecture",
	"Distributed Computing Systems",
	"Cyber Security",
	"Networking",
	"Software Development",
	"Programming Skills",
	"Project Management",
	"Computer Forensics Fundamentals",
	"Technical Communication",
	"AI/ML",
	"Software Engineering",
	"Business Analysis",
	"Communication skills",
	"Data Science",
	"Troubleshooting skills",
	"Graphics Designing",
}

var TraitKeys = []string{
	TraitExtraversion,
	TraitAgreeableness,
	TraitConscientiousness,
	TraitEmotionalRange,
	TraitOpenness,
	TraitConservation,
	TraitOpennessToChange,
	TraitHedonism,
	TraitSelfEnhancement,
	TraitSelfTranscendence,
}

// FeatureVectorLen is the fixed classifier input length.
var FeatureVectorLen = len(SkillKeys) + len(TraitKeys)

// AssembleFeatureVector flattens the technical and trait score sets into the
// classifier's fixed-order vector. A missing key fails with
// MissingFieldError naming it; values are never defaulted, because a silent
// zero shifts every later position and corrupts the prediction.
func AssembleFeatureVector(technical map[string]int, traits map[string]float64) ([]float64, error) {
	features := make([]float64, 0, FeatureVectorLen)

	for _, key := range SkillKeys {
		v, ok := technical[key]
		if !ok {
			return nil, &MissingFieldError{Field: key}
		}
		features = append(features, float64(v))
	}

	for _, key := range TraitKeys {
		v, ok := traits[key]
		if !ok {
			return nil, &MissingFieldError{Field: key}
		}
		features = append(features, v)
	}

	return features, nil
}
