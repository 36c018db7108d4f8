package entities

// PredictionOutcome is the raw classification returned by the inference service.
type PredictionOutcome struct {
	Label      string  `json:"predicted_class"`
	Confidence float64 `json:"confidence"`
}

// DiseaseProfile holds descriptive metadata for a disease label.
type DiseaseProfile struct {
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	CausedBy    string   `json:"caused_by"`
	Prevention  []string `json:"prevention"`
}

// Medicine is a single treatment recommendation.
type Medicine struct {
	Name            string `json:"name"`
	ApplicationRate string `json:"application_rate"`
	Frequency       string `json:"frequency"`
}

// TreatmentCatalog lists recommended medicines for a disease label.
type TreatmentCatalog struct {
	Medicines []Medicine `json:"recommended_medicines"`
}

// AnalysisResult is the merged, normalized output of one scan analysis.
// Disease is uppercase-normalized and Confidence is a percentage (0-100)
// rounded to two decimals.
type AnalysisResult struct {
	Disease     string     `json:"disease"`
	Confidence  float64    `json:"confidence"`
	Healthy     bool       `json:"healthy"`
	Description string     `json:"description"`
	Symptoms    []string   `json:"symptoms"`
	Causes      []string   `json:"causes"`
	Prevention  []string   `json:"prevention"`
	Medicines   []Medicine `json:"medicines"`
}

// FailedAnalysisResult is the generic failure record surfaced when the
// pipeline aborts. Partial data from completed stages is never exposed.
func FailedAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Disease:     "Analysis Failed",
		Confidence:  0,
		Healthy:     false,
		Description: "",
		Symptoms:    []string{},
		Causes:      []string{},
		Prevention:  []string{},
		Medicines:   []Medicine{},
	}
}
