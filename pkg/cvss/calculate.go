package cvss

// Result is what downstream reporting receives for a scored vector
type Result struct {
	Score        float64  `json:"score"`
	Severity     Severity `json:"severity"`
	VectorString string   `json:"vector_string"`
}

// Calculate scores and classifies v
func Calculate(v Vector) (Result, error) {
	score, err := BaseScore(v)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Score:        score,
		Severity:     SeverityOf(score),
		VectorString: v.String(),
	}, nil
}

// CalculateFromString parses text and returns its score, severity and
// canonical vector string
func CalculateFromString(text string) (Result, error) {
	v, err := Parse(text)
	if err != nil {
		return Result{}, err
	}
	return Calculate(v)
}
