package scoring

// CognitiveROI measures retention achieved per hour of study:
// recall_percent / study_hours. Defined as 0 when study_hours is zero or
// negative (convention, not an error).
func CognitiveROI(recallPercent, studyHours float64) float64 {
	if studyHours <= 0 {
		return 0.0
	}
	return recallPercent / studyHours
}

// performanceBands maps total-index floors to category labels, highest
// first.
var performanceBands = []struct {
	floor       int
	label       string
	description string
}{
	{90, "Elite", "Exceptional cognitive performance"},
	{80, "Excellent", "High cognitive efficiency"},
	{70, "Good", "Solid performance with room for improvement"},
	{60, "Fair", "Moderate performance - focus on key areas"},
	{50, "Below Average", "Significant improvement needed"},
}

// PerformanceCategory returns the label and human-readable description for
// a total index.
func PerformanceCategory(totalIndex int) (label, description string) {
	for _, band := range performanceBands {
		if totalIndex >= band.floor {
			return band.label, band.description
		}
	}
	return "Poor", "Critical intervention required"
}
