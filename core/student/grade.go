package student

// Grade is a letter bucket derived from a score or an average.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"

	// GradeNone marks a student whose average cannot be computed (no scores).
	GradeNone Grade = NotAvailable
)

// PassingScore is the minimum average counted as passing.
const PassingScore = 60

var (
	// Grades lists every letter grade in display order.
	Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

	gradeThresholds = []struct {
		min   float64
		grade Grade
	}{
		{90, GradeA},
		{80, GradeB},
		{70, GradeC},
		{PassingScore, GradeD},
	}

	gradeColors = map[Grade]string{
		GradeA:    "#10b981",
		GradeB:    "#3b82f6",
		GradeC:    "#f59e0b",
		GradeD:    "#f97316",
		GradeF:    "#ef4444",
		GradeNone: "#9ca3af",
	}
)

// Classify maps any score to its letter grade. Out of range values are not clamped.
func Classify(score float64) Grade {
	for _, th := range gradeThresholds {
		if score >= th.min {
			return th.grade
		}
	}
	return GradeF
}

// Color returns the display color of the grade.
func (g Grade) Color() string {
	if c, ok := gradeColors[g]; ok {
		return c
	}
	return gradeColors[GradeNone]
}

// GradeColor returns the display color of the grade of score.
func GradeColor(score float64) string {
	return Classify(score).Color()
}
