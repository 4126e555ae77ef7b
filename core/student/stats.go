package student

import (
	"fmt"
	"math"
)

// NotAvailable is displayed for values that cannot be computed.
const NotAvailable = "N/A"

type (
	SubjectAverage struct {
		Subject string  `json:"subject"`
		Average float64 `json:"average"`
	}

	GradeCount struct {
		Grade Grade  `json:"grade"`
		Count int    `json:"count"`
		Color string `json:"color"`
	}

	// Distribution counts students per letter grade.
	// Students without scores are only counted in Ungraded.
	Distribution struct {
		Buckets  []GradeCount `json:"buckets"`
		Ungraded int          `json:"ungraded"`
	}

	// Stats bundles the dashboard aggregates of a roster.
	Stats struct {
		TotalStudents      int              `json:"totalStudents"`
		AverageScore       string           `json:"averageScore"`
		TopPerformer       string           `json:"topPerformer"`
		PassingRate        string           `json:"passingRate"`
		SubjectPerformance []SubjectAverage `json:"subjectPerformance"`
		GradeDistribution  Distribution     `json:"gradeDistribution"`
	}
)

// Count returns the number of students in the grade bucket.
func (d Distribution) Count(g Grade) int {
	if g == GradeNone {
		return d.Ungraded
	}
	for _, b := range d.Buckets {
		if b.Grade == g {
			return b.Count
		}
	}
	return 0
}

func TotalStudents(roster Roster) int {
	return len(roster)
}

// MeanScore is the mean of every score of every student, flattened.
func MeanScore(roster Roster) (float64, bool) {
	var (
		total float64
		count int
	)
	for _, st := range roster {
		for _, sc := range st.Scores {
			total += sc.Score
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}

// AverageScore formats MeanScore with one decimal.
func AverageScore(roster Roster) string {
	mean, ok := MeanScore(roster)
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", mean)
}

// BestStudent returns the student with the strictly greatest positive average.
// The first student reaching a maximum keeps it on ties; students without scores are skipped,
// and nobody is found when no average is above 0.
func BestStudent(roster Roster) (best Student, avg float64, ok bool) {
	for _, st := range roster {
		a, computable := st.Average()
		if !computable {
			continue
		}
		if a > avg {
			best, avg, ok = st, a, true
		}
	}
	return best, avg, ok
}

func TopPerformer(roster Roster) string {
	best, _, ok := BestStudent(roster)
	if !ok {
		return NotAvailable
	}
	return best.Name
}

// PassRate is the percentage of graded students whose average is passing.
func PassRate(roster Roster) (float64, bool) {
	var graded, passing int
	for _, st := range roster {
		avg, ok := st.Average()
		if !ok {
			continue
		}
		graded++
		if avg >= PassingScore {
			passing++
		}
	}
	if graded == 0 {
		return 0, false
	}
	return float64(passing) / float64(graded) * 100, true
}

// PassingRate formats PassRate with one decimal and a percent sign.
func PassingRate(roster Roster) string {
	rate, ok := PassRate(roster)
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", rate)
}

// SubjectPerformance averages the scores of each subject, in the given order.
// A subject nobody was scored in averages 0.
func SubjectPerformance(roster Roster, subjects []string) []SubjectAverage {
	perf := make([]SubjectAverage, 0, len(subjects))
	for _, subj := range subjects {
		var (
			total float64
			count int
		)
		for _, st := range roster {
			for _, sc := range st.Scores {
				if sc.Subject == subj {
					total += sc.Score
					count++
				}
			}
		}
		var avg float64
		if count > 0 {
			avg = total / float64(count)
		}
		perf = append(perf, SubjectAverage{Subject: subj, Average: avg})
	}
	return perf
}

func GradeDistribution(roster Roster) Distribution {
	counts := make(map[Grade]int, len(Grades))
	var ungraded int
	for _, st := range roster {
		if g := st.Grade(); g == GradeNone {
			ungraded++
		} else {
			counts[g]++
		}
	}

	dist := Distribution{Buckets: make([]GradeCount, len(Grades)), Ungraded: ungraded}
	for i, g := range Grades {
		dist.Buckets[i] = GradeCount{Grade: g, Count: counts[g], Color: g.Color()}
	}
	return dist
}

// ComputeStats computes every dashboard aggregate. Subject averages are rounded to 2 decimals.
func ComputeStats(roster Roster, subjects []string) Stats {
	perf := SubjectPerformance(roster, subjects)
	for i := range perf {
		perf[i].Average = round(perf[i].Average, 2)
	}
	return Stats{
		TotalStudents:      TotalStudents(roster),
		AverageScore:       AverageScore(roster),
		TopPerformer:       TopPerformer(roster),
		PassingRate:        PassingRate(roster),
		SubjectPerformance: perf,
		GradeDistribution:  GradeDistribution(roster),
	}
}

func round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
