package student

import (
	"context"

	"github.com/trezcool/gradebook/core"
)

// Themes
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Theme string

// ParseTheme only accepts the two literal theme values.
func ParseTheme(s string) (Theme, bool) {
	switch t := Theme(core.CleanString(s, true /* lower */)); t {
	case ThemeLight, ThemeDark:
		return t, true
	}
	return ThemeLight, false
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type SubjectScore struct {
	Subject string  `json:"subject" validate:"required,knownsubject"`
	Score   float64 `json:"score" validate:"min=0,max=100"`
}

type Student struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	RegisteredID string         `json:"registeredId"`
	Scores       []SubjectScore `json:"scores"`
}

// Average is the mean of the student's own scores.
// ok is false when the student has no scores.
func (s Student) Average() (avg float64, ok bool) {
	if len(s.Scores) == 0 {
		return 0, false
	}
	var total float64
	for _, sc := range s.Scores {
		total += sc.Score
	}
	return total / float64(len(s.Scores)), true
}

// Grade classifies the student's average, GradeNone if it is not computable.
func (s Student) Grade() Grade {
	avg, ok := s.Average()
	if !ok {
		return GradeNone
	}
	return Classify(avg)
}

// Score returns the first score recorded for subject.
func (s Student) Score(subject string) (float64, bool) {
	for _, sc := range s.Scores {
		if sc.Subject == subject {
			return sc.Score, true
		}
	}
	return 0, false
}

func (s Student) clone() Student {
	if s.Scores != nil {
		s.Scores = append([]SubjectScore(nil), s.Scores...)
	}
	return s
}

// NewStudent contains information needed to add a Student to the roster.
type NewStudent struct {
	Name   string         `json:"name" validate:"required"`
	Scores []SubjectScore `json:"scores" validate:"uniquesubjects,dive"`
}

// Validate cleans the payload and checks it against the form rules.
// subjects restricts score subjects to the configured list (no restriction if empty).
func (ns *NewStudent) Validate(ctx context.Context, subjects []string) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Scores = cleanScores(ns.Scores)
	return core.Validate.StructCtx(withSubjects(ctx, subjects), ns)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// The id and registered id are never modified.
type UpdateStudent struct {
	Name   string         `json:"name" validate:"required"`
	Scores []SubjectScore `json:"scores" validate:"uniquesubjects,dive"`
}

// Validate fills blank fields from orig before checking the form rules.
// A nil Scores keeps the original scores, an empty one clears them.
func (us *UpdateStudent) Validate(ctx context.Context, orig Student, subjects []string) error {
	if name := core.CleanString(us.Name); name != "" {
		us.Name = name
	} else {
		us.Name = orig.Name
	}
	if us.Scores == nil {
		us.Scores = orig.clone().Scores
	} else {
		us.Scores = cleanScores(us.Scores)
	}
	return core.Validate.StructCtx(withSubjects(ctx, subjects), us)
}

func cleanScores(scores []SubjectScore) []SubjectScore {
	if scores == nil {
		return nil
	}
	cleaned := make([]SubjectScore, len(scores))
	for i, sc := range scores {
		cleaned[i] = SubjectScore{Subject: core.CleanString(sc.Subject), Score: sc.Score}
	}
	return cleaned
}

// FormScores returns one entry per configured subject, in order,
// prefilled with the existing score for that subject or 0.
func FormScores(subjects []string, existing []SubjectScore) []SubjectScore {
	ref := Student{Scores: existing}
	scores := make([]SubjectScore, len(subjects))
	for i, subj := range subjects {
		score, _ := ref.Score(subj)
		scores[i] = SubjectScore{Subject: subj, Score: score}
	}
	return scores
}
