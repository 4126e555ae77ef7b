package student

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

type subjectsCtxKey struct{}

var (
	uniqueSubjectsTag  = "uniquesubjects"
	uniqueSubjectsText = "each subject can only be scored once"

	knownSubjectTag  = "knownsubject"
	knownSubjectText = "unknown subject"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(uniqueSubjectsTag, uniqueSubjectsValidation)
	core.RegisterCustomTranslation(uniqueSubjectsTag, uniqueSubjectsText)

	_ = core.Validate.RegisterValidationCtx(knownSubjectTag, knownSubjectValidation)
	core.RegisterCustomTranslation(knownSubjectTag, knownSubjectText)
}

func withSubjects(ctx context.Context, subjects []string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, subjectsCtxKey{}, subjects)
}

// Custom Validators

// uniqueSubjectsValidation checks that no subject appears twice in a score list.
func uniqueSubjectsValidation(fl validator.FieldLevel) bool {
	scores, ok := fl.Field().Interface().([]SubjectScore)
	if !ok {
		return false
	}
	seen := make(map[string]bool, len(scores))
	for _, sc := range scores {
		if seen[sc.Subject] {
			return false
		}
		seen[sc.Subject] = true
	}
	return true
}

// knownSubjectValidation checks the subject against the list carried by ctx.
func knownSubjectValidation(ctx context.Context, fl validator.FieldLevel) bool {
	subjects, _ := ctx.Value(subjectsCtxKey{}).([]string)
	if len(subjects) == 0 {
		return true
	}
	subj := fl.Field().String()
	for _, s := range subjects {
		if s == subj {
			return true
		}
	}
	return false
}
