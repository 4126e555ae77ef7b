package student

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/trezcool/gradebook/core"
)

// Sort keys
const (
	SortByName    SortKey = "name"
	SortByAverage SortKey = "averageScore"
)

var errInvalidOrdering = errors.New("invalid ordering")

type (
	SortKey string

	SortSpec struct {
		Key  SortKey
		Desc bool
	}

	// Record is a student augmented with its derived average and grade.
	// AverageScore is nil when the student has no scores.
	Record struct {
		Student
		AverageScore *float64 `json:"averageScore"`
		Grade        Grade    `json:"grade"`
	}
)

// ParseSortSpec parses an ordering such as "name" or "-averageScore" ("-" = descending).
// An empty ordering means no sorting.
func ParseSortSpec(ordering string) (*SortSpec, error) {
	ordering = core.CleanString(ordering)
	if ordering == "" {
		return nil, nil
	}
	spec := &SortSpec{}
	if strings.HasPrefix(ordering, "-") {
		spec.Desc = true
		ordering = ordering[1:] // drop "-"
	}
	switch key := SortKey(ordering); key {
	case SortByName, SortByAverage:
		spec.Key = key
	default:
		return nil, core.NewValidationError(
			errInvalidOrdering,
			core.FieldError{Field: "ordering", Error: "ordering must be one of name, averageScore"},
		)
	}
	return spec, nil
}

// Derive computes the average and grade of every student without touching the roster.
func Derive(roster Roster) []Record {
	records := make([]Record, len(roster))
	for i, st := range roster {
		rec := Record{Student: st.clone(), Grade: GradeNone}
		if avg, ok := st.Average(); ok {
			rec.AverageScore = &avg
			rec.Grade = Classify(avg)
		}
		records[i] = rec
	}
	return records
}

// Filter keeps the records whose name or registered id contains the trimmed search, ignoring case.
func Filter(records []Record, search string) []Record {
	filtered := make([]Record, 0, len(records))
	search = strings.TrimSpace(search)
	if search == "" {
		return append(filtered, records...)
	}
	search = strings.ToLower(search)
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), search) ||
			strings.Contains(strings.ToLower(rec.RegisteredID), search) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// SortRecords stable sorts records in place. Equal keys keep their relative order.
// Names are collated for English; records without an average sort below all others.
func SortRecords(records []Record, spec *SortSpec) {
	if spec == nil {
		return
	}

	var compare func(a, b Record) int
	switch spec.Key {
	case SortByName:
		// a Collator is not safe for concurrent use
		col := collate.New(language.English)
		compare = func(a, b Record) int { return col.CompareString(a.Name, b.Name) }
	case SortByAverage:
		compare = compareAverages
	default:
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		if spec.Desc {
			return compare(records[j], records[i]) < 0
		}
		return compare(records[i], records[j]) < 0
	})
}

func compareAverages(a, b Record) int {
	switch {
	case a.AverageScore == nil && b.AverageScore == nil:
		return 0
	case a.AverageScore == nil:
		return -1
	case b.AverageScore == nil:
		return 1
	case *a.AverageScore < *b.AverageScore:
		return -1
	case *a.AverageScore > *b.AverageScore:
		return 1
	}
	return 0
}

// Query derives, filters then sorts the roster into a read-only view.
func Query(roster Roster, search string, spec *SortSpec) []Record {
	records := Filter(Derive(roster), search)
	SortRecords(records, spec)
	return records
}
