package student

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
)

func rosterWithIDs(regIDs ...string) Roster {
	roster := make(Roster, len(regIDs))
	for i, id := range regIDs {
		roster[i] = Student{ID: id, RegisteredID: id}
	}
	return roster
}

func TestNextRegisteredID(t *testing.T) {
	tests := []struct {
		name   string
		roster Roster
		want   string
	}{
		{name: "empty roster", roster: nil, want: "SID-001"},
		{name: "after SID-009", roster: rosterWithIDs("SID-009"), want: "SID-010"},
		{name: "unordered", roster: rosterWithIDs("SID-003", "SID-010", "SID-002"), want: "SID-011"},
		{name: "unparsable counts as 0", roster: rosterWithIDs("SID-abc", "garbage", ""), want: "SID-001"},
		{name: "leading digits", roster: rosterWithIDs("SID-12x"), want: "SID-013"},
		{name: "second segment only", roster: rosterWithIDs("SID-005-7"), want: "SID-006"},
		{name: "any prefix", roster: rosterWithIDs("X-7"), want: "SID-008"},
		{name: "past 999", roster: rosterWithIDs("SID-999"), want: "SID-1000"},
		{name: "seed roster", roster: SeedRoster(), want: "SID-011"},
		{name: "huge sequence saturates", roster: rosterWithIDs("SID-99999999999999999999", "SID-005"),
			want: fmt.Sprintf("SID-%d", math.MaxInt)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextRegisteredID(tt.roster); got != tt.want {
				t.Errorf("NextRegisteredID() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextRegisteredID_reusesDeletedHighest(t *testing.T) {
	roster := rosterWithIDs("SID-003", "SID-002", "SID-001")
	roster, err := roster.Delete("SID-003")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := NextRegisteredID(roster); got != "SID-003" {
		t.Errorf("NextRegisteredID() = %v, want SID-003", got)
	}

	// a higher holder still pins the sequence
	roster = rosterWithIDs("SID-005", "SID-004", "SID-001")
	roster, _ = roster.Delete("SID-004")
	if got := NextRegisteredID(roster); got != "SID-006" {
		t.Errorf("NextRegisteredID() = %v, want SID-006", got)
	}
}

func TestNewStudentID(t *testing.T) {
	id1, id2 := NewStudentID(), NewStudentID()
	if id1 == id2 {
		t.Errorf("NewStudentID() returned %v twice", id1)
	}
	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("NewStudentID() = %v, not a uuid: %v", id1, err)
	}
}
