package student

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const registeredIDPrefix = "SID"

// mockable
var newIDFunc = uuid.NewString

// NewStudentID returns a fresh opaque student id.
func NewStudentID() string {
	return newIDFunc()
}

// NextRegisteredID scans the roster for the highest registered id sequence and returns the next one.
// The sequence is derived from the current roster, so the number of a deleted
// highest holder is handed out again.
func NextRegisteredID(roster Roster) string {
	var max int
	for _, st := range roster {
		if seq := registeredSequence(st.RegisteredID); seq > max {
			max = seq
		}
	}
	return FormatRegisteredID(max + 1)
}

func FormatRegisteredID(seq int) string {
	return fmt.Sprintf("%s-%03d", registeredIDPrefix, seq)
}

// registeredSequence reads the leading digits of the segment after the first "-".
// Anything unparsable counts as 0; sequences too large for an int saturate.
func registeredSequence(regID string) int {
	parts := strings.Split(regID, "-")
	if len(parts) < 2 {
		return 0
	}
	seg := strings.TrimLeft(parts[1], " \t\n\r")
	seg = strings.TrimPrefix(seg, "+")
	end := 0
	for end < len(seg) && seg[end] >= '0' && seg[end] <= '9' {
		end++
	}
	seq, err := strconv.Atoi(seg[:end])
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt - 1
	}
	if err != nil {
		return 0
	}
	return seq
}
