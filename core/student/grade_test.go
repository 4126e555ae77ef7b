package student

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  Grade
	}{
		{100, GradeA},
		{90, GradeA},
		{150, GradeA},
		{89.99, GradeB},
		{80, GradeB},
		{79.5, GradeC},
		{70, GradeC},
		{69.999, GradeD},
		{60, GradeD},
		{59.99, GradeF},
		{0, GradeF},
		{-5, GradeF},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestGrade_Color(t *testing.T) {
	tests := []struct {
		grade Grade
		want  string
	}{
		{GradeA, "#10b981"},
		{GradeB, "#3b82f6"},
		{GradeC, "#f59e0b"},
		{GradeD, "#f97316"},
		{GradeF, "#ef4444"},
		{GradeNone, "#9ca3af"},
		{Grade("Z"), "#9ca3af"},
	}
	for _, tt := range tests {
		if got := tt.grade.Color(); got != tt.want {
			t.Errorf("%v.Color() = %v, want %v", tt.grade, got, tt.want)
		}
	}
	if got := GradeColor(95); got != "#10b981" {
		t.Errorf("GradeColor(95) = %v, want #10b981", got)
	}
}
