package student

var seedStudents = []struct {
	id, name, regID string
	scores          [5]float64 // Mathematics, Science, History, English, Art
}{
	{"s1", "Alice Johnson", "SID-001", [5]float64{92, 88, 95, 85, 98}},
	{"s2", "Bob Smith", "SID-002", [5]float64{78, 82, 75, 80, 85}},
	{"s3", "Charlie Brown", "SID-003", [5]float64{65, 71, 68, 72, 75}},
	{"s4", "Diana Prince", "SID-004", [5]float64{98, 94, 99, 97, 96}},
	{"s5", "Ethan Hunt", "SID-005", [5]float64{85, 89, 82, 88, 91}},
	{"s6", "Fiona Glenanne", "SID-006", [5]float64{55, 62, 58, 65, 70}},
	{"s7", "George Costanza", "SID-007", [5]float64{72, 75, 78, 70, 80}},
	{"s8", "Hannah Abbott", "SID-008", [5]float64{88, 91, 85, 92, 94}},
	{"s9", "Ian Malcolm", "SID-009", [5]float64{91, 95, 89, 87, 90}},
	{"s10", "Jane Doe", "SID-010", [5]float64{80, 77, 82, 85, 88}},
}

var seedSubjects = [5]string{"Mathematics", "Science", "History", "English", "Art"}

// SeedRoster returns a fresh copy of the sample roster used when nothing valid is persisted.
func SeedRoster() Roster {
	roster := make(Roster, len(seedStudents))
	for i, s := range seedStudents {
		scores := make([]SubjectScore, len(seedSubjects))
		for j, subj := range seedSubjects {
			scores[j] = SubjectScore{Subject: subj, Score: s.scores[j]}
		}
		roster[i] = Student{ID: s.id, Name: s.name, RegisteredID: s.regID, Scores: scores}
	}
	return roster
}
