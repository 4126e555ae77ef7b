package student

// Roster is the ordered list of students, newest first.
// Add, Update and Delete never modify the receiver; they return a new Roster.
type Roster []Student

// Clone returns a deep copy of the roster.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	cp := make(Roster, len(r))
	for i, st := range r {
		cp[i] = st.clone()
	}
	return cp
}

func (r Roster) index(id string) int {
	for i, st := range r {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the student with the given id.
func (r Roster) Find(id string) (Student, bool) {
	if idx := r.index(id); idx >= 0 {
		return r[idx].clone(), true
	}
	return Student{}, false
}

// Add mints the ids of a new student and prepends it to the roster.
func (r Roster) Add(ns NewStudent) (Roster, Student) {
	st := Student{
		ID:           NewStudentID(),
		Name:         ns.Name,
		RegisteredID: NextRegisteredID(r),
		Scores:       append([]SubjectScore{}, ns.Scores...),
	}
	added := make(Roster, 0, len(r)+1)
	added = append(added, st)
	added = append(added, r...)
	return added, st.clone()
}

// Update replaces the name and scores of the student with the given id.
func (r Roster) Update(id string, us UpdateStudent) (Roster, Student, error) {
	idx := r.index(id)
	if idx < 0 {
		return r, Student{}, ErrNotFound
	}
	st := r[idx]
	st.Name = us.Name
	st.Scores = append([]SubjectScore{}, us.Scores...)

	updated := make(Roster, len(r))
	copy(updated, r)
	updated[idx] = st
	return updated, st.clone(), nil
}

// Delete removes the student with the given id.
func (r Roster) Delete(id string) (Roster, error) {
	idx := r.index(id)
	if idx < 0 {
		return r, ErrNotFound
	}
	deleted := make(Roster, 0, len(r)-1)
	deleted = append(deleted, r[:idx]...)
	deleted = append(deleted, r[idx+1:]...)
	return deleted, nil
}
