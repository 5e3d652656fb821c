package registry

import "github.com/mmynk/gradebook/internal/grading"

// StudentKind tags a student with a programme. No behaviour depends on it.
type StudentKind string

const (
	StudentGeneral StudentKind = "general"
	StudentMath    StudentKind = "math"
	StudentScience StudentKind = "science"
)

// Grade is one recorded score for a course.
type Grade struct {
	CourseCode string
	Score      float64
}

// Student is an enrolled person. ID is its natural key and never changes.
type Student struct {
	id string

	// Name is the display name.
	Name string

	// Kind is the programme; defaults to StudentGeneral.
	Kind StudentKind

	// registered is kept in registration order, without duplicates.
	registered []*Course

	// grades maps course code to the latest recorded score.
	grades map[string]float64
}

// NewStudent creates a general student with no registrations.
func NewStudent(id, name string) *Student {
	return &Student{
		id:     id,
		Name:   name,
		Kind:   StudentGeneral,
		grades: make(map[string]float64),
	}
}

// ID returns the student id.
func (s *Student) ID() string {
	return s.id
}

// RegisterCourse adds the course to the student's registrations.
// A nil course or an already registered course is ignored.
func (s *Student) RegisterCourse(course *Course) {
	if course == nil || s.IsRegisteredIn(course.code) {
		return
	}
	s.registered = append(s.registered, course)
}

// IsRegisteredIn reports whether the student is registered in the course with this code.
func (s *Student) IsRegisteredIn(courseCode string) bool {
	for _, c := range s.registered {
		if c.code == courseCode {
			return true
		}
	}
	return false
}

// Courses returns the registered courses in registration order.
func (s *Student) Courses() []*Course {
	out := make([]*Course, len(s.registered))
	copy(out, s.registered)
	return out
}

// Score returns the recorded score for a course, if any.
func (s *Student) Score(courseCode string) (float64, bool) {
	score, ok := s.grades[courseCode]
	return score, ok
}

// Grades returns the recorded grades in registration order.
func (s *Student) Grades() []Grade {
	out := make([]Grade, 0, len(s.grades))
	for _, c := range s.registered {
		if score, ok := s.grades[c.code]; ok {
			out = append(out, Grade{CourseCode: c.code, Score: score})
		}
	}
	return out
}

// GPA computes the unweighted grade-point average over registered courses that
// have a recorded score. Ungraded registrations are left out of both the sum
// and the count. Returns 0.0 when nothing is graded.
func (s *Student) GPA() float64 {
	grades := s.Grades()
	scores := make([]float64, len(grades))
	for i, g := range grades {
		scores[i] = g.Score
	}
	return grading.Average(scores)
}

// setGrade records or overwrites the score for a course. It does not check
// registration; Registry.AddOrEditGrade does.
func (s *Student) setGrade(course *Course, score float64) {
	s.grades[course.code] = score
}
