package registry

import (
	"errors"
	"fmt"
)

// ErrStudentNotFound is returned when an operation names an unknown student id.
var ErrStudentNotFound = errors.New("student not found")

// Registry is the system of record for students and courses.
// A new Registry is empty; seed data is applied by the caller.
type Registry struct {
	students     map[string]*Student
	studentOrder []string

	courses     map[string]*Course
	courseOrder []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		students: make(map[string]*Student),
		courses:  make(map[string]*Course),
	}
}

// AddStudent inserts the student unless its id is already taken.
// The first write wins; it reports whether the student was added.
func (r *Registry) AddStudent(student *Student) bool {
	if student == nil {
		return false
	}
	if _, exists := r.students[student.id]; exists {
		return false
	}
	r.students[student.id] = student
	r.studentOrder = append(r.studentOrder, student.id)
	return true
}

// AddCourse inserts the course unless its code is already taken.
// The first write wins; it reports whether the course was added.
func (r *Registry) AddCourse(course *Course) bool {
	if course == nil {
		return false
	}
	if _, exists := r.courses[course.code]; exists {
		return false
	}
	r.courses[course.code] = course
	r.courseOrder = append(r.courseOrder, course.code)
	return true
}

// RegisterStudentToCourse registers the student in the course when both exist.
// It reports whether both were found.
func (r *Registry) RegisterStudentToCourse(studentID, courseCode string) bool {
	student, ok := r.students[studentID]
	if !ok {
		return false
	}
	course, ok := r.courses[courseCode]
	if !ok {
		return false
	}
	student.RegisterCourse(course)
	return true
}

// AddOrEditGrade records a score for a registered student-course pair.
// It returns false, leaving state untouched, if the student or course is
// unknown or the student is not registered in the course. The score range is
// not checked here.
func (r *Registry) AddOrEditGrade(studentID, courseCode string, score float64) bool {
	student, ok := r.students[studentID]
	if !ok {
		return false
	}
	course, ok := r.courses[courseCode]
	if !ok {
		return false
	}
	if !student.IsRegisteredIn(courseCode) {
		return false
	}
	student.setGrade(course, score)
	return true
}

// CalculateGPA returns the student's GPA, or ErrStudentNotFound.
func (r *Registry) CalculateGPA(studentID string) (float64, error) {
	student, ok := r.students[studentID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
	}
	return student.GPA(), nil
}

// GetRegisteredCoursesForStudent returns the codes of the student's courses in
// registration order. An unknown student yields an empty slice.
func (r *Registry) GetRegisteredCoursesForStudent(studentID string) []string {
	student, ok := r.students[studentID]
	if !ok {
		return []string{}
	}
	codes := make([]string, 0, len(student.registered))
	for _, c := range student.registered {
		codes = append(codes, c.code)
	}
	return codes
}

// GetStudentsForCourse returns the students registered in the course, in the
// order they were added to the registry.
func (r *Registry) GetStudentsForCourse(courseCode string) []*Student {
	var out []*Student
	for _, id := range r.studentOrder {
		if s := r.students[id]; s.IsRegisteredIn(courseCode) {
			out = append(out, s)
		}
	}
	return out
}

// Student looks up a student by id.
func (r *Registry) Student(id string) (*Student, bool) {
	s, ok := r.students[id]
	return s, ok
}

// Course looks up a course by code.
func (r *Registry) Course(code string) (*Course, bool) {
	c, ok := r.courses[code]
	return c, ok
}

// Students returns every student in insertion order.
func (r *Registry) Students() []*Student {
	out := make([]*Student, 0, len(r.studentOrder))
	for _, id := range r.studentOrder {
		out = append(out, r.students[id])
	}
	return out
}

// Courses returns every course in insertion order.
func (r *Registry) Courses() []*Course {
	out := make([]*Course, 0, len(r.courseOrder))
	for _, code := range r.courseOrder {
		out = append(out, r.courses[code])
	}
	return out
}
