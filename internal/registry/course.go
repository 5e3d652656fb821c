package registry

// CourseKind tags a course with its subject area. No behaviour depends on it.
type CourseKind string

const (
	CourseGeneral     CourseKind = "general"
	CourseMath        CourseKind = "math"
	CourseProgramming CourseKind = "programming"
	CourseArabic      CourseKind = "arabic"
	CoursePhysics     CourseKind = "physics"
	CourseHistory     CourseKind = "history"
)

// Course is an offered course. Code is its natural key and never changes.
type Course struct {
	code string

	// Name is the display name (e.g., "Mathematics").
	Name string

	// Kind is the subject area; defaults to CourseGeneral.
	Kind CourseKind
}

// NewCourse creates a general course.
func NewCourse(code, name string) *Course {
	return &Course{code: code, Name: name, Kind: CourseGeneral}
}

// Code returns the course code.
func (c *Course) Code() string {
	return c.code
}
