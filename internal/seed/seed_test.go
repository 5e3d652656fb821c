package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/gradebook/internal/registry"
	"github.com/mmynk/gradebook/internal/validation"
)

const demoSeed = `
courses:
  - code: MATH101
    name: Mathematics
    kind: math
  - code: PROG101
    name: Programming
students:
  - id: S001
    name: Noor
  - id: S002
    name: Laith
    kind: science
enrollments:
  - student: S001
    course: MATH101
grades:
  - student: S001
    course: MATH101
    score: 92
`

func TestApply(t *testing.T) {
	f, err := Parse([]byte(demoSeed))
	require.NoError(t, err)

	reg := registry.New()
	res, err := Apply(reg, f)
	require.NoError(t, err)
	assert.Equal(t, Result{Courses: 2, Students: 2, Enrollments: 1, Grades: 1}, res)

	math, ok := reg.Course("MATH101")
	require.True(t, ok)
	assert.Equal(t, registry.CourseMath, math.Kind)

	prog, _ := reg.Course("PROG101")
	assert.Equal(t, registry.CourseGeneral, prog.Kind)

	laith, _ := reg.Student("S002")
	assert.Equal(t, registry.StudentScience, laith.Kind)

	gpa, err := reg.CalculateGPA("S001")
	require.NoError(t, err)
	assert.Equal(t, 4.0, gpa)
}

func TestApplyKeepsExistingRecords(t *testing.T) {
	f, err := Parse([]byte(demoSeed))
	require.NoError(t, err)

	reg := registry.New()
	reg.AddStudent(registry.NewStudent("S001", "Existing"))

	res, err := Apply(reg, f)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Students)

	s, _ := reg.Student("S001")
	assert.Equal(t, "Existing", s.Name)
}

func TestApplyReportsDanglingReferences(t *testing.T) {
	f, err := Parse([]byte(`
students:
  - id: S001
    name: Noor
enrollments:
  - student: S001
    course: MATH999
grades:
  - student: S001
    course: MATH999
    score: 70
`))
	require.NoError(t, err)

	res, err := Apply(registry.New(), f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MATH999")
	assert.Equal(t, 1, res.Students)
	assert.Zero(t, res.Enrollments)
	assert.Zero(t, res.Grades)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{name: "bad student id", input: "students:\n  - id: S 01\n    name: Noor\n", field: "students[0].id"},
		{name: "blank course name", input: "courses:\n  - code: MATH101\n    name: '  '\n", field: "courses[0].name"},
		{name: "score out of range", input: "grades:\n  - student: S001\n    course: MATH101\n    score: 101\n", field: "grades[0].score"},
		{name: "unknown kind", input: "students:\n  - id: S001\n    name: Noor\n    kind: art\n", field: "students[0].kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			var ve *validation.ValidationError
			require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
			require.Len(t, ve.Fields, 1)
			assert.Equal(t, tt.field, ve.Fields[0].Field)
		})
	}

	_, err := Parse([]byte("courses: [oops"))
	assert.Error(t, err)
}

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoSeed), 0o644))

	reg := registry.New()
	_, err := LoadAndApply(reg, path)
	require.NoError(t, err)
	assert.Len(t, reg.Students(), 2)

	_, err = LoadAndApply(reg, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
