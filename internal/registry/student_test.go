package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentRegisterCourse(t *testing.T) {
	math := NewCourse("MATH101", "Mathematics")
	prog := NewCourse("PROG101", "Programming")

	s := NewStudent("S001", "Noor")
	s.RegisterCourse(math)
	s.RegisterCourse(prog)
	s.RegisterCourse(math)
	s.RegisterCourse(nil)

	courses := s.Courses()
	assert.Len(t, courses, 2)
	assert.Equal(t, "MATH101", courses[0].Code())
	assert.Equal(t, "PROG101", courses[1].Code())
	assert.True(t, s.IsRegisteredIn("MATH101"))
	assert.False(t, s.IsRegisteredIn("math101"), "course codes are case-sensitive")
}

func TestStudentGPA(t *testing.T) {
	math := NewCourse("MATH101", "Mathematics")
	prog := NewCourse("PROG101", "Programming")
	phys := NewCourse("PHYS101", "Physics")

	t.Run("no registrations", func(t *testing.T) {
		assert.Equal(t, 0.0, NewStudent("S001", "Noor").GPA())
	})

	t.Run("registered but ungraded", func(t *testing.T) {
		s := NewStudent("S001", "Noor")
		s.RegisterCourse(math)
		assert.Equal(t, 0.0, s.GPA())
	})

	t.Run("ungraded registration does not change GPA", func(t *testing.T) {
		s := NewStudent("S001", "Noor")
		s.RegisterCourse(math)
		s.RegisterCourse(prog)
		s.setGrade(math, 92)
		s.setGrade(prog, 75)
		before := s.GPA()

		s.RegisterCourse(phys)
		assert.Equal(t, before, s.GPA())
		assert.InDelta(t, 3.0, s.GPA(), 1e-9)
	})

	t.Run("grade for unregistered course is ignored", func(t *testing.T) {
		s := NewStudent("S001", "Noor")
		s.RegisterCourse(math)
		s.setGrade(math, 85)
		s.setGrade(prog, 10)
		assert.Equal(t, 3.0, s.GPA())
		assert.Equal(t, []Grade{{CourseCode: "MATH101", Score: 85}}, s.Grades())
	})

	t.Run("latest write wins", func(t *testing.T) {
		s := NewStudent("S001", "Noor")
		s.RegisterCourse(math)
		s.setGrade(math, 50)
		s.setGrade(math, 95)
		score, ok := s.Score("MATH101")
		assert.True(t, ok)
		assert.Equal(t, 95.0, score)
		assert.Equal(t, 4.0, s.GPA())
	})
}
