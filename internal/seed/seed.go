// Package seed loads an initial set of records from a YAML file and applies it
// to a registry through the registry's own operations.
package seed

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/gradebook/internal/registry"
	"github.com/mmynk/gradebook/internal/validation"
)

// File is the seed file layout.
type File struct {
	Courses     []Course     `yaml:"courses" validate:"dive"`
	Students    []Student    `yaml:"students" validate:"dive"`
	Enrollments []Enrollment `yaml:"enrollments" validate:"dive"`
	Grades      []Grade      `yaml:"grades" validate:"dive"`
}

type Course struct {
	Code string `yaml:"code" validate:"identifier"`
	Name string `yaml:"name" validate:"notblank"`
	Kind string `yaml:"kind" validate:"omitempty,oneof=general math programming arabic physics history"`
}

type Student struct {
	ID   string `yaml:"id" validate:"identifier"`
	Name string `yaml:"name" validate:"notblank"`
	Kind string `yaml:"kind" validate:"omitempty,oneof=general math science"`
}

type Enrollment struct {
	Student string `yaml:"student" validate:"identifier"`
	Course  string `yaml:"course" validate:"identifier"`
}

type Grade struct {
	Student string  `yaml:"student" validate:"identifier"`
	Course  string  `yaml:"course" validate:"identifier"`
	Score   float64 `yaml:"score" validate:"score"`
}

// Result counts what Apply changed.
type Result struct {
	Courses     int
	Students    int
	Enrollments int
	Grades      int
}

// Load reads and validates a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := validation.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return &f, nil
}

// Apply adds the seed records to reg. Existing students and courses are kept
// (first write wins). Enrollments or grades naming unknown records are
// collected into the returned error, but the rest of the seed is still applied.
func Apply(reg *registry.Registry, f *File) (Result, error) {
	var res Result
	var errs []error

	for _, c := range f.Courses {
		course := registry.NewCourse(c.Code, c.Name)
		if c.Kind != "" {
			course.Kind = registry.CourseKind(c.Kind)
		}
		if reg.AddCourse(course) {
			res.Courses++
		}
	}

	for _, s := range f.Students {
		student := registry.NewStudent(s.ID, s.Name)
		if s.Kind != "" {
			student.Kind = registry.StudentKind(s.Kind)
		}
		if reg.AddStudent(student) {
			res.Students++
		}
	}

	for _, e := range f.Enrollments {
		if !reg.RegisterStudentToCourse(e.Student, e.Course) {
			errs = append(errs, fmt.Errorf("enrollment %s -> %s: unknown student or course", e.Student, e.Course))
			continue
		}
		res.Enrollments++
	}

	for _, g := range f.Grades {
		if !reg.AddOrEditGrade(g.Student, g.Course, g.Score) {
			errs = append(errs, fmt.Errorf("grade %s/%s: student not registered in course", g.Student, g.Course))
			continue
		}
		res.Grades++
	}

	slog.Info("Seed applied",
		"courses", res.Courses,
		"students", res.Students,
		"enrollments", res.Enrollments,
		"grades", res.Grades,
		"problems", len(errs),
	)
	return res, errors.Join(errs...)
}

// LoadAndApply is Load followed by Apply.
func LoadAndApply(reg *registry.Registry, path string) (Result, error) {
	f, err := Load(path)
	if err != nil {
		return Result{}, err
	}
	return Apply(reg, f)
}
