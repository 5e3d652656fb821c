package exchange

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/gradebook/internal/registry"
	"github.com/mmynk/gradebook/internal/validation"
)

// Options controls import tolerance.
type Options struct {
	// ReportAll reports malformed Student, Course and Enrollment lines as
	// FormatErrors. When false those lines are dropped silently and only
	// malformed Score lines are reported.
	ReportAll bool
}

// Rejection is a well-formed Score line the registry refused, because the
// student or course is unknown or the student is not registered.
type Rejection struct {
	Line       int
	StudentID  string
	CourseCode string
	Score      float64
}

// Report summarizes one import.
type Report struct {
	// ID identifies the import in logs.
	ID string

	// Lines is the number of lines read.
	Lines int

	// Records counts well-formed lines applied per tag.
	Records map[string]int

	// Ignored counts lines with an unknown tag.
	Ignored int

	// Rejected lists grade writes refused by the registry.
	Rejected []Rejection

	// Errors lists reported malformed lines.
	Errors []*FormatError
}

// Import reads records from r and applies them to reg line by line.
// Malformed lines never abort the import; the returned error is only set
// when reading fails, in which case the lines before the failure stay applied.
func Import(r io.Reader, reg *registry.Registry, opts Options) (*Report, error) {
	report := &Report{
		ID:      uuid.New().String(),
		Records: make(map[string]int),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		report.Lines++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		applyLine(reg, report, opts, report.Lines, splitLine(line))
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("failed to read records: %w", err)
	}

	slog.Info("Records imported",
		"import_id", report.ID,
		"lines", report.Lines,
		"students", report.Records[TagStudent],
		"courses", report.Records[TagCourse],
		"enrollments", report.Records[TagEnrollment],
		"scores", report.Records[TagScore],
		"rejected", len(report.Rejected),
		"errors", len(report.Errors),
	)
	return report, nil
}

// ImportFile opens path and imports it into reg.
func ImportFile(path string, reg *registry.Registry, opts Options) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	return Import(f, reg, opts)
}

func applyLine(reg *registry.Registry, report *Report, opts Options, lineNo int, parts []string) {
	if len(parts) == 0 {
		return
	}

	tag := parts[0]
	switch tag {
	case TagStudent, TagCourse, TagEnrollment:
		if len(parts) != 3 {
			if opts.ReportAll {
				report.Errors = append(report.Errors, &FormatError{
					Line:   lineNo,
					Tag:    tag,
					Reason: fmt.Sprintf("invalid %s line format: expected 3 fields, got %d", strings.ToLower(tag), len(parts)),
				})
			}
			slog.Debug("Dropped malformed line", "line", lineNo, "tag", tag, "fields", len(parts))
			return
		}
		switch tag {
		case TagStudent:
			reg.AddStudent(registry.NewStudent(parts[1], parts[2]))
		case TagCourse:
			reg.AddCourse(registry.NewCourse(parts[1], parts[2]))
		case TagEnrollment:
			reg.RegisterStudentToCourse(parts[1], parts[2])
		}
		report.Records[tag]++

	case TagScore:
		applyScore(reg, report, lineNo, parts)

	default:
		report.Ignored++
	}
}

func applyScore(reg *registry.Registry, report *Report, lineNo int, parts []string) {
	if len(parts) != 4 {
		report.Errors = append(report.Errors, &FormatError{
			Line:   lineNo,
			Tag:    TagScore,
			Reason: "invalid score line format",
		})
		return
	}

	studentID, courseCode := parts[1], parts[2]
	score, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		report.Errors = append(report.Errors, &FormatError{
			Line:       lineNo,
			Tag:        TagScore,
			StudentID:  studentID,
			CourseCode: courseCode,
			Reason:     "invalid score format",
		})
		return
	}
	if err := validation.Score(score); err != nil {
		report.Errors = append(report.Errors, &FormatError{
			Line:       lineNo,
			Tag:        TagScore,
			StudentID:  studentID,
			CourseCode: courseCode,
			Reason:     "score out of range",
		})
		return
	}

	if !reg.AddOrEditGrade(studentID, courseCode, score) {
		slog.Warn("Score not recorded",
			"line", lineNo,
			"student_id", studentID,
			"course_code", courseCode,
		)
		report.Rejected = append(report.Rejected, Rejection{
			Line:       lineNo,
			StudentID:  studentID,
			CourseCode: courseCode,
			Score:      score,
		})
		return
	}
	report.Records[TagScore]++
}
