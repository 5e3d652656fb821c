// Package exchange reads and writes the line-oriented records format.
//
// Each line holds one record with fields separated by ", ":
//
//	Student, <id>, <name>
//	Course, <code>, <name>
//	Enrollment, <studentId>, <courseCode>
//	Score, <studentId>, <courseCode>, <score>
//
// Import applies every line to a registry as it goes; there is no rollback.
// Export writes only Score lines.
package exchange

import (
	"fmt"
	"strconv"
	"strings"
)

// Record tags.
const (
	TagStudent    = "Student"
	TagCourse     = "Course"
	TagEnrollment = "Enrollment"
	TagScore      = "Score"
)

const separator = ", "

// FormatError reports a malformed line.
type FormatError struct {
	Line       int
	Tag        string
	StudentID  string
	CourseCode string
	Reason     string
}

func (e *FormatError) Error() string {
	if e.StudentID != "" || e.CourseCode != "" {
		return fmt.Sprintf("line %d: %s for student ID %s, course code %s",
			e.Line, e.Reason, e.StudentID, e.CourseCode)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// splitLine splits a line into fields. Trailing empty fields are dropped, so
// "Student, S001, " has two fields.
func splitLine(line string) []string {
	parts := strings.Split(line, separator)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// FormatScore renders a score the way export writes it: shortest form, but
// always with a fractional part (92 -> "92.0").
func FormatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
