// Package report renders the registry as an XLSX transcript workbook.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/gradebook/internal/grading"
	"github.com/mmynk/gradebook/internal/registry"
)

const (
	StudentsSheet = "Students"
	GradesSheet   = "Grades"
)

var (
	studentsHeader = []interface{}{"Student ID", "Name", "Kind", "Courses", "Graded", "GPA"}
	gradesHeader   = []interface{}{"Student ID", "Course", "Course Name", "Score", "Letter", "Points"}
)

// Write renders reg into a workbook and writes it to w.
func Write(w io.Writer, reg *registry.Registry) error {
	f, err := build(reg)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Error closing workbook", "error", err)
		}
	}()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile renders reg into a workbook at path.
func WriteFile(path string, reg *registry.Registry) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file: %w", cerr)
		}
	}()
	return Write(out, reg)
}

func build(reg *registry.Registry) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", StudentsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(GradesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	students := [][]interface{}{studentsHeader}
	grades := [][]interface{}{gradesHeader}
	for _, s := range reg.Students() {
		graded := s.Grades()
		students = append(students, []interface{}{
			s.ID(), s.Name, string(s.Kind), len(s.Courses()), len(graded), round2(s.GPA()),
		})
		for _, g := range graded {
			name := ""
			if c, ok := reg.Course(g.CourseCode); ok {
				name = c.Name
			}
			grades = append(grades, []interface{}{
				s.ID(), g.CourseCode, name, g.Score, grading.Letter(g.Score), grading.ScoreToPoint(g.Score),
			})
		}
	}

	for sheet, rows := range map[string][][]interface{}{StudentsSheet: students, GradesSheet: grades} {
		if err := writeRows(f, sheet, rows, bold); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return f.SetColWidth(sheet, "A", "F", 14)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
