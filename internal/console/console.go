// Package console is a line-oriented command interpreter over a registry.
// It validates input, calls registry operations directly and renders the
// results as text.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmynk/gradebook/internal/exchange"
	"github.com/mmynk/gradebook/internal/grading"
	"github.com/mmynk/gradebook/internal/registry"
	"github.com/mmynk/gradebook/internal/report"
	"github.com/mmynk/gradebook/internal/validation"
)

var (
	// ErrQuit is returned by Exec for the quit command.
	ErrQuit = errors.New("quit")

	errNotRegistered = errors.New("failed to add/edit grade: the student might not be registered in the specified course")
	errInvalidScore  = errors.New("invalid score format: please enter a numeric value")
)

// UsageError reports a malformed command.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

type command struct {
	usage   string
	minArgs int
	run     func(c *Console, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":        {usage: "help", run: (*Console).help},
		"students":    {usage: "students", run: (*Console).students},
		"courses":     {usage: "courses", run: (*Console).courses},
		"add-student": {usage: "add-student ID NAME...", minArgs: 2, run: (*Console).addStudent},
		"add-course":  {usage: "add-course CODE NAME...", minArgs: 2, run: (*Console).addCourse},
		"register":    {usage: "register ID CODE", minArgs: 2, run: (*Console).register},
		"grade":       {usage: "grade ID CODE SCORE", minArgs: 3, run: (*Console).grade},
		"gpa":         {usage: "gpa ID", minArgs: 1, run: (*Console).gpa},
		"registered":  {usage: "registered ID", minArgs: 1, run: (*Console).registered},
		"roster":      {usage: "roster CODE", minArgs: 1, run: (*Console).roster},
		"import":      {usage: "import PATH", minArgs: 1, run: (*Console).importFile},
		"export":      {usage: "export PATH", minArgs: 1, run: (*Console).exportFile},
		"report":      {usage: "report PATH", minArgs: 1, run: (*Console).report},
	}
}

// Console executes commands against one registry.
type Console struct {
	reg        *registry.Registry
	out        io.Writer
	importOpts exchange.Options
}

// New creates a Console writing its output to out.
func New(reg *registry.Registry, out io.Writer, importOpts exchange.Options) *Console {
	return &Console{reg: reg, out: out, importOpts: importOpts}
}

// Run reads commands from in until EOF or quit. Command errors are printed
// and do not stop the loop; only a read failure is returned.
func (c *Console) Run(in io.Reader, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt != "" {
			fmt.Fprint(c.out, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		err := c.Exec(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

// Exec runs a single command line.
func (c *Console) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]
	if name == "quit" || name == "exit" {
		return ErrQuit
	}
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", name)
	}
	if len(args) < cmd.minArgs {
		return &UsageError{Usage: cmd.usage}
	}

	slog.Debug("Console command", "command", name, "args", len(args))
	return cmd.run(c, args)
}

func (c *Console) help(_ []string) error {
	names := []string{
		"students", "courses", "add-student", "add-course", "register", "grade",
		"gpa", "registered", "roster", "import", "export", "report", "help",
	}
	fmt.Fprintln(c.out, "Commands:")
	for _, n := range names {
		fmt.Fprintf(c.out, "  %s\n", commands[n].usage)
	}
	fmt.Fprintln(c.out, "  quit")
	return nil
}

func (c *Console) students(_ []string) error {
	fmt.Fprintln(c.out, "Registered Students:")
	for _, s := range c.reg.Students() {
		fmt.Fprintf(c.out, "Student ID: %s, Name: %s\n", s.ID(), s.Name)
	}
	return nil
}

func (c *Console) courses(_ []string) error {
	fmt.Fprintln(c.out, "Courses:")
	for _, course := range c.reg.Courses() {
		fmt.Fprintf(c.out, "Course Code: %s, Name: %s, Kind: %s\n", course.Code(), course.Name, course.Kind)
	}
	return nil
}

func (c *Console) addStudent(args []string) error {
	id, name := args[0], strings.Join(args[1:], " ")
	if err := validation.Join(validation.StudentID(id), validation.Name(name)); err != nil {
		return err
	}
	if !c.reg.AddStudent(registry.NewStudent(id, name)) {
		fmt.Fprintf(c.out, "Student ID %s already exists; kept existing record\n", id)
		return nil
	}
	fmt.Fprintf(c.out, "Added student %s (%s)\n", id, name)
	return nil
}

func (c *Console) addCourse(args []string) error {
	code, name := args[0], strings.Join(args[1:], " ")
	if err := validation.Join(validation.CourseCode(code), validation.Name(name)); err != nil {
		return err
	}
	if !c.reg.AddCourse(registry.NewCourse(code, name)) {
		fmt.Fprintf(c.out, "Course Code %s already exists; kept existing record\n", code)
		return nil
	}
	fmt.Fprintf(c.out, "Added course %s (%s)\n", code, name)
	return nil
}

func (c *Console) register(args []string) error {
	id, code := args[0], args[1]
	if err := validation.Join(validation.StudentID(id), validation.CourseCode(code)); err != nil {
		return err
	}
	if !c.reg.RegisterStudentToCourse(id, code) {
		return fmt.Errorf("student %s or course %s not found", id, code)
	}
	fmt.Fprintf(c.out, "Registered Student ID %s in Course Code %s\n", id, code)
	return nil
}

func (c *Console) grade(args []string) error {
	id, code := args[0], args[1]
	score, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return errInvalidScore
	}
	if err := validation.Join(validation.StudentID(id), validation.CourseCode(code), validation.Score(score)); err != nil {
		return err
	}
	if !c.reg.AddOrEditGrade(id, code, score) {
		return errNotRegistered
	}
	fmt.Fprintf(c.out, "Grade updated for Student ID %s, Course Code %s: %s (%s)\n",
		id, code, exchange.FormatScore(score), grading.Letter(score))
	return nil
}

func (c *Console) gpa(args []string) error {
	id := args[0]
	if err := validation.StudentID(id); err != nil {
		return err
	}
	gpa, err := c.reg.CalculateGPA(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "GPA for Student ID %s is: %.2f\n", id, gpa)
	return nil
}

func (c *Console) registered(args []string) error {
	id := args[0]
	if err := validation.StudentID(id); err != nil {
		return err
	}
	codes := c.reg.GetRegisteredCoursesForStudent(id)
	if len(codes) == 0 {
		fmt.Fprintf(c.out, "No courses for Student ID %s\n", id)
		return nil
	}
	fmt.Fprintf(c.out, "Courses for Student ID %s: %s\n", id, strings.Join(codes, ", "))
	return nil
}

func (c *Console) roster(args []string) error {
	code := args[0]
	if err := validation.CourseCode(code); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Students in Course Code %s:\n", code)
	for _, s := range c.reg.GetStudentsForCourse(code) {
		line := fmt.Sprintf("Student ID: %s, Name: %s", s.ID(), s.Name)
		if score, ok := s.Score(code); ok {
			line += ", Score: " + exchange.FormatScore(score)
		}
		fmt.Fprintln(c.out, line)
	}
	return nil
}

func (c *Console) importFile(args []string) error {
	rep, err := exchange.ImportFile(args[0], c.reg, c.importOpts)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	for _, fe := range rep.Errors {
		fmt.Fprintf(c.out, "Format Error: %v\n", fe)
	}
	for _, r := range rep.Rejected {
		fmt.Fprintf(c.out, "Skipped line %d: Student ID %s is not registered in Course Code %s\n",
			r.Line, r.StudentID, r.CourseCode)
	}
	fmt.Fprintf(c.out, "Imported %d lines\n", rep.Lines)
	return c.students(nil)
}

func (c *Console) exportFile(args []string) error {
	n, err := exchange.ExportFile(args[0], c.reg)
	if err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}
	fmt.Fprintf(c.out, "Exported %d scores to %s\n", n, args[0])
	return nil
}

func (c *Console) report(args []string) error {
	if err := report.WriteFile(args[0], c.reg); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Wrote transcript to %s\n", args[0])
	return nil
}
