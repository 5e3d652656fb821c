package exchange

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/gradebook/internal/registry"
)

const sampleRecords = `Student, S001, Noor
Student, S002, Laith
Course, MATH101, Mathematics
Course, PROG101, Programming
Enrollment, S001, MATH101
Enrollment, S001, PROG101
Enrollment, S002, PROG101
Score, S001, MATH101, 92
Score, S001, PROG101, 78.5
Score, S002, PROG101, 64
`

func TestImport(t *testing.T) {
	reg := registry.New()
	report, err := Import(strings.NewReader(sampleRecords), reg, Options{})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 10, report.Lines)
	assert.Equal(t, 2, report.Records[TagStudent])
	assert.Equal(t, 2, report.Records[TagCourse])
	assert.Equal(t, 3, report.Records[TagEnrollment])
	assert.Equal(t, 3, report.Records[TagScore])
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Rejected)

	gpa, err := reg.CalculateGPA("S001")
	require.NoError(t, err)
	assert.Equal(t, 3.0, gpa)
	assert.Equal(t, []string{"MATH101", "PROG101"}, reg.GetRegisteredCoursesForStudent("S001"))
}

func TestImportScoreForUnknownCourse(t *testing.T) {
	reg := registry.New()
	reg.AddStudent(registry.NewStudent("S001", "Noor"))

	report, err := Import(strings.NewReader("Score, S001, MATH999, 85\n"), reg, Options{})
	require.NoError(t, err)

	require.Len(t, report.Rejected, 1)
	assert.Equal(t, Rejection{Line: 1, StudentID: "S001", CourseCode: "MATH999", Score: 85}, report.Rejected[0])
	assert.Empty(t, report.Errors)

	s, _ := reg.Student("S001")
	assert.Empty(t, s.Grades())
}

func TestImportMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"Student, S001",                   // 1: dropped (2 fields)
		"Course, MATH101, Mathematics, X", // 2: dropped (4 fields)
		"Enrollment, S001",                // 3: dropped
		"Score, S001, MATH101",            // 4: reported
		"Score, S001, MATH101, abc",       // 5: reported with ids
		"Score, S001, MATH101, 140",       // 6: out of range
		"Grade, S001, MATH101, 90",        // 7: unknown tag
		"",                                // 8: blank
		"Student, S002, ",                 // 9: trailing empty field dropped
	}, "\n")

	t.Run("default tolerance", func(t *testing.T) {
		reg := registry.New()
		report, err := Import(strings.NewReader(input), reg, Options{})
		require.NoError(t, err)

		require.Len(t, report.Errors, 3)
		assert.Equal(t, 4, report.Errors[0].Line)
		assert.Equal(t, "line 4: invalid score line format", report.Errors[0].Error())
		assert.Equal(t, 5, report.Errors[1].Line)
		assert.Equal(t, "S001", report.Errors[1].StudentID)
		assert.Equal(t, "MATH101", report.Errors[1].CourseCode)
		assert.Contains(t, report.Errors[1].Error(), "invalid score format for student ID S001, course code MATH101")
		assert.Equal(t, "score out of range", report.Errors[2].Reason)
		assert.Equal(t, 1, report.Ignored)
		assert.Empty(t, reg.Students())
		assert.Empty(t, reg.Courses())
	})

	t.Run("report all", func(t *testing.T) {
		reg := registry.New()
		report, err := Import(strings.NewReader(input), reg, Options{ReportAll: true})
		require.NoError(t, err)

		lines := make([]int, len(report.Errors))
		for i, e := range report.Errors {
			lines[i] = e.Line
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 9}, lines)
		assert.Equal(t, TagStudent, report.Errors[0].Tag)
	})
}

func TestImportIsPartialOnReadFailure(t *testing.T) {
	reg := registry.New()
	r := &failingReader{data: "Student, S001, Noor\n", err: errors.New("disk gone")}

	_, err := Import(r, reg, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	_, ok := reg.Student("S001")
	assert.True(t, ok, "lines read before the failure stay applied")
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "nope.txt"), registry.New(), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExport(t *testing.T) {
	reg := registry.New()
	_, err := Import(strings.NewReader(sampleRecords), reg, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := Export(&buf, reg)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "Score, S001, MATH101, 92.0\nScore, S001, PROG101, 78.5\nScore, S002, PROG101, 64.0\n", buf.String())
}

func TestExportImportRoundTrip(t *testing.T) {
	src := registry.New()
	_, err := Import(strings.NewReader(sampleRecords), src, Options{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scores.txt")
	_, err = ExportFile(path, src)
	require.NoError(t, err)

	// Identity lines are not exported, so the target needs them up front.
	dst := registry.New()
	identities := strings.SplitAfterN(sampleRecords, "Score", 2)[0]
	identities = strings.TrimSuffix(identities, "Score")
	_, err = Import(strings.NewReader(identities), dst, Options{})
	require.NoError(t, err)

	report, err := ImportFile(path, dst, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Records[TagScore])

	assert.Equal(t, triples(src), triples(dst))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "92.0", FormatScore(92))
	assert.Equal(t, "78.5", FormatScore(78.5))
	assert.Equal(t, "0.0", FormatScore(0))
	assert.Equal(t, "89.999", FormatScore(89.999))
}

type triple struct {
	StudentID, CourseCode string
	Score                 float64
}

func triples(reg *registry.Registry) []triple {
	var out []triple
	for _, s := range reg.Students() {
		for _, g := range s.Grades() {
			out = append(out, triple{s.ID(), g.CourseCode, g.Score})
		}
	}
	return out
}

type failingReader struct {
	data string
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, r.data), nil
}
