package exchange

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mmynk/gradebook/internal/registry"
)

// Export writes one Score line per graded course, students in registry order
// and grades in registration order. Student and course identities are not
// written, so re-importing needs those records to exist already.
func Export(w io.Writer, reg *registry.Registry) (int, error) {
	bw := bufio.NewWriter(w)
	count := 0
	for _, s := range reg.Students() {
		for _, g := range s.Grades() {
			if _, err := fmt.Fprintf(bw, "%s%s%s%s%s%s%s\n",
				TagScore, separator, s.ID(), separator, g.CourseCode, separator, FormatScore(g.Score)); err != nil {
				return count, fmt.Errorf("failed to write score line: %w", err)
			}
			count++
		}
	}
	if err := bw.Flush(); err != nil {
		return count, fmt.Errorf("failed to flush records: %w", err)
	}
	return count, nil
}

// ExportFile creates (or truncates) path and exports reg into it.
func ExportFile(path string, reg *registry.Registry) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", cerr)
		}
	}()

	return Export(f, reg)
}
