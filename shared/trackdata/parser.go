package trackdata

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ParsePoints reads waypoints from r, one "x y [z]" triple per line. Text after
// '#' is ignored and blank lines are skipped. file is only used in errors.
func ParsePoints(r io.Reader, file string) ([]mgl64.Vec3, error) {
	var points []mgl64.Vec3

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		// z-coordinate missing, default to 0
		if len(fields) == 2 {
			fields = append(fields, "0")
		} else if len(fields) != 3 {
			return nil, &FormatError{
				File:   file,
				Line:   lineNo,
				Reason: fmt.Sprintf("expected 2 or 3 coordinates, got %d", len(fields)),
			}
		}

		var p mgl64.Vec3
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &FormatError{
					File:   file,
					Line:   lineNo,
					Reason: fmt.Sprintf("%q is not a finite number", field),
				}
			}
			p[i] = v
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	return points, nil
}

// CloseLoop drops a trailing point that repeats the first one. The loop is
// implied by wraparound indexing afterwards.
func CloseLoop(points []mgl64.Vec3) []mgl64.Vec3 {
	if len(points) > 1 && points[0] == points[len(points)-1] {
		return points[:len(points)-1]
	}
	return points
}
