package point

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads points from text, one "x,y,z" triple per line.
// Surrounding whitespace and blank lines are ignored.
func Parse(input string) ([]Point, error) {
	return ParseReader(strings.NewReader(input))
}

// ParseReader is like Parse but reads from r.
func ParseReader(r io.Reader) ([]Point, error) {
	var (
		pts  []Point
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return pts, nil
}

func parseLine(text string) (Point, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%q has %d fields: %w", text, len(fields), ErrMalformedLine)
	}
	var axes [3]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("%q: %v: %w", text, err, ErrMalformedLine)
		}
		axes[i] = v
	}

	return Point{X: axes[0], Y: axes[1], Z: axes[2]}, nil
}
