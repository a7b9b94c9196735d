package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/plane"
	"github.com/pkg/errors"
)

// Read whitespace separated numbers from each line, expecting exactly n of
// them per line.
func readLines(in io.Reader, n int) ([][]float64, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != n {
			return nil, errors.Errorf("line %d: expected %d numbers, got %d", lineNumber, n, len(fields))
		}
		row := make([]float64, n)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, errors.Wrap(scanner.Err(), "reading input")
}

func readPoints(in io.Reader) ([]plane.Point, error) {
	rows, err := readLines(in, 2)
	if err != nil {
		return nil, err
	}
	points := make([]plane.Point, len(rows))
	for i, row := range rows {
		points[i] = plane.Point{X: row[0], Y: row[1]}
	}
	return points, nil
}

func readSegments(in io.Reader) ([]plane.Segment, error) {
	rows, err := readLines(in, 4)
	if err != nil {
		return nil, err
	}
	segments := make([]plane.Segment, len(rows))
	for i, row := range rows {
		segments[i] = plane.Segment{
			Start: plane.Point{X: row[0], Y: row[1]},
			End:   plane.Point{X: row[2], Y: row[3]},
		}
	}
	return segments, nil
}
