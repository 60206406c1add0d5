package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/geom"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func readPoints(in io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected two coordinates, got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geom.Point{x, y}, nil
}

// Read the points of the first <polygon> in an SVG document. Points are
// "x,y" pairs separated by whitespace, as in the points attribute.
func readSVGPoints(in io.Reader) ([]geom.Point, error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found in svg")
	}

	var points []geom.Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		point, err := parsePoint(strings.Replace(pointString, ",", " ", 1))
		if err != nil {
			return nil, errors.Wrapf(err, "polygon point %q", pointString)
		}
		points = append(points, point)
	}
	return points, nil
}
