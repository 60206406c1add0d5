package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	input := `# unit square
0 0
1 0

1 1
  0 1
0.5 0.5
`
	points, err := readPoints(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}, points)
}

func TestReadPoints_Invalid(t *testing.T) {
	cases := []struct {
		name, input, message string
	}{
		{"one coordinate", "0 0\n1\n", "line 2: expected two coordinates"},
		{"bad x", "a 0\n", `line 1: invalid x value "a"`},
		{"bad y", "0 0\n0 0\n0 b\n", `line 3: invalid y value "b"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := readPoints(strings.NewReader(c.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.message)
		})
	}
}

func TestReadSVGPoints(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
  <polygon points="0,0 10,0 10,10 5,4 0,10"/>
  <polygon points="100,100 200,200 300,100"/>
</svg>`
	points, err := readSVGPoints(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{0, 0}, {10, 0}, {10, 10}, {5, 4}, {0, 10}}, points)

	_, err = readSVGPoints(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	assert.Error(t, err)

	_, err = readSVGPoints(strings.NewReader(`<svg><polygon points="0,0 1"/></svg>`))
	assert.Error(t, err)
}

func TestPrintIntersection(t *testing.T) {
	au := aurora.NewAurora(false)

	var buf bytes.Buffer
	printIntersection(&buf, au, geom.Point{1, 1}, true)
	assert.Equal(t, "1 1\n", buf.String())

	buf.Reset()
	printIntersection(&buf, au, geom.Point{}, false)
	assert.Equal(t, "no intersection\n", buf.String())
}
