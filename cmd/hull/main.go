package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geom"
	"github.com/osuushi/geom/advanced"
	"github.com/osuushi/geom/dbg"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the geometry kernel. Input on stdin should be newline separated
// points in the form "x y". Alternatively, --svg reads the points of the first
// polygon in an SVG file.
//
// The hull command prints the convex hull, one point per line, and can render
// the point set and hull to a PNG. The intersect command takes exactly four
// points, two per segment, and prints where the segments cross.
var (
	app     = kingpin.New("hull", "Convex hulls and segment intersections.")
	svgFile = app.Flag("svg", "Read points from the first polygon in an SVG file instead of stdin.").ExistingFile()
	noColor = app.Flag("no-color", "Disable coloured output.").Bool()

	hullCmd = app.Command("hull", "Print the convex hull of a point set.").Default()
	pngFile = hullCmd.Flag("png", "Render the points and hull to a PNG file.").String()
	scale   = hullCmd.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
	labels  = hullCmd.Flag("labels", "Give every hull vertex a readable name.").Bool()
	show    = hullCmd.Flag("imgcat", "Print the rendering inline (iTerm only).").Bool()

	intersectCmd = app.Command("intersect", "Intersect two segments given as four points.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	points, err := loadPoints()
	if err != nil {
		log.Fatalf("Could not read points: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Read %d points\n", len(points))

	switch command {
	case hullCmd.FullCommand():
		runHull(au, points)
	case intersectCmd.FullCommand():
		runIntersect(au, points)
	}
}

func loadPoints() ([]geom.Point, error) {
	if *svgFile == "" {
		return readPoints(os.Stdin)
	}
	f, err := os.Open(*svgFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSVGPoints(f)
}

func runHull(au aurora.Aurora, points []geom.Point) {
	hull, err := geom.ConvexHull(points)
	if err != nil {
		log.Fatalf("Could not compute hull: %v", err)
	}

	for _, p := range hull {
		line := fmt.Sprintf("%g %g", p.X(), p.Y())
		if *labels {
			line = fmt.Sprintf("%s\t%s", line, dbg.ColorName(p))
		}
		fmt.Println(au.Green(line))
	}
	fmt.Fprintln(os.Stderr, au.Gray(12, fmt.Sprintf("Hull has %d of %d points, area %g", len(hull), len(points), advanced.PolygonArea(hull))))

	if *pngFile == "" && !*show {
		return
	}
	path, err := renderHull(points, hull)
	if err != nil {
		log.Fatalf("Could not render hull: %v", err)
	}
	if *show {
		imgcat.CatFile(path, os.Stdout)
	}
}

// Render to the --png path, or to a temporary file when only printing inline.
func renderHull(points, hull []geom.Point) (string, error) {
	c := advanced.DrawHull(points, hull, *scale, *labels)
	path := *pngFile
	if path == "" {
		f, err := os.CreateTemp("", "hull-*.png")
		if err != nil {
			return "", err
		}
		f.Close()
		path = f.Name()
	}
	return path, c.SavePNG(path)
}

func runIntersect(au aurora.Aurora, points []geom.Point) {
	if len(points) != 4 {
		log.Fatalf("Intersect needs exactly four points, got %d", len(points))
	}
	p, ok, err := geom.SegmentIntersection(points[0], points[1], points[2], points[3])
	if err != nil {
		log.Fatalf("Invalid segments: %v", err)
	}
	printIntersection(os.Stdout, au, p, ok)
}

func printIntersection(w io.Writer, au aurora.Aurora, p geom.Point, ok bool) {
	if !ok {
		fmt.Fprintln(w, au.Red("no intersection"))
		return
	}
	fmt.Fprintln(w, au.Green(fmt.Sprintf("%g %g", p.X(), p.Y())))
}
