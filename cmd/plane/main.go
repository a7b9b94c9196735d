package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/plane"
	"github.com/osuushi/plane/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the plane queries. Input on stdin is one point per
// line in the form "x y", or for the segment commands, one segment per line in
// the form "x1 y1 x2 y2". Blank lines and lines starting with # are skipped.

var (
	app = kingpin.New("plane", "Planar geometry queries on points and segments read from stdin.")

	decimals = app.Flag("decimals", "Round intersection points to this many decimal places (<= 0 for full precision).").
			Default("-1").Envar("PLANE_DECIMALS").Int()
	pngPath = app.Flag("png", "Also render the input and result to this PNG file.").
		Envar("PLANE_PNG").String()
	showImage = app.Flag("imgcat", "Print the rendering to the terminal (iTerm only). Implies --png.").Bool()
	noColor   = app.Flag("no-color", "Disable colored output.").Envar("PLANE_NO_COLOR").Bool()
	verbose   = app.Flag("verbose", "Log what's happening to stderr.").Short('v').Envar("PLANE_VERBOSE").Bool()

	closestCmd       = app.Command("closest", "Find the closest pair of points.")
	intersectionsCmd = app.Command("intersections", "Find every point where two segments cross.")
	intersectCmd     = app.Command("intersect", "Find where exactly two segments cross.")
	hullCmd          = app.Command("hull", "Find the convex hull of the points.")
)

const renderSize = 600

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			app.Fatalf("could not create logger: %v", err)
		}
	}
	defer logger.Sync()

	if *showImage && *pngPath == "" {
		*pngPath = "/tmp/plane.png"
	}

	r := &runner{
		au:        aurora.NewAurora(!*noColor),
		logger:    logger,
		out:       os.Stdout,
		decimals:  *decimals,
		pngPath:   *pngPath,
		showImage: *showImage,
	}
	if err := r.run(command, os.Stdin); err != nil {
		logger.Debug("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintln(os.Stderr, r.au.Red(err))
		os.Exit(1)
	}
}

type runner struct {
	au     aurora.Aurora
	logger *zap.Logger
	out    io.Writer

	decimals  int
	pngPath   string
	showImage bool
}

func (r *runner) run(command string, in io.Reader) error {
	scene := &internal.Scene{}

	switch command {
	case closestCmd.FullCommand():
		points, err := readPoints(in)
		if err != nil {
			return err
		}
		r.logger.Debug("finding closest pair", zap.Int("points", len(points)))
		pair, err := plane.ClosestPair(points...)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "%v %v %v\n", r.au.Green(pair.A), r.au.Green(pair.B), r.au.Bold(pair.Distance))
		scene.Points = points
		scene.Marks = []plane.Point{pair.A, pair.B}

	case intersectionsCmd.FullCommand():
		segments, err := readSegments(in)
		if err != nil {
			return err
		}
		r.logger.Debug("finding intersections", zap.Int("segments", len(segments)))
		points := plane.SegmentIntersections(segments...)
		for _, p := range points {
			fmt.Fprintln(r.out, r.au.Green(p.Round(r.decimals)))
		}
		r.logger.Debug("found intersections", zap.Int("count", len(points)))
		scene.Segments = segments
		scene.Marks = points

	case intersectCmd.FullCommand():
		segments, err := readSegments(in)
		if err != nil {
			return err
		}
		if len(segments) != 2 {
			return errors.Errorf("intersect needs exactly 2 segments, got %d", len(segments))
		}
		p, err := plane.IntersectionPoint(segments[0], segments[1], r.decimals)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, r.au.Green(p))
		scene.Segments = segments
		scene.Marks = []plane.Point{p}

	case hullCmd.FullCommand():
		points, err := readPoints(in)
		if err != nil {
			return err
		}
		r.logger.Debug("computing convex hull", zap.Int("points", len(points)))
		hull, err := plane.ConvexHull(points...)
		if err != nil {
			return err
		}
		for _, p := range hull {
			fmt.Fprintln(r.out, r.au.Green(p))
		}
		r.logger.Debug("computed convex hull", zap.Int("vertices", len(hull)))
		scene.Points = points
		scene.Hull = hull

	default:
		return errors.Errorf("unknown command %q", command)
	}

	return r.render(scene)
}

func (r *runner) render(scene *internal.Scene) error {
	if r.pngPath == "" {
		return nil
	}
	if err := scene.SavePNG(r.pngPath, renderSize); err != nil {
		return err
	}
	r.logger.Debug("saved rendering", zap.String("path", r.pngPath))
	if r.showImage {
		return internal.CatPNG(r.pngPath, r.out)
	}
	return nil
}
