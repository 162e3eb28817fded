package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/craab/hexapod/components/legs"
	"github.com/craab/hexapod/components/legs/gait"
	"github.com/craab/hexapod/config"
	"github.com/craab/hexapod/math3d"
	"github.com/craab/hexapod/utils"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

func main() {
	app := &cli.App{
		Name:  "craab",
		Usage: "compute leg endpoints of the hexapod for a pose",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML, JSON or TOML config file",
				EnvVars: []string{"CRAAB_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every joint change",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print JSON instead of a table",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "mounts",
				Usage:  "print the mount pose of every leg",
				Action: withRobot(printMounts),
			},
			{
				Name:   "stance",
				Usage:  "put every leg in the default stance",
				Action: withRobot(stance),
			},
			{
				Name:  "step",
				Usage: "take fixed tripod steps from the default stance",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "steps",
						Value: 1,
						Usage: "number of steps to take",
					},
					&cli.Float64Flag{
						Name:  "distance",
						Value: 0,
						Usage: "distance to pass to each step",
					},
					&cli.BoolFlag{
						Name:  "alternate",
						Usage: "move one tripod per step, starting with group A",
					},
				},
				Action: withRobot(step),
			},
			{
				Name:      "pose",
				Usage:     "set all eighteen joint angles",
				ArgsUsage: "FL.base FL.shoulder FL.elbow FR.base ... BR.elbow (degrees)",
				Action:    withRobot(pose),
			},
			{
				Name:      "local",
				Usage:     "transform a body space point into each leg's own space",
				ArgsUsage: "X Y Z",
				Action:    withRobot(local),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// withRobot loads the config, sets up logging and builds the robot before
// calling f.
func withRobot(f func(*cli.Context, *legs.Robot) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return err
		}

		lvl, err := cfg.Level()
		if err != nil {
			return err
		}

		if c.Bool("debug") {
			lvl = logrus.DebugLevel
		}

		logrus.SetLevel(lvl)
		logrus.SetOutput(os.Stderr)

		return f(c, cfg.NewRobot())
	}
}

func printMounts(c *cli.Context, r *legs.Robot) error {
	return renderMounts(c.App.Writer, r, c.Bool("json"))
}

func stance(c *cli.Context, r *legs.Robot) error {
	r.SetDefaultStance()
	return report(c, r)
}

func step(c *cli.Context, r *legs.Robot) error {
	n := c.Int("steps")
	if n < 0 {
		return fmt.Errorf("steps must not be negative: %d", n)
	}

	r.SetDefaultStance()
	walk(r, n, c.Float64("distance"), c.Bool("alternate"))

	return report(c, r)
}

// walk takes n steps. When alternate is set, each step moves a single tripod,
// switching groups every time; otherwise each step moves both.
func walk(r *legs.Robot, n int, distance float64, alternate bool) {
	g := gait.GroupA
	for i := 0; i < n; i++ {
		if alternate {
			r.StepGroup(g)
			g = g.Other()
			continue
		}

		r.StepForward(distance)
	}
}

func pose(c *cli.Context, r *legs.Robot) error {
	p, err := parsePose(c.Args().Slice())
	if err != nil {
		return err
	}

	r.SetPose(p)
	return report(c, r)
}

// parsePose converts eighteen angles in degrees into a pose, in radians.
func parsePose(args []string) (legs.Pose, error) {
	var p legs.Pose

	if len(args) != legs.NumLegs*legs.NumJoints {
		return p, fmt.Errorf("expected %d angles, got %d", legs.NumLegs*legs.NumJoints, len(args))
	}

	for i, s := range args {
		deg, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, errors.Wrapf(err, "angle %d", i)
		}

		p[i/legs.NumJoints][i%legs.NumJoints] = utils.Rad(deg)
	}

	return p, nil
}

func local(c *cli.Context, r *legs.Robot) error {
	v, err := parsePoint(c.Args().Slice())
	if err != nil {
		return err
	}

	return renderLocal(c.App.Writer, r, v, c.Bool("json"))
}

// parsePoint converts three coordinates into a vector.
func parsePoint(args []string) (math3d.Vector3, error) {
	var xyz [3]float64

	if len(args) != len(xyz) {
		return math3d.Vector3{}, fmt.Errorf("expected %d coordinates, got %d", len(xyz), len(args))
	}

	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math3d.Vector3{}, errors.Wrapf(err, "coordinate %d", i)
		}

		xyz[i] = f
	}

	return math3d.MakeVector3(xyz[0], xyz[1], xyz[2]), nil
}

func report(c *cli.Context, r *legs.Robot) error {
	for _, leg := range r.Legs() {
		if !leg.WithinLimits() {
			log.Warnf("%s is outside its joint limits", leg.Name())
		}
	}

	return renderLegs(c.App.Writer, r, c.Bool("json"))
}
