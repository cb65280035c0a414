package cmd

import (
	"fmt"

	"github.com/sarchlab/ccd/collision"
	"github.com/sarchlab/ccd/geometry"
	"github.com/sarchlab/ccd/kinematics"
	"github.com/spf13/cobra"
)

type bodyFlags struct {
	radius   float32
	position []float32
	velocity []float32
	start    float32
}

type toiOptions struct {
	band      string
	detector  string
	from, to  float32
	exclusive bool
	bodies    [2]bodyFlags
}

func newTOICommand() *cobra.Command {
	opts := &toiOptions{}

	cmd := &cobra.Command{
		Use:   "toi",
		Short: "Find the time of impact of two moving circles.",
		Long: "`toi` prints the first time in [--from, --to] at which the " +
			"separation of two circles is inside the band, or `none`.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.band, "band", "DistanceBand(1e-05, 0.01)",
		"the separations that count as contact")
	flags.StringVar(&opts.detector, "detector",
		collision.FormatDetector(collision.NewDistancePairDetector()),
		"the detector to use")
	flags.Float32Var(&opts.from, "from", 0, "start of the query interval")
	flags.Float32Var(&opts.to, "to", 1, "end of the query interval")
	flags.BoolVar(&opts.exclusive, "exclusive", false,
		"print the latest instant known to be before contact instead")

	for i := range opts.bodies {
		b := &opts.bodies[i]
		n := i + 1

		flags.Float32Var(&b.radius, fmt.Sprintf("radius%d", n), 0.1,
			fmt.Sprintf("radius of circle %d", n))
		flags.Float32SliceVar(&b.position, fmt.Sprintf("position%d", n),
			[]float32{0, 0}, fmt.Sprintf("x,y of circle %d at its start", n))
		flags.Float32SliceVar(&b.velocity, fmt.Sprintf("velocity%d", n),
			[]float32{0, 0}, fmt.Sprintf("x,y velocity of circle %d", n))
		flags.Float32Var(&b.start, fmt.Sprintf("start%d", n), 0,
			fmt.Sprintf("time at which circle %d starts moving", n))
	}

	return cmd
}

func (o *toiOptions) run(cmd *cobra.Command) error {
	band, err := collision.ParseDistanceBand(o.band)
	if err != nil {
		return err
	}

	detector, err := collision.ParseDetector(o.detector)
	if err != nil {
		return err
	}

	interval, err := geometry.NewClosedInterval(o.from, o.to)
	if err != nil {
		return err
	}

	var bodies [2]kinematics.Body
	for i, b := range o.bodies {
		if bodies[i], err = b.build(); err != nil {
			return fmt.Errorf("circle %d: %w", i+1, err)
		}
	}

	toi, ok := detector.TestCollision(
		interval, band, !o.exclusive, bodies[0], bodies[1])
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "none")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", toi)

	return nil
}

func (b bodyFlags) build() (kinematics.Body, error) {
	position, err := toVec2(b.position)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}

	velocity, err := toVec2(b.velocity)
	if err != nil {
		return nil, fmt.Errorf("velocity: %w", err)
	}

	circle, err := geometry.NewCircle(position, b.radius)
	if err != nil {
		return nil, err
	}

	return kinematics.MakeLinearBodyBuilder().
		WithShape(circle).
		WithVelocity(velocity).
		WithStartTime(b.start).
		Build(), nil
}

func toVec2(v []float32) (geometry.Vec2, error) {
	if len(v) != 2 {
		return geometry.Vec2{}, fmt.Errorf("expected x,y, got %v", v)
	}

	return geometry.Vec2{X: v[0], Y: v[1]}, nil
}
