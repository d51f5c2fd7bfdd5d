// Command scale-check prints a reference table for a transform so codec and
// engine authors can eyeball scale values against other implementations.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"cytogate/pkg/gating"
)

var exitFunc = os.Exit

func main() {
	kind := flag.String("kind", "logicle", "transform kind: linear, log, inverse_hyperbolic_sine, logicle")
	top := flag.Float64("T", 262144, "top of scale")
	width := flag.Float64("W", 0.5, "linear decades (logicle)")
	decades := flag.Float64("M", 4.5, "total decades")
	negDecades := flag.Float64("A", 0, "extra negative decades")
	steps := flag.Int("steps", 16, "number of table rows")
	flag.Parse()

	if err := run(os.Stdout, *kind, *top, *width, *decades, *negDecades, *steps); err != nil {
		fmt.Fprintf(os.Stderr, "scale-check: %v\n", err)
		exitFunc(1)
	}
}

func run(out io.Writer, kind string, top, width, decades, negDecades float64, steps int) error {
	transform, err := buildTransform(kind, top, width, decades, negDecades)
	if err != nil {
		return err
	}
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	fmt.Fprintf(out, "# %s T=%g W=%g M=%g A=%g\n", transform.Kind(), top, width, decades, negDecades)
	for i := 0; i <= steps; i++ {
		raw := -0.1*top + 1.1*top*float64(i)/float64(steps)
		scaled, err := transform.Apply(raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%18.6f  %12.9f\n", raw, scaled)
	}
	return nil
}

func buildTransform(kind string, top, width, decades, negDecades float64) (gating.Transform, error) {
	switch gating.ParseTransformKind(kind) {
	case gating.TransformLinear:
		return gating.NewLinearTransform(top, negDecades)
	case gating.TransformLogarithmic:
		return gating.NewLogarithmicTransform(top, decades)
	case gating.TransformAsinh:
		return gating.NewAsinhTransform(top, decades, negDecades)
	case gating.TransformLogicle:
		return gating.NewLogicleTransform(top, width, decades, negDecades)
	default:
		return nil, fmt.Errorf("unsupported transform kind %q", kind)
	}
}
