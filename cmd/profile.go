package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/gopointbc/bcs"
	"github.com/notargets/gopointbc/types"
)

// ProfileCmd tabulates the displacement ramp for a maximum displacement and end time
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Tabulate the displacement, velocity and linear momentum ramp",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			disp      string
			tEnd, rho float64
			n         int
			uMax      types.Vector
		)
		disp, _ = cmd.Flags().GetString("displacement")
		tEnd, _ = cmd.Flags().GetFloat64("endTime")
		rho, _ = cmd.Flags().GetFloat64("density")
		n, _ = cmd.Flags().GetInt("n")
		if uMax, err = types.ParseVector(disp); err != nil {
			return
		}
		var rows [][4]types.Vector
		if rows, err = TabulateProfile(bcs.Profile{UMax: uMax, TEnd: tEnd}, rho, n); err != nil {
			return
		}
		fmt.Printf("%10s %36s %36s %36s\n", dimensioned("Time", types.DimTime),
			dimensioned("Displacement", types.DimLength), dimensioned("Velocity", types.DimVelocity),
			dimensioned("Linear momentum", types.DimMomentumDensity))
		for _, r := range rows {
			fmt.Printf("%10.5g %36s %36s %36s\n", r[0].X,
				types.FormatVector(r[1]), types.FormatVector(r[2]), types.FormatVector(r[3]))
		}
		return
	},
}

// TabulateProfile samples n+1 equally spaced times on [0, 1.5*TEnd]; each row is time (in X),
// displacement, velocity and linear momentum
func TabulateProfile(p bcs.Profile, rho float64, n int) (rows [][4]types.Vector, err error) {
	switch {
	case p.TEnd <= 0:
		return nil, fmt.Errorf("end time must be positive, have %g", p.TEnd)
	case rho <= 0:
		return nil, fmt.Errorf("density must be positive, have %g", rho)
	case n < 1:
		return nil, fmt.Errorf("need at least one interval, have %d", n)
	}
	tMax := 1.5 * p.TEnd
	for i := 0; i <= n; i++ {
		t := tMax * float64(i) / float64(n)
		v := p.Velocity(t)
		rows = append(rows, [4]types.Vector{
			{X: t},
			p.Displacement(t),
			v,
			{X: rho * v.X, Y: rho * v.Y, Z: rho * v.Z},
		})
	}
	return
}

func init() {
	rootCmd.AddCommand(ProfileCmd)
	ProfileCmd.Flags().StringP("displacement", "d", "(0 0.01 0)", "maximum displacement vector")
	ProfileCmd.Flags().Float64P("endTime", "e", 1, "time at which the maximum displacement is reached")
	ProfileCmd.Flags().Float64P("density", "r", 1000, "material density")
	ProfileCmd.Flags().IntP("n", "n", 15, "number of intervals")
}
