package cmd

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gopointbc/InputParameters"
	_ "github.com/notargets/gopointbc/bcs"
	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/solver"
	"github.com/notargets/gopointbc/types"
	"github.com/notargets/gopointbc/utils"
)

type ModelRun struct {
	ICFile  string
	OutDir  string
	Restart string // pointD.yaml of a written time level, the run continues from that time
	Verbose bool
}

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a case file through time, writing the displacement field",
	Long:  `Run a case file through time, writing the displacement field`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		mr := &ModelRun{}
		if mr.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		mr.OutDir, _ = cmd.Flags().GetString("outDir")
		mr.Restart, _ = cmd.Flags().GetString("restart")
		mr.Verbose = viper.GetBool("verbose")
		var ip *InputParameters.InputParameters
		if ip, err = processInput(mr); err != nil {
			return
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		var c *solver.Case
		if c, err = RunCase(ctx, mr, ip); err != nil {
			return
		}
		PrintHistory(c)
		return
	},
}

const exampleFile = `
########################################
Title: "Moving top"
DeltaT: 0.05
EndTime: 2
WriteInterval: 10
Points: [[0,0,0], [1,0,0], [0,1,0], [1,1,0]]
Patches:
  bottom: {Type: wall, Points: [0, 1]}
  top:    {Type: patch, Points: [2, 3]}
BoundaryField:
  bottom:
    type: zeroDisplacement
  top:
    type: movingDisplacementNodalLinearMomentum
    density: 1000
    displacement: (0 0.01 0)
    endTime: 1.0
########################################
`

func processInput(mr *ModelRun) (ip *InputParameters.InputParameters, err error) {
	if len(mr.ICFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		return
	}
	var data []byte
	if data, err = ioutil.ReadFile(mr.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", mr.ICFile, err)
	}
	if err = ip.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", mr.ICFile, err)
	}
	if len(ip.MeshFile) != 0 && !filepath.IsAbs(ip.MeshFile) {
		ip.MeshFile = filepath.Join(filepath.Dir(mr.ICFile), ip.MeshFile)
	}
	return
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML case file with:\n\t- DeltaT, EndTime, WriteInterval\n\t- Points, Patches\n\t- BoundaryField")
	RunCmd.Flags().StringP("outDir", "o", "", "directory for the time directories, nothing is written when empty")
	RunCmd.Flags().StringP("restart", "r", "", "continue from a written field, e.g. out/1/pointD.yaml")
}

func RunCase(ctx context.Context, mr *ModelRun, ip *InputParameters.InputParameters) (c *solver.Case, err error) {
	if mr.Verbose {
		ip.Print()
	}
	m, err := ip.Mesh()
	if err != nil {
		return
	}
	if mr.Verbose {
		PrintMesh(m)
	}
	var (
		bf        = ip.BoundaryDicts()
		startTime float64
	)
	if len(mr.Restart) != 0 {
		if bf, startTime, err = solver.ReadTime(mr.Restart); err != nil {
			return
		}
		fmt.Printf("Restarting from %s at time %g\n", mr.Restart, startTime)
	}
	tm, err := solver.NewTime(startTime, ip.DeltaT, ip.EndTime, ip.WriteInterval)
	if err != nil {
		return
	}
	if c, err = solver.NewCase(m, bf, tm); err != nil {
		return
	}
	c.OutDir = mr.OutDir
	step := c.Step
	if mr.Verbose {
		step = func(tm *solver.Time) error {
			if err := c.Step(tm); err != nil {
				return err
			}
			fmt.Printf("Time = %s\n", tm.Name())
			return nil
		}
	}
	if err = tm.Run(ctx, step); err != nil {
		return
	}
	fmt.Printf("End, %d steps, %s\n", tm.Index, utils.GetMemUsage())
	return
}

// PrintMesh lists every patch with its point coordinates
func PrintMesh(m *mesh.PointMesh) {
	fmt.Printf("%d points, patches %v\n", m.NPoints(), m.PatchNames())
	for _, pp := range m.Patches {
		X := pp.LocalPoints()
		fmt.Printf("Patch[%s] (%s), %d points\n", pp.Name, pp.Type, pp.Size())
		for i, label := range pp.MeshPoints {
			fmt.Printf("%8d %s\n", label, types.FormatVector(types.Vector{X: X.At(i, 0), Y: X.At(i, 1), Z: X.At(i, 2)}))
		}
	}
}

// dimensioned labels a table column with its SI exponents
func dimensioned(name string, dims types.DimensionSet) string {
	return name + " " + dims.String()
}

func PrintHistory(c *solver.Case) {
	fmt.Printf("%10s %-12s %36s %36s\n", dimensioned("Time", types.DimTime), "Patch",
		dimensioned("Mean value", c.D.Dimensions), dimensioned("Linear momentum", types.DimMomentumDensity))
	for _, he := range c.History {
		for _, s := range he.Samples {
			lm := "-"
			if s.HasMomentum {
				lm = fmt.Sprintf("(%10.4g %10.4g %10.4g)", s.LinearMomentum[0], s.LinearMomentum[1], s.LinearMomentum[2])
			}
			fmt.Printf("%10.5g %-12s (%10.4g %10.4g %10.4g) %36s\n",
				he.Time, s.Patch, s.MeanValue[0], s.MeanValue[1], s.MeanValue[2], lm)
		}
	}
}
