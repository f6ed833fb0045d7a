package solver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/fields"
	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/types"
	"github.com/notargets/gopointbc/utils"
)

const DisplacementFieldName = "pointD"

// PatchSample is the state of one patch at one time level
type PatchSample struct {
	Patch          string
	MeanValue      [3]float64
	Velocity       [3]float64
	LinearMomentum [3]float64
	HasMomentum    bool
}

type HistoryEntry struct {
	Time    float64
	Samples []PatchSample
}

// Case drives the nodal displacement field of a point mesh through time
type Case struct {
	Mesh    *mesh.PointMesh
	D       *fields.PointVectorField
	Time    *Time
	History []HistoryEntry
	OutDir  string // time directories are written here when not empty
}

func NewCase(m *mesh.PointMesh, bf map[string]dictionary.Dictionary, tm *Time) (c *Case, err error) {
	c = &Case{
		Mesh: m,
		D:    fields.NewPointVectorField(DisplacementFieldName, types.DimLength, m),
		Time: tm,
	}
	if err = c.D.ReadBoundaryField(bf); err != nil {
		return nil, err
	}
	return
}

// Step corrects the boundary conditions at the current time and records the patch history
func (c *Case) Step(tm *Time) (err error) {
	c.D.CorrectBoundaryConditions(tm.Value)
	if utils.IsNan(c.D.Internal) {
		return fmt.Errorf("NaN found in field %q", c.D.Name)
	}
	c.History = append(c.History, c.sample(tm.Value))
	if len(c.OutDir) != 0 && tm.WriteTime() {
		err = c.WriteTime(tm)
	}
	return
}

func (c *Case) Run(ctx context.Context) error {
	return c.Time.Run(ctx, c.Step)
}

func (c *Case) sample(t float64) (he HistoryEntry) {
	he.Time = t
	for _, pf := range c.D.Boundary {
		ps := PatchSample{Patch: pf.Patch().Name}
		copy(ps.MeanValue[:], utils.ColumnMeans(pf.Values()))
		if ms, ok := pf.(fields.MomentumSource); ok {
			ps.HasMomentum = true
			ps.Velocity = ms.VelocityAt(t)
			ps.LinearMomentum = ms.LinearMomentumAt(t)
		}
		he.Samples = append(he.Samples, ps)
	}
	return
}

// WriteTime writes the displacement field, stamped with its time, to <OutDir>/<time>/pointD.yaml
func (c *Case) WriteTime(tm *Time) (err error) {
	var (
		dir  = filepath.Join(c.OutDir, tm.Name())
		d    = c.D.Write()
		data []byte
	)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	d.Set("time", tm.Value)
	if data, err = d.Marshal(); err != nil {
		return
	}
	return os.WriteFile(filepath.Join(dir, c.D.Name+".yaml"), data, 0o644)
}

/*
ReadTime reads a field written by WriteTime and returns its boundary dictionaries and its time. A file
without a "time" keyword takes the time from its directory name.
*/
func ReadTime(path string) (bf map[string]dictionary.Dictionary, t float64, err error) {
	var (
		data []byte
		d    dictionary.Dictionary
		bfd  dictionary.Dictionary
	)
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	if d, err = dictionary.Parse(filepath.Base(path), data); err != nil {
		return
	}
	if d.Found("time") {
		if t, err = d.Scalar("time"); err != nil {
			return
		}
	} else {
		dirName := filepath.Base(filepath.Dir(path))
		if t, err = strconv.ParseFloat(dirName, 64); err != nil {
			return nil, 0, fmt.Errorf("%s: no time keyword and directory %q is not a time: %w", path, dirName, err)
		}
	}
	if bfd, err = d.SubDict("boundaryField"); err != nil {
		return
	}
	bf = make(map[string]dictionary.Dictionary, len(bfd.Entries))
	for _, name := range bfd.Keys() {
		var pd dictionary.Dictionary
		if pd, err = bfd.SubDict(name); err != nil {
			return nil, 0, err
		}
		pd.Name = name
		bf[name] = pd
	}
	return
}
