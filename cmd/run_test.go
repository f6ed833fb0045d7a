package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopointbc/bcs"
	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/types"
)

func TestRunCase(t *testing.T) {
	dir := t.TempDir()
	icFile := filepath.Join(dir, "case.yaml")
	require.NoError(t, os.WriteFile(icFile, []byte(exampleFile), 0o644))

	mr := &ModelRun{ICFile: icFile, OutDir: filepath.Join(dir, "out"), Verbose: true}
	ip, err := processInput(mr)
	require.NoError(t, err)
	assert.Equal(t, "Moving top", ip.Title)
	assert.Equal(t, "(0 0.01 0)", ip.BoundaryField["top"]["displacement"])

	c, err := RunCase(context.Background(), mr, ip)
	require.NoError(t, err)
	assert.Len(t, c.History, 41)
	PrintHistory(c)
	for _, name := range []string{"0", "0.5", "1", "1.5", "2"} {
		assert.FileExists(t, filepath.Join(mr.OutDir, name, "pointD.yaml"))
	}
	pf, err := c.D.PatchField("top")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.01, 0, 0, 0.01, 0}, pf.Values().RawMatrix().Data)

	{ // Input errors
		_, err = processInput(&ModelRun{})
		assert.Error(t, err)
		_, err = processInput(&ModelRun{ICFile: filepath.Join(dir, "none.yaml")})
		assert.Error(t, err)
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("DeltaT: 0\n"), 0o644))
		_, err = processInput(&ModelRun{ICFile: bad})
		assert.Error(t, err)
	}
	{ // A run restarted from a written time ends with the same field as the full run
		mrR := &ModelRun{
			ICFile:  icFile,
			OutDir:  filepath.Join(dir, "restarted"),
			Restart: filepath.Join(mr.OutDir, "1", "pointD.yaml"),
		}
		ipR, err := processInput(mrR)
		require.NoError(t, err)
		cR, err := RunCase(context.Background(), mrR, ipR)
		require.NoError(t, err)
		assert.Len(t, cR.History, 21)
		assert.Equal(t, 1., cR.History[0].Time)
		assert.Equal(t, c.History[20:], cR.History)
		assert.NoFileExists(t, filepath.Join(mrR.OutDir, "0.5", "pointD.yaml"))
		for _, name := range []string{"1", "1.5", "2"} {
			want, err := os.ReadFile(filepath.Join(mr.OutDir, name, "pointD.yaml"))
			require.NoError(t, err)
			got, err := os.ReadFile(filepath.Join(mrR.OutDir, name, "pointD.yaml"))
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), "time %s", name)
		}

		mrR.Restart = filepath.Join(mr.OutDir, "7", "pointD.yaml")
		_, err = RunCase(context.Background(), mrR, ipR)
		assert.Error(t, err)
	}
	{ // A boundary condition missing its end time fails before any step
		ip.BoundaryField["top"] = map[string]interface{}{
			"type":         bcs.MovingDisplacementNodalLinearMomentumType,
			"density":      1000.,
			"displacement": "(0 0.01 0)",
		}
		c, err = RunCase(context.Background(), &ModelRun{}, ip)
		assert.Nil(t, c)
		assert.True(t, dictionary.IsConfigurationError(err))
	}
}

func TestTabulateProfile(t *testing.T) {
	p := bcs.Profile{UMax: types.Vector{Y: 0.01}, TEnd: 1}
	rows, err := TabulateProfile(p, 1000, 6)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, types.Vector{}, rows[0][1])
	assert.Equal(t, 0.5, rows[2][0].X)
	assert.InDelta(t, 0.005, rows[2][1].Y, 1e-15)
	assert.InDelta(t, 1000*rows[2][2].Y, rows[2][3].Y, 1e-12)
	assert.Equal(t, types.Vector{Y: 0.01}, rows[4][1])
	assert.Equal(t, types.Vector{Y: 0.01}, rows[6][1])

	_, err = TabulateProfile(bcs.Profile{TEnd: 0}, 1000, 6)
	assert.Error(t, err)
	_, err = TabulateProfile(p, 0, 6)
	assert.Error(t, err)
	_, err = TabulateProfile(p, 1000, 0)
	assert.Error(t, err)
}
