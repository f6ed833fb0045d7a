package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/readfiles"
	"github.com/notargets/gopointbc/types"
)

type PatchParameters struct {
	Type   string `yaml:"Type"`
	Points []int  `yaml:"Points"`
}

// Parameters obtained from the YAML case file
type InputParameters struct {
	Title         string                            `yaml:"Title"`
	DeltaT        float64                           `yaml:"DeltaT"`
	EndTime       float64                           `yaml:"EndTime"`
	WriteInterval int                               `yaml:"WriteInterval"`
	MeshFile      string                            `yaml:"MeshFile"` // SU2 mesh, used instead of Points when given
	Points        [][3]float64                      `yaml:"Points"`
	Patches       map[string]PatchParameters        `yaml:"Patches"`
	BoundaryField map[string]map[string]interface{} `yaml:"BoundaryField"` // First key is the patch name, second the BC keyword
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Validate() (err error) {
	switch {
	case ip.DeltaT <= 0:
		err = fmt.Errorf("DeltaT must be positive, have %g", ip.DeltaT)
	case ip.EndTime < 0:
		err = fmt.Errorf("EndTime must not be negative, have %g", ip.EndTime)
	case ip.WriteInterval < 0:
		err = fmt.Errorf("WriteInterval must not be negative, have %d", ip.WriteInterval)
	case len(ip.Points) == 0 && len(ip.MeshFile) == 0:
		err = fmt.Errorf("no Points or MeshFile given")
	case len(ip.Points) != 0 && len(ip.MeshFile) != 0:
		err = fmt.Errorf("give either Points or MeshFile, not both")
	case len(ip.Patches) == 0 && len(ip.MeshFile) == 0:
		err = fmt.Errorf("no Patches given")
	}
	return
}

func (ip *InputParameters) PatchNames() (names []string) {
	for name := range ip.Patches {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Mesh builds the point mesh. Patches given in the deck are numbered in name order, patches read from
// a mesh file keep the file's marker order and take their Type from the deck.
func (ip *InputParameters) Mesh() (m *mesh.PointMesh, err error) {
	if len(ip.MeshFile) != 0 {
		patchTypes := make(map[string]types.PatchType, len(ip.Patches))
		for name, pp := range ip.Patches {
			patchTypes[name] = types.ParsePatchType(pp.Type)
		}
		return readfiles.ReadSU2(ip.MeshFile, patchTypes, false)
	}
	var specs []mesh.PatchSpec
	for _, name := range ip.PatchNames() {
		pp := ip.Patches[name]
		specs = append(specs, mesh.PatchSpec{
			Name:   name,
			Type:   types.ParsePatchType(pp.Type),
			Points: pp.Points,
		})
	}
	return mesh.NewPointMesh(ip.Points, specs)
}

func (ip *InputParameters) BoundaryDicts() (bf map[string]dictionary.Dictionary) {
	bf = make(map[string]dictionary.Dictionary, len(ip.BoundaryField))
	for name, entries := range ip.BoundaryField {
		bf[name] = dictionary.FromMap(name, entries)
	}
	return
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= DeltaT\n", ip.DeltaT)
	fmt.Printf("%8.5f\t\t= EndTime\n", ip.EndTime)
	fmt.Printf("[%d]\t\t\t\t= WriteInterval\n", ip.WriteInterval)
	if len(ip.MeshFile) != 0 {
		fmt.Printf("[%s]\t= MeshFile\n", ip.MeshFile)
	} else {
		fmt.Printf("[%d]\t\t\t\t= Number of points\n", len(ip.Points))
	}
	for _, name := range ip.PatchNames() {
		pp := ip.Patches[name]
		fmt.Printf("Patches[%s] = %s %v\n", name, types.ParsePatchType(pp.Type), pp.Points)
	}
	keys := make([]string, 0, len(ip.BoundaryField))
	for k := range ip.BoundaryField {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BoundaryField[%s] = %v\n", key, ip.BoundaryField[key])
	}
}
