package fields

import (
	"fmt"
	"sort"

	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/mesh"
)

// Factory builds a patch field from its dictionary, returning a *dictionary.ConfigurationError on bad input
type Factory func(p *mesh.PointPatch, f *PointVectorField, d dictionary.Dictionary) (PatchField, error)

var factories = make(map[string]Factory)

// Register makes a boundary condition selectable by its type name, called from package init functions
func Register(typeName string, fcn Factory) {
	if _, ok := factories[typeName]; ok {
		panic(fmt.Errorf("cannot register boundary condition %q because the name exists already", typeName))
	}
	if fcn == nil {
		panic(fmt.Errorf("cannot register boundary condition %q with a nil factory", typeName))
	}
	factories[typeName] = fcn
}

func Registered(typeName string) bool {
	_, ok := factories[typeName]
	return ok
}

func Types() (names []string) {
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// New selects the factory named by the dictionary's "type" keyword
func New(p *mesh.PointPatch, f *PointVectorField, d dictionary.Dictionary) (pf PatchField, err error) {
	var (
		typeName string
	)
	if typeName, err = d.Word("type"); err != nil {
		return
	}
	fcn, ok := factories[typeName]
	if !ok {
		err = fmt.Errorf("unknown boundary condition type %q for patch %q, valid types are %v",
			typeName, p.Name, Types())
		return
	}
	if pf, err = fcn(p, f, d); err != nil {
		pf = nil
	}
	return
}
