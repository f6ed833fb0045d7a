package dictionary

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gopointbc/types"
)

/*
Dictionary is a keyword/value block read from a YAML deck, for example a boundary condition entry:

	top:
	  type: movingDisplacementNodalLinearMomentum
	  density: 1000
	  displacement: (0 0.01 0)
	  endTime: 1.0

Lookups are strict: there are no defaults, a missing or malformed keyword is a *ConfigurationError.
*/
type Dictionary struct {
	Name    string
	Entries map[string]interface{}
}

func New(name string) Dictionary {
	return Dictionary{Name: name, Entries: make(map[string]interface{})}
}

func FromMap(name string, m map[string]interface{}) Dictionary {
	if m == nil {
		m = make(map[string]interface{})
	}
	return Dictionary{Name: name, Entries: m}
}

func Parse(name string, data []byte) (d Dictionary, err error) {
	d = New(name)
	if err = yaml.Unmarshal(data, &d.Entries); err != nil {
		err = fmt.Errorf("unable to parse dictionary %q: %w", name, err)
		return
	}
	if d.Entries == nil {
		d.Entries = make(map[string]interface{})
	}
	return
}

func (d Dictionary) Marshal() ([]byte, error) {
	return yaml.Marshal(d.Entries)
}

func (d Dictionary) Found(key string) bool {
	_, ok := d.Entries[key]
	return ok
}

func (d Dictionary) Keys() (keys []string) {
	keys = make([]string, 0, len(d.Entries))
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

func (d Dictionary) Set(key string, val interface{}) {
	d.Entries[key] = val
}

func (d Dictionary) lookup(key string) (val interface{}, err error) {
	var ok bool
	if val, ok = d.Entries[key]; !ok || val == nil {
		err = &ConfigurationError{Dict: d.Name, Key: key, Reason: "keyword is undefined"}
	}
	return
}

func (d Dictionary) Scalar(key string) (x float64, err error) {
	var val interface{}
	if val, err = d.lookup(key); err != nil {
		return
	}
	if x, err = types.ParseScalar(val); err != nil {
		err = &ConfigurationError{Dict: d.Name, Key: key, Reason: err.Error()}
	}
	return
}

// PositiveScalar is Scalar with the additional requirement x > 0
func (d Dictionary) PositiveScalar(key string) (x float64, err error) {
	if x, err = d.Scalar(key); err != nil {
		return
	}
	if x <= 0 {
		err = &ConfigurationError{Dict: d.Name, Key: key, Reason: fmt.Sprintf("must be positive, have %g", x)}
	}
	return
}

func (d Dictionary) Vector(key string) (v types.Vector, err error) {
	var val interface{}
	if val, err = d.lookup(key); err != nil {
		return
	}
	if v, err = types.ParseVector(val); err != nil {
		err = &ConfigurationError{Dict: d.Name, Key: key, Reason: err.Error()}
	}
	return
}

func (d Dictionary) Word(key string) (w string, err error) {
	var val interface{}
	if val, err = d.lookup(key); err != nil {
		return
	}
	var ok bool
	if w, ok = val.(string); !ok || len(w) == 0 {
		err = &ConfigurationError{Dict: d.Name, Key: key, Reason: fmt.Sprintf("expected a word, have %v", val)}
	}
	return
}

func (d Dictionary) SubDict(key string) (sd Dictionary, err error) {
	var val interface{}
	if val, err = d.lookup(key); err != nil {
		return
	}
	m, ok := val.(map[string]interface{})
	if !ok {
		err = &ConfigurationError{Dict: d.Name, Key: key, Reason: fmt.Sprintf("expected a sub-dictionary, have %T", val)}
		return
	}
	sd = FromMap(key, m)
	return
}
