package types

import "strings"

type PatchType uint8

const (
	Patch PatchType = iota
	Wall
	Symmetry
	Empty
)

var PatchNameMap = map[string]PatchType{
	"patch":     Patch,
	"wall":      Wall,
	"symmetry":  Symmetry,
	"symmetric": Symmetry,
	"empty":     Empty,
}

func (pt PatchType) String() string {
	switch pt {
	case Patch:
		return "patch"
	case Wall:
		return "wall"
	case Symmetry:
		return "symmetry"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// ParsePatchType is case insensitive, an empty or unknown name is a generic patch
func ParsePatchType(name string) PatchType {
	if pt, ok := PatchNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return pt
	}
	return Patch
}
