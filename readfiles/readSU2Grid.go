package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/types"
)

// From here: https://su2code.github.io/docs_v7/Mesh-File/
type SU2ElementType uint8

const (
	ELType_LINE          SU2ElementType = 3
	ELType_Triangle      SU2ElementType = 5
	ELType_Quadrilateral SU2ElementType = 9
	ELType_Tetrahedral   SU2ElementType = 10
	ELType_Hexahedral    SU2ElementType = 12
	ELType_Prism         SU2ElementType = 13
	ELType_Pyramid       SU2ElementType = 14
)

var nodesPerElement = map[SU2ElementType]int{
	ELType_LINE:          2,
	ELType_Triangle:      3,
	ELType_Quadrilateral: 4,
	ELType_Tetrahedral:   4,
	ELType_Hexahedral:    8,
	ELType_Prism:         6,
	ELType_Pyramid:       5,
}

/*
ReadSU2 reads the points and boundary markers of an SU2 mesh file. Each MARKER_TAG becomes a point patch
holding the distinct points of its boundary elements, in order of first appearance. Patch types are
taken from patchTypes by marker name, a missing name is a generic patch.
*/
func ReadSU2(filename string, patchTypes map[string]types.PatchType, verbose bool) (m *mesh.PointMesh, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading SU2 file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	if m, err = ParseSU2(file, patchTypes); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func ParseSU2(r io.Reader, patchTypes map[string]types.PatchType) (m *mesh.PointMesh, err error) {
	var (
		reader  = bufio.NewReader(r)
		dim, ne int
		points  [][3]float64
		specs   []mesh.PatchSpec
	)
	if dim, err = readNumber(reader, "NDIME"); err != nil {
		return
	}
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("NDIME must be 2 or 3, have %d", dim)
	}
	// Volume elements carry no boundary information
	if ne, err = readCount(reader, "NELEM"); err != nil {
		return
	}
	if err = skipLines(ne, reader); err != nil {
		return
	}
	if points, err = readVertices(reader, dim); err != nil {
		return
	}
	if specs, err = readMarkers(reader, patchTypes); err != nil {
		return
	}
	return mesh.NewPointMesh(points, specs)
}

func readVertices(reader *bufio.Reader, dim int) (points [][3]float64, err error) {
	var (
		np int
	)
	if np, err = readCount(reader, "NPOIN"); err != nil {
		return
	}
	points = make([][3]float64, np)
	for i := 0; i < np; i++ {
		var line string
		if line, err = getLine(reader); err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) < dim {
			return nil, fmt.Errorf("point %d: need %d coordinates, have [%s]", i, dim, line)
		}
		for j := 0; j < dim; j++ {
			if points[i][j], err = strconv.ParseFloat(fields[j], 64); err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
		}
	}
	return
}

func readMarkers(reader *bufio.Reader, patchTypes map[string]types.PatchType) (specs []mesh.PatchSpec, err error) {
	var (
		nMark int
	)
	if nMark, err = readCount(reader, "NMARK"); err != nil {
		return
	}
	for n := 0; n < nMark; n++ {
		var (
			label  string
			nElem  int
			seen   = make(map[int]bool)
			labels []int
		)
		if label, err = readLabel(reader, "MARKER_TAG"); err != nil {
			return
		}
		if nElem, err = readCount(reader, "MARKER_ELEMS"); err != nil {
			return
		}
		for i := 0; i < nElem; i++ {
			var line string
			if line, err = getLine(reader); err != nil {
				return
			}
			fields := strings.Fields(line)
			var nType int
			if len(fields) == 0 {
				return nil, fmt.Errorf("marker %s: empty element line", label)
			}
			if nType, err = strconv.Atoi(fields[0]); err != nil {
				return nil, fmt.Errorf("marker %s: %w", label, err)
			}
			nv, ok := nodesPerElement[SU2ElementType(nType)]
			if !ok || len(fields) < nv+1 {
				return nil, fmt.Errorf("marker %s: unable to read element [%s]", label, line)
			}
			for _, f := range fields[1 : nv+1] {
				var v int
				if v, err = strconv.Atoi(f); err != nil {
					return nil, fmt.Errorf("marker %s: %w", label, err)
				}
				if !seen[v] {
					seen[v] = true
					labels = append(labels, v)
				}
			}
		}
		specs = append(specs, mesh.PatchSpec{Name: label, Type: patchTypes[label], Points: labels})
	}
	return
}

func getToken(reader *bufio.Reader, key string) (token string, err error) {
	var (
		line string
	)
	if line, err = getLineNoComments(reader); err != nil {
		return
	}
	ind := strings.Index(line, "=")
	if ind < 0 {
		return "", fmt.Errorf("badly formed input line [%s], should have an =", line)
	}
	if k := strings.TrimSpace(line[:ind]); k != key {
		return "", fmt.Errorf("expected %s, have %s", key, k)
	}
	token = strings.TrimSpace(line[ind+1:])
	return
}

func readLabel(reader *bufio.Reader, key string) (label string, err error) {
	if label, err = getToken(reader, key); err != nil {
		return
	}
	if len(label) == 0 {
		err = fmt.Errorf("empty %s", key)
	}
	return
}

func readNumber(reader *bufio.Reader, key string) (num int, err error) {
	var (
		token string
	)
	if token, err = getToken(reader, key); err != nil {
		return
	}
	if num, err = strconv.Atoi(token); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
	}
	return
}

// readCount is readNumber for entity counts, which must not be negative
func readCount(reader *bufio.Reader, key string) (num int, err error) {
	if num, err = readNumber(reader, key); err != nil {
		return
	}
	if num < 0 {
		err = fmt.Errorf("%s must not be negative, have %d", key, num)
	}
	return
}

func getLineNoComments(reader *bufio.Reader) (line string, err error) {
	for {
		if line, err = getLine(reader); err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if len(line) != 0 && !strings.HasPrefix(line, "%") {
			return
		}
	}
}

func getLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	if err == io.EOF && len(line) != 0 {
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			err = fmt.Errorf("early end of file")
		}
		return
	}
	line = strings.TrimRight(line, "\r\n")
	return
}

func skipLines(n int, reader *bufio.Reader) (err error) {
	for i := 0; i < n; i++ {
		if _, err = getLine(reader); err != nil {
			return
		}
	}
	return
}
