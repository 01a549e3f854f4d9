package cube

import (
	"fmt"
	"sort"
)

// CoordinateNames lists every concrete coordinate this package defines,
// in a fixed, stable order, for CLI flag validation and help text.
func CoordinateNames() []string {
	names := make([]string, 0, len(coordinateRegistry))
	for name := range coordinateRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var coordinateRegistry = map[string]CoordinateKind{
	"eofb":           EOFB,
	"coud":           COUD,
	"eslicesep":      ESliceSep,
	"cornerperm":     CornerPerm,
	"ucornerperm":    UCornerPerm,
	"dcornerperm":    DCornerPerm,
	"esliceedgeperm": ESliceEdgePerm,
	"msliceedgeperm": MSliceEdgePerm,
	"ssliceedgeperm": SSliceEdgePerm,
}

// LookupCoordinate resolves a coordinate by its registry name.
func LookupCoordinate(name string) (CoordinateKind, error) {
	k, ok := coordinateRegistry[name]
	if !ok {
		return CoordinateKind{}, fmt.Errorf("cube: unknown coordinate %q (known: %v)", name, CoordinateNames())
	}
	return k, nil
}
