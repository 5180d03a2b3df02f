package roadmap

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadMap reads a whitespace-delimited centerline waypoint file, one
// waypoint "x y s dx dy" per line, into a Map. A malformed or missing
// map file is a fatal configuration error.
func LoadMap(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "roadmap: opening map file %q", path)
	}
	defer f.Close()

	var waypoints []Waypoint
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, errors.Errorf("roadmap: %s:%d: expected 5 fields, got %d", path, lineNum, len(fields))
		}
		values := make([]float64, 5)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "roadmap: %s:%d: parsing field %d", path, lineNum, i)
			}
			values[i] = v
		}
		waypoints = append(waypoints, Waypoint{
			Global: NewGlobalCoordinates(values[0], values[1]),
			Frenet: FrenetCoordinates{S: values[2], DX: values[3], DY: values[4]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "roadmap: reading map file %q", path)
	}
	if len(waypoints) == 0 {
		return nil, ErrEmptyMap
	}
	return NewMap(waypoints), nil
}
