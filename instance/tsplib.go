package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TSPLIB section and keyword names understood by Parse.
const (
	keyName           = "NAME"
	keyDimension      = "DIMENSION"
	keyCapacity       = "CAPACITY"
	keyEdgeWeightType = "EDGE_WEIGHT_TYPE"

	sectionCoords = "NODE_COORD_SECTION"
	sectionDemand = "DEMAND_SECTION"
	sectionDepot  = "DEPOT_SECTION"
	sectionEOF    = "EOF"

	weightEuc2D = "EUC_2D"
)

// Load opens path and parses it with Parse. When the file has no NAME
// field, the base name of path is used.
func Load(path string, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	opts = append([]Option{WithName(base)}, opts...)

	inst, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

// Parse reads a TSPLIB CVRP instance.
//
// Steps:
//  1. Header lines "KEY : VALUE" until the first section keyword.
//  2. NODE_COORD_SECTION: DIMENSION lines "id x y".
//  3. DEMAND_SECTION: DIMENSION lines "id demand".
//  4. DEPOT_SECTION: depot ids terminated by -1; only the first is used.
//  5. The depot is moved to index 0; other nodes keep file order.
//
// A NAME field overrides any WithName option given by the caller.
func Parse(r io.Reader, opts ...Option) (*Instance, error) {
	var (
		name      string
		dimension = -1
		capacity  = -1.0
		coords    = map[int][2]float64{}
		demands   = map[int]float64{}
		order     []int
		depot     = -1
		section   string
		lineNo    int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch line {
		case sectionCoords, sectionDemand, sectionDepot:
			section = line
			continue
		case sectionEOF:
			section = sectionEOF
		}
		if section == sectionEOF {
			break
		}

		if section == "" {
			key, val, ok := strings.Cut(line, ":")
			if !ok {
				return nil, fmt.Errorf("line %d: header %q: %w", lineNo, line, ErrMalformed)
			}
			key = strings.TrimSpace(key)
			val = strings.TrimSpace(val)
			switch key {
			case keyName:
				name = val
			case keyDimension:
				d, err := strconv.Atoi(val)
				if err != nil || d <= 0 {
					return nil, fmt.Errorf("line %d: DIMENSION %q: %w", lineNo, val, ErrMalformed)
				}
				dimension = d
			case keyCapacity:
				c, err := strconv.ParseFloat(val, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: CAPACITY %q: %w", lineNo, val, ErrMalformed)
				}
				capacity = c
			case keyEdgeWeightType:
				if val != weightEuc2D {
					return nil, fmt.Errorf("%s: %w", val, ErrUnsupportedWeightType)
				}
			}
			continue
		}

		fields := strings.Fields(line)
		switch section {
		case sectionCoords:
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: coordinate %q: %w", lineNo, line, ErrMalformed)
			}
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: id %q: %w", lineNo, fields[0], ErrMalformed)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil {
				return nil, fmt.Errorf("line %d: coordinate %q: %w", lineNo, line, ErrMalformed)
			}
			if _, dup := coords[id]; dup {
				return nil, fmt.Errorf("line %d: duplicate node %d: %w", lineNo, id, ErrMalformed)
			}
			coords[id] = [2]float64{x, y}
			order = append(order, id)

		case sectionDemand:
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: demand %q: %w", lineNo, line, ErrMalformed)
			}
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: id %q: %w", lineNo, fields[0], ErrMalformed)
			}
			d, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: demand %q: %w", lineNo, fields[1], ErrMalformed)
			}
			demands[id] = d

		case sectionDepot:
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: depot %q: %w", lineNo, fields[0], ErrMalformed)
			}
			if id >= 0 && depot < 0 {
				depot = id
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read: %w", err)
	}

	if dimension < 0 {
		return nil, fmt.Errorf("missing DIMENSION: %w", ErrMalformed)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("missing CAPACITY: %w", ErrMalformed)
	}
	if len(order) != dimension {
		return nil, fmt.Errorf("%d coordinates for DIMENSION %d: %w", len(order), dimension, ErrMalformed)
	}
	if depot < 0 {
		// CVRPLIB files always list the depot first.
		depot = order[0]
	}
	if _, ok := coords[depot]; !ok {
		return nil, fmt.Errorf("depot %d has no coordinates: %w", depot, ErrMalformed)
	}

	nodes := make([]Node, 0, dimension)
	appendNode := func(id int) error {
		d, ok := demands[id]
		if !ok {
			return fmt.Errorf("node %d has no demand: %w", id, ErrMalformed)
		}
		xy := coords[id]
		nodes = append(nodes, Node{ID: id, X: xy[0], Y: xy[1], Demand: d})
		return nil
	}
	if err := appendNode(depot); err != nil {
		return nil, err
	}
	for _, id := range order {
		if id == depot {
			continue
		}
		if err := appendNode(id); err != nil {
			return nil, err
		}
	}

	if name != "" {
		opts = append(opts, WithName(name))
	}
	return New(capacity, nodes, opts...)
}
