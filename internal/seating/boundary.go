package seating

import (
	"encoding/json"
	"fmt"
	"io"
)

// Request is the external wire shape for one Optimize invocation:
// everything a host (CLI, service, FFI binding) needs to supply in a
// single JSON document. Grounded on the argument list of
// optimize_seating_simulated_annealing / parallel_annealing_search in
// the original implementation and on main.rs's JSON-driven CLI.
type Request struct {
	InitialArrangement Arrangement   `json:"initial_arrangement"`
	FixedCoords        []WireCoord   `json:"fixed_coords"`
	Students           []Student     `json:"students"`
	BonusParameter     float64       `json:"bonus_parameter"`
	BonusConfig        BonusConfig   `json:"bonus_config"`
	Iterations         int           `json:"iterations"`
	InitialTemperature float64       `json:"initial_temperature"`
	CoolingRate        float64       `json:"cooling_rate"`
	EarlyStop          bool          `json:"early_stop"`
	Workers            int           `json:"workers"`
	Seed               int64         `json:"seed"`
}

// WireCoord is Coordinate's JSON representation: a section tag plus
// an optional index, matching the original's
// {"table":.., "section": "top"|"bottom"|"bonus_left"|"bonus_right", "index": Some(i)|None}.
type WireCoord struct {
	Table   int    `json:"table"`
	Section string `json:"section"`
	Index   *int   `json:"index,omitempty"`
}

// ToCoordinate converts a WireCoord into a Coordinate, failing with
// ErrDecodeFailed if the section is unrecognized or a row section is
// missing its index.
func (w WireCoord) ToCoordinate() (Coordinate, error) {
	switch w.Section {
	case "top":
		if w.Index == nil {
			return Coordinate{}, fmt.Errorf("%w: top coordinate missing index", ErrDecodeFailed)
		}
		return TopCoord(w.Table, *w.Index), nil
	case "bottom":
		if w.Index == nil {
			return Coordinate{}, fmt.Errorf("%w: bottom coordinate missing index", ErrDecodeFailed)
		}
		return BottomCoord(w.Table, *w.Index), nil
	case "bonus_left":
		return BonusLeftCoord(w.Table), nil
	case "bonus_right":
		return BonusRightCoord(w.Table), nil
	default:
		return Coordinate{}, fmt.Errorf("%w: unknown section %q", ErrDecodeFailed, w.Section)
	}
}

// FromCoordinate converts a Coordinate back into its wire form.
func FromCoordinate(c Coordinate) WireCoord {
	w := WireCoord{Table: c.Table, Section: c.Section.String()}
	if c.Section == SectionTop || c.Section == SectionBottom {
		idx := c.Index()
		w.Index = &idx
	}
	return w
}

// DecodeRequest parses a Request and everything Optimize needs to run
// from it, wrapping any failure in ErrDecodeFailed.
func DecodeRequest(r io.Reader) (*Request, StudentDirectory, []Coordinate, Config, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, nil, nil, Config{}, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	fixed := make([]Coordinate, 0, len(req.FixedCoords))
	for _, wc := range req.FixedCoords {
		c, err := wc.ToCoordinate()
		if err != nil {
			return nil, nil, nil, Config{}, err
		}
		fixed = append(fixed, c)
	}

	// A host that omits "workers" gets the reference default rather
	// than an InvalidConfig bounce. JSON can't tell "omitted" from
	// "explicit zero" on an int field, so an explicit 0 gets the
	// default too; only a Config built directly with Workers 0 hits
	// Config.Validate's N=0 rejection.
	workers := req.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}

	dir := NewStudentDirectory(req.Students)
	cfg := Config{
		Score: ScoreParams{
			BonusParameter: req.BonusParameter,
			BonusConfig:    req.BonusConfig,
		},
		Schedule: ScheduleParams{
			Iterations:         req.Iterations,
			InitialTemperature: req.InitialTemperature,
			CoolingRate:        req.CoolingRate,
			EarlyStop:          req.EarlyStop,
			Seed:               req.Seed,
		},
		Workers: workers,
	}
	return &req, dir, fixed, cfg, nil
}

// EncodedResult is Result's wire shape.
type EncodedResult struct {
	Arrangement Arrangement     `json:"arrangement"`
	Score       float64         `json:"score"`
	Perfect     bool            `json:"perfect"`
	Workers     []WorkerSummary `json:"workers"`
}

// EncodeResult writes a Result out as JSON, wrapping any failure in
// ErrEncodeFailed.
func EncodeResult(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	encoded := EncodedResult{
		Arrangement: *res.Arrangement,
		Score:       res.Score,
		Perfect:     res.Perfect,
		Workers:     res.Workers,
	}
	if err := enc.Encode(encoded); err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return nil
}
