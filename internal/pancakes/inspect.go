package pancakes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
)

// ErrNoSnapshot is returned when the store has nothing under the key.
var ErrNoSnapshot = errors.New("no saved stack")

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report describes a saved stack without needing its screen types.
type Report struct {
	Key     string        `json:"key" yaml:"key"`
	Version int           `json:"version" yaml:"version"`
	Depth   int           `json:"depth" yaml:"depth"`
	Entries []ReportEntry `json:"entries" yaml:"entries"`
}

// ReportEntry is one saved screen, bottom first.
type ReportEntry struct {
	Position int            `json:"position" yaml:"position"`
	Type     string         `json:"type" yaml:"type"`
	Factory  map[string]any `json:"factory" yaml:"factory"`
	State    map[string]any `json:"state,omitempty" yaml:"state,omitempty"`
}

// Inspect reads the snapshot under key and describes it.
func Inspect(store viewstack.StateStore, key string) (*Report, error) {
	data, ok, err := store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w under %q", ErrNoSnapshot, key)
	}

	var snap viewstack.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("malformed snapshot under %q: %w", key, err)
	}

	report := &Report{
		Key:     key,
		Version: snap.Version,
		Depth:   len(snap.Entries),
		Entries: make([]ReportEntry, 0, len(snap.Entries)),
	}
	for i, e := range snap.Entries {
		factory := map[string]any{}
		if len(e.Factory) > 0 {
			if err := json.Unmarshal(e.Factory, &factory); err != nil {
				// Factories that encode as something other than an object.
				var raw any
				if err := json.Unmarshal(e.Factory, &raw); err != nil {
					return nil, fmt.Errorf("entry %d: %w", i, err)
				}
				factory = map[string]any{"value": raw}
			}
		}
		report.Entries = append(report.Entries, ReportEntry{
			Position: i,
			Type:     e.Type,
			Factory:  normalize(factory).(map[string]any),
			State:    stateMap(e.State),
		})
	}
	return report, nil
}

// Write prints the report in format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
}

func stateMap(s viewstack.State) map[string]any {
	if len(s) == 0 {
		return nil
	}
	return normalize(map[string]any(s)).(map[string]any)
}

// normalize turns whole JSON numbers back into integers so both output
// formats print 16711680 rather than 1.671168e+07.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int64(t)
		}
		return t
	default:
		return v
	}
}
