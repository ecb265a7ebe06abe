package explorer

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-escala/logging"
	"github.com/RyanBlaney/sonido-escala/theory"
)

// Query-string parameter names used to persist the explorer state.
const (
	ParamIndex = "index"
	ParamScale = "scale"
)

// State is the only thing the explorer persists: a scale and a
// transposition index.
type State struct {
	ScaleID string `json:"scale" toml:"scale" mapstructure:"scale"`
	Index   int    `json:"index" toml:"index" mapstructure:"index"`
}

// DefaultState is the first catalog scale at index 0.
func DefaultState() State {
	return State{ScaleID: theory.DefaultScale().Name}
}

// ParseState restores a state from a query string such as
// "index=3&scale=Minor". It never fails: a missing or non-numeric index
// becomes 0 and a missing or unknown scale becomes the first catalog entry.
func ParseState(query string) State {
	state := DefaultState()

	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(query), "?"))
	if err != nil {
		logging.Warn("unparseable explorer state, using defaults", logging.Fields{"query": query, "error": err.Error()})
		return state
	}

	if raw := values.Get(ParamIndex); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			logging.Warn("malformed index, using 0", logging.Fields{"index": raw})
		} else {
			state.Index = index
		}
	}

	if id := values.Get(ParamScale); id != "" {
		if _, err := theory.LookupScale(id); err != nil {
			logging.Warn("unknown scale, using default", logging.Fields{"scale": id, "default": state.ScaleID})
		} else {
			state.ScaleID = id
		}
	}

	return state
}

// Encode renders the state as a query string.
func (s State) Encode() string {
	values := url.Values{}
	values.Set(ParamIndex, strconv.Itoa(s.Index))
	values.Set(ParamScale, s.ScaleID)
	return values.Encode()
}

// LoadStateFile reads a state saved by SaveStateFile. A missing file yields
// the default state.
func LoadStateFile(path string) (State, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultState(), nil
	}
	if err != nil {
		return State{}, fmt.Errorf("read state %s: %w", path, err)
	}
	return ParseState(string(data)), nil
}

// SaveStateFile writes the state as a single query-string line.
func SaveStateFile(path string, s State) error {
	if err := os.WriteFile(path, []byte(s.Encode()+"\n"), 0o644); err != nil {
		return fmt.Errorf("write state %s: %w", path, err)
	}
	return nil
}
