package theory

import "fmt"

// DefaultBaseOctave is the octave of the first note of every resolution.
const DefaultBaseOctave = 4

// Resolution is the render-ready result for one (scale, index) pair.
type Resolution struct {
	ScaleID        string        `json:"scale" toml:"scale"`
	Index          int           `json:"index" toml:"index"`
	KeyName        string        `json:"key" toml:"key"`
	KeyAccidentals AccidentalSet `json:"key_accidentals" toml:"key_accidentals"`
	Notes          []SpelledNote `json:"notes" toml:"notes"`
	DisplayLabel   string        `json:"label" toml:"label"`
}

type resolveOptions struct {
	baseOctave int
	noteCount  int
}

// Option customizes Resolve.
type Option func(*resolveOptions)

// WithBaseOctave sets the octave of the first note.
func WithBaseOctave(octave int) Option {
	return func(o *resolveOptions) {
		o.baseOctave = octave
	}
}

// WithNoteCount trims the sequence to n notes. Values outside
// 1..SequenceLength keep the full sequence.
func WithNoteCount(n int) Option {
	return func(o *resolveOptions) {
		if n >= 1 && n <= SequenceLength {
			o.noteCount = n
		}
	}
}

// Resolve computes the key signature and the spelled notes of the scale
// scaleID transposed by index semitones.
func Resolve(scaleID string, index int, opts ...Option) (Resolution, error) {
	o := resolveOptions{baseOctave: DefaultBaseOctave, noteCount: SequenceLength}
	for _, opt := range opts {
		opt(&o)
	}

	def, err := LookupScale(scaleID)
	if err != nil {
		return Resolution{}, err
	}
	startKey, err := LookupKey(def.StartKey)
	if err != nil {
		return Resolution{}, err
	}
	startNote, err := ParseNote(def.StartNote, o.baseOctave)
	if err != nil {
		return Resolution{}, err
	}

	key := ResolveKey(startKey, index)

	candidate, err := ParseNote(chromaticKeys[floorMod(startNote.PitchClass()+index, 12)], o.baseOctave)
	if err != nil {
		return Resolution{}, err
	}
	first := NormalizeFirstNote(candidate, key.Accidentals)

	notes, err := GenerateScale(first, def.Intervals, key.Accidentals, o.baseOctave)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve %s at %d: %w", def.Name, index, err)
	}

	return Resolution{
		ScaleID:        def.Name,
		Index:          index,
		KeyName:        key.Name,
		KeyAccidentals: key.Accidentals,
		Notes:          notes[:o.noteCount],
		DisplayLabel:   first.Name() + " " + def.Name,
	}, nil
}

// IndexFor returns the index in 0..11 at which scaleID starts on the pitch
// class of first. Resolve may spell that note differently, e.g. D# for a
// major scale comes back as Eb.
func IndexFor(scaleID string, first SpelledNote) (int, error) {
	def, err := LookupScale(scaleID)
	if err != nil {
		return 0, err
	}
	start, err := ParseNote(def.StartNote, 0)
	if err != nil {
		return 0, err
	}
	return floorMod(first.PitchClass()-start.PitchClass(), 12), nil
}

// MustResolve is like Resolve but panics on error. It is meant for
// identifiers taken from the catalog itself.
func MustResolve(scaleID string, index int, opts ...Option) Resolution {
	res, err := Resolve(scaleID, index, opts...)
	if err != nil {
		panic(err)
	}
	return res
}
