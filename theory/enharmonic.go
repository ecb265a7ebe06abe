package theory

// NormalizeFirstNote respells candidate with its registered enharmonic
// equivalent when its accidental points the other way from the key
// signature. Candidates without a registered equivalent are returned as is.
func NormalizeFirstNote(candidate SpelledNote, keyAccidentals AccidentalSet) SpelledNote {
	dir := keyAccidentals.Direction()
	clash := (candidate.IsFlat() && dir == DirectionSharps) ||
		(candidate.IsSharp() && dir == DirectionFlats)
	if !clash {
		return candidate
	}

	alt, ok := equivalentOf(candidate.Name())
	if !ok {
		return candidate
	}
	respelled, err := ParseNote(alt, candidate.Octave)
	if err != nil {
		return candidate
	}
	return respelled
}
