package theory

// ResolveKey returns the key offset semitones from start. Any offset is
// valid; the result repeats every twelve semitones.
func ResolveKey(start Key, offset int) Key {
	name := chromaticKeys[floorMod(start.ChromaticValue+offset, len(chromaticKeys))]
	return keys[name].clone()
}
