package tonal

import "github.com/RyanBlaney/sonido-escala/theory"

// GetKeyName returns human-readable key name, e.g. "Eb major"
func GetKeyName(key int, mode KeyMode) string {
	names := theory.ChromaticKeys()
	return names[((key%12)+12)%12] + " " + mode.String()
}

// GetRelativeKey returns the relative major/minor key
func GetRelativeKey(key int, mode KeyMode) (int, KeyMode) {
	if mode == KeyModeMajor {
		// Relative minor is 3 semitones down
		return (key - 3 + 12) % 12, KeyModeMinor
	}
	// Relative major is 3 semitones up
	return (key + 3) % 12, KeyModeMajor
}

// GetParallelKey returns the parallel major/minor key
func GetParallelKey(key int, mode KeyMode) (int, KeyMode) {
	if mode == KeyModeMajor {
		return key, KeyModeMinor
	}
	return key, KeyModeMajor
}

// GetDominantKey returns the dominant key (5th above)
func GetDominantKey(key int, mode KeyMode) (int, KeyMode) {
	return (key + 7) % 12, mode
}

// GetSubdominantKey returns the subdominant key (4th above)
func GetSubdominantKey(key int, mode KeyMode) (int, KeyMode) {
	return (key + 5) % 12, mode
}

// IsKeyCompatible reports whether two keys are neighbours on the circle of
// fifths or relative/parallel to each other
func IsKeyCompatible(key1 int, mode1 KeyMode, key2 int, mode2 KeyMode) bool {
	if key1 == key2 {
		return true
	}
	if k, m := GetRelativeKey(key1, mode1); k == key2 && m == mode2 {
		return true
	}
	if mode1 != mode2 {
		return false
	}
	if k, _ := GetDominantKey(key1, mode1); k == key2 {
		return true
	}
	if k, _ := GetSubdominantKey(key1, mode1); k == key2 {
		return true
	}
	return false
}

// Related lists the relative, dominant and subdominant keys by name
func Related(key int, mode KeyMode) map[string]string {
	rk, rm := GetRelativeKey(key, mode)
	dk, dm := GetDominantKey(key, mode)
	sk, sm := GetSubdominantKey(key, mode)
	pk, pm := GetParallelKey(key, mode)
	return map[string]string{
		"relative":    GetKeyName(rk, rm),
		"parallel":    GetKeyName(pk, pm),
		"dominant":    GetKeyName(dk, dm),
		"subdominant": GetKeyName(sk, sm),
	}
}
