package pipeline

// MapTier maps a reported annual sales band label to its ordinal tier 1–5
// via exact string match. Unrecognized or missing labels map to 0.
func MapTier(label string, tiers map[string]int) int {
	return tiers[label]
}
