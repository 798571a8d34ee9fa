package scoring

// DefaultClusters is the static sport adjacency table consulted when cluster
// relaxation is active: a brief asking for sport X also accepts X's cluster
// peers at a reduced sub-score. Keys and peers are lowercase.
func DefaultClusters() map[string][]string {
	return map[string][]string{
		"basketball":       {"streetball", "3x3 basketball"},
		"soccer":           {"futsal", "indoor soccer", "beach soccer"},
		"football":         {"flag football", "arena football", "football (isl)"},
		"football (isl)":   {"football"},
		"flag football":    {"football"},
		"baseball":         {"softball", "tee-ball"},
		"hockey":           {"roller hockey", "ice hockey", "field hockey"},
		"volleyball":       {"beach volleyball", "indoor volleyball", "beach soccer"},
		"tennis":           {"pickleball", "padel", "squash"},
		"badminton":        {"tennis", "squash"},
		"track and field":  {"running", "cross country", "marathon", "athletics"},
		"running":          {"track and field", "cross country", "marathon"},
		"swimming":         {"water polo", "diving", "triathlon"},
		"cricket":          {"baseball", "cricket (t20)"},
		"cricket (t20)":    {"cricket"},
		"fitness":          {"swimming", "running", "gymnastics", "yoga"},
		"yoga":             {"fitness"},
		"kabaddi":          {},
	}
}
