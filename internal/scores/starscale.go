package scores

// MaxStars is the best rating a round can earn.
const MaxStars = 3

// StarScale rates a final score from Floor up to MaxStars stars. Each
// threshold the score reaches adds one star: for higher-is-better games a
// threshold is reached at or above it, for lower-is-better games at or below.
// A score between two thresholds gets the lower tier.
type StarScale struct {
	Direction  Direction `yaml:"direction" json:"direction"`
	Thresholds []int     `yaml:"thresholds" json:"thresholds"`
	Floor      int       `yaml:"floor" json:"floor"`
}

// Stars returns the rating for a score.
func (s StarScale) Stars(score int) int {
	stars := s.Floor
	for _, t := range s.Thresholds {
		if s.reached(score, t) {
			stars++
		}
	}
	return min(max(stars, 0), MaxStars)
}

func (s StarScale) reached(score, threshold int) bool {
	if s.Direction == LowerIsBetter {
		return score <= threshold
	}
	return score >= threshold
}
