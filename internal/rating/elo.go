package rating

import (
	"math"
	"strconv"
	"strings"
)

const (
	BaseKFactor       = 32.0
	ResultWeight      = 0.7
	PerformanceWeight = 0.3
)

// ExpectedScore is the ELO probability that a player rated a beats one rated b.
func ExpectedScore(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, (b-a)/400))
}

// KFactor scales the base K by a tournament's importance. A missing or
// non-positive factor counts as 1.
func KFactor(ratingFactor float64) float64 {
	if ratingFactor <= 0 {
		return BaseKFactor
	}
	return BaseKFactor * ratingFactor
}

// Contender is one side of a rated match.
type Contender struct {
	UserID             uint
	Rating             float64
	Won                bool
	PerformanceAverage float64
}

// Change is the outcome of rating one contender.
type Change struct {
	UserID    uint    `json:"user_id"`
	OldRating float64 `json:"old_rating"`
	NewRating float64 `json:"new_rating"`
	Delta     float64 `json:"delta"`
	Expected  float64 `json:"expected"`
	Combined  float64 `json:"combined"`
}

// Rate computes both contenders' new ratings. Each side's actual score is
// ResultWeight of the result plus PerformanceWeight of its performance average.
func Rate(a, b Contender, k float64) (Change, Change) {
	expectedA := ExpectedScore(a.Rating, b.Rating)
	return rateOne(a, expectedA, k), rateOne(b, 1-expectedA, k)
}

func rateOne(c Contender, expected, k float64) Change {
	actual := 0.0
	if c.Won {
		actual = 1
	}
	combined := ResultWeight*actual + PerformanceWeight*c.PerformanceAverage
	delta := k * (combined - expected)
	return Change{
		UserID:    c.UserID,
		OldRating: c.Rating,
		NewRating: Round2(c.Rating + delta),
		Delta:     Round2(delta),
		Expected:  expected,
		Combined:  combined,
	}
}

// Round2 rounds to two decimals, half-up on the shortest decimal form of v,
// so 1024.225 becomes 1024.23 even though its binary value sits just below.
// Halves round away from zero.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) <= 2 {
		return v
	}
	cents, err := strconv.ParseInt(whole+frac[:2], 10, 64)
	if err != nil {
		return math.Round(v*100) / 100
	}
	if frac[2] >= '5' {
		cents++
	}
	return math.Copysign(float64(cents)/100, v)
}
