package normalize

import (
	"math"
	"strconv"
	"strings"

	"aicc-assembler/utils"
)

// Score converts a mastery score such as "85", "85%" or "0.85" into the unit
// interval. Values above 1 are read as percentages whether or not they carry
// a '%'. The boolean is false for blank, non-numeric or out-of-range input.
func Score(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))

	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	if v > 1 {
		v /= 100
	}

	if !utils.IsInRange(0, v, 1) {
		return 0, false
	}

	return v, true
}
