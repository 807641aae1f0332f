package assemble

import (
	"strings"

	"aicc-assembler/internal/model"
	"aicc-assembler/internal/normalize"
)

// finalize resolves every unit's behavior fields against the course
// defaults and stores the normalized values. A blank per-unit field is
// backfilled with the trimmed default. It returns the number of backfills.
func finalize(units []model.AssignableUnit, defaults model.CourseBehavior) int {
	backfilled := 0

	for i := range units {
		u := &units[i]

		raw, filled := resolveDefault(&u.MasteryScore, defaults.MasteryScore)
		u.NormalizedMasteryScore = nil
		if v, ok := normalize.Score(raw); ok {
			u.NormalizedMasteryScore = &v
		}

		backfilled += filled

		raw, filled = resolveDefault(&u.MaxTimeAllowed, defaults.MaxTimeAllowed)
		u.NormalizedMaxTimeAllowed = nil
		if d, ok := normalize.Duration(raw); ok {
			u.NormalizedMaxTimeAllowed = &d
		}

		backfilled += filled

		raw, filled = resolveDefault(&u.TimeLimitAction, defaults.TimeLimitAction)
		u.TimeLimitActions = normalize.Actions(raw)
		backfilled += filled
	}

	return backfilled
}

// resolveDefault returns the effective raw value: the unit's own value if
// non-blank, else the trimmed default, which is also written back into the
// unit field. The int is 1 when a backfill happened.
func resolveDefault(field *string, def string) (string, int) {
	if strings.TrimSpace(*field) != "" {
		return *field, 0
	}

	def = strings.TrimSpace(def)
	if def == "" {
		return "", 0
	}

	*field = def

	return def, 1
}
