package assemble

import (
	"fmt"
	"strings"

	"aicc-assembler/internal/attribute"
	"aicc-assembler/internal/diagnostic"
	"aicc-assembler/internal/match"
	"aicc-assembler/internal/model"
	"aicc-assembler/internal/normalize"
)

// joined is the result of the join step. units holds enriched copies with
// duplicates removed; structure holds every structure row with its
// attributes parsed.
type joined struct {
	units       []model.AssignableUnit
	unitIndex   map[string]int
	descriptors map[string]*model.Descriptor
	structure   []model.CourseStructure
	resolved    []attribute.Resolved
	rowIndex    map[string]int
}

// unit returns the unit with the given trimmed id.
func (j *joined) unit(id string) (*model.AssignableUnit, bool) {
	i, ok := j.unitIndex[id]
	if !ok {
		return nil, false
	}

	return &j.units[i], true
}

func (a *Assembler) join(t model.Tables, diags *diagnostic.Diagnostics) *joined {
	j := &joined{
		unitIndex:   make(map[string]int, len(t.Units)),
		descriptors: make(map[string]*model.Descriptor, len(t.Descriptors)),
		rowIndex:    make(map[string]int, len(t.Structure)),
	}

	a.indexDescriptors(j, t.Descriptors, diags)
	a.indexUnits(j, t.Units, diags)
	a.indexStructure(j, t.Structure, diags)

	for i := range j.units {
		u := &j.units[i]

		if d, ok := j.descriptors[u.Key()]; ok {
			dc := *d
			u.Descriptor = &dc
		}

		ri, ok := j.rowIndex[u.Key()]
		if !ok {
			continue
		}

		applyStructure(u, &j.structure[ri], j.resolved[ri])
	}

	a.opts.Logger.Debug("tables joined",
		"units", len(j.units),
		"descriptors", len(j.descriptors),
		"structure_rows", len(j.structure))

	return j
}

func (a *Assembler) indexDescriptors(j *joined, descriptors []model.Descriptor, diags *diagnostic.Diagnostics) {
	for i := range descriptors {
		key := strings.TrimSpace(descriptors[i].SystemID)
		if key == "" {
			continue
		}

		if _, dup := j.descriptors[key]; dup {
			diags.AddWarning(CodeDuplicateDescriptor,
				fmt.Sprintf("duplicate descriptor for %q ignored, first occurrence kept", key),
				TableDescriptors, key)

			continue
		}

		j.descriptors[key] = &descriptors[i]
	}
}

func (a *Assembler) indexUnits(j *joined, units []model.AssignableUnit, diags *diagnostic.Diagnostics) {
	j.units = make([]model.AssignableUnit, 0, len(units))

	for i := range units {
		key := units[i].Key()
		if key == "" {
			diags.AddWarning(CodeMissingAUID,
				fmt.Sprintf("assignable unit at row %d has no system id and was dropped", i+1),
				TableUnits, "")

			continue
		}

		if _, dup := j.unitIndex[key]; dup {
			diags.AddWarning(CodeDuplicateAU,
				fmt.Sprintf("duplicate assignable unit %q ignored, first occurrence kept", key),
				TableUnits, key)

			continue
		}

		j.unitIndex[key] = len(j.units)
		j.units = append(j.units, units[i].Source())
	}
}

func (a *Assembler) indexStructure(j *joined, rows []model.CourseStructure, diags *diagnostic.Diagnostics) {
	j.structure = make([]model.CourseStructure, len(rows))
	j.resolved = make([]attribute.Resolved, len(rows))

	known := attribute.KnownKeys()

	for i := range rows {
		row := rows[i].Clone()
		res := attribute.Resolve(attribute.Parse(row.Attributes))

		row.Normalized, row.AdditionalColumns = nil, nil
		for _, attr := range res.All() {
			if attr.IsKnown() {
				row.Normalized = row.Normalized.With(toRule(attr.Field.Key(), attr.Value))
				continue
			}

			row.AdditionalColumns = row.AdditionalColumns.With(toRule(attr.Key, attr.Value))
			a.suggestAlias(attr.Key, row.MemberKey(), known, diags)
		}

		j.structure[i] = row
		j.resolved[i] = res

		key := row.MemberKey()
		if key == "" {
			continue
		}

		if _, dup := j.rowIndex[key]; dup {
			diags.AddWarning(CodeDuplicateStructure,
				fmt.Sprintf("member %q appears in more than one structure row, first row's attributes used", key),
				TableStructure, key)

			continue
		}

		j.rowIndex[key] = i
	}
}

// suggestAlias reports an unknown attribute key that looks like a misspelled
// alias. Unknown keys with no close alias are legitimate extensions and stay
// silent.
func (a *Assembler) suggestAlias(key, member string, known []string, diags *diagnostic.Diagnostics) {
	suggestions := match.Suggest(key, known, a.opts.SuggestDistance)
	if len(suggestions) == 0 {
		return
	}

	diags.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticInfo,
		Code:        CodeUnknownAttribute,
		Message:     fmt.Sprintf("attribute %q is not a known key and was kept as an additional column", key),
		Table:       TableStructure,
		Ref:         member,
		Suggestions: suggestions,
	})
}

// applyStructure copies structure-row data onto a unit. Values already
// present on the unit record win; the structure row only fills gaps.
func applyStructure(u *model.AssignableUnit, row *model.CourseStructure, res attribute.Resolved) {
	if strings.TrimSpace(u.Prerequisites) == "" && strings.TrimSpace(row.Prerequisites) != "" {
		u.Prerequisites = row.Prerequisites
	}

	for _, attr := range res.Known() {
		if attr.Field.IsBehavior() {
			fillFrom(behaviorField(u, attr.Field), attr.Value.Text)
		}
	}

	if res.HasCompletion() {
		c := &model.CompletionCriteria{
			Action:       valueOf(res, attribute.FieldCompletionAction),
			LessonStatus: valueOf(res, attribute.FieldCompletionLessonStatus),
			ResultStatus: valueOf(res, attribute.FieldCompletionResultStatus),
		}

		for _, attr := range res.Unknown() {
			c.AdditionalRules = c.AdditionalRules.With(toRule(attr.Key, attr.Value))
		}

		u.Completion = c
	}

	if mandatory, ok := mandatoryOverride(res); ok {
		u.Mandatory = &mandatory
	}
}

// mandatoryOverride reads MANDATORY/REQUIRED/REQ, then OPTIONAL (negated).
// A mandatory spelling takes precedence when both are present.
func mandatoryOverride(res attribute.Resolved) (bool, bool) {
	if attr, ok := res.Get(attribute.FieldMandatory); ok {
		return normalize.Affirmative(attr.Value.Text), true
	}

	if attr, ok := res.Get(attribute.FieldOptional); ok {
		return !normalize.Affirmative(attr.Value.Text), true
	}

	return false, false
}

// behaviorField returns the unit's raw column for a behavior field.
func behaviorField(u *model.AssignableUnit, f attribute.Field) *string {
	switch f {
	case attribute.FieldMasteryScore:
		return &u.MasteryScore
	case attribute.FieldMaxTimeAllowed:
		return &u.MaxTimeAllowed
	default:
		return &u.TimeLimitAction
	}
}

func fillFrom(dst *string, v string) {
	if strings.TrimSpace(*dst) != "" {
		return
	}

	if v != "" {
		*dst = v
	}
}

func valueOf(res attribute.Resolved, f attribute.Field) string {
	attr, ok := res.Get(f)
	if !ok {
		return ""
	}

	return attr.Value.Text
}

func toRule(key string, v attribute.Value) model.Rule {
	return model.Rule{Key: key, Value: v.Text, HasValue: v.Present}
}
