package assemble

import (
	"fmt"
	"strings"

	"aicc-assembler/internal/common"
	"aicc-assembler/internal/diagnostic"
	"aicc-assembler/internal/model"
)

// launch is the outcome of root resolution.
type launch struct {
	rootID      string
	url         string
	description string
}

// resolveRoot picks the root structure row, resolves its unit and computes
// the launch URL and description. It records error diagnostics and returns
// false when the course cannot be launched.
func (a *Assembler) resolveRoot(j *joined, course model.Course, diags *diagnostic.Diagnostics) (launch, bool) {
	row, ok := a.rootRow(j.structure, diags)
	if !ok {
		return launch{}, false
	}

	id := row.MemberKey()
	if id == "" {
		diags.AddError(CodeNoRootAU,
			fmt.Sprintf("root structure row (block %q) has no member", row.Block),
			TableStructure, row.Block)

		return launch{}, false
	}

	root, ok := j.unit(id)
	if !ok {
		diags.AddError(CodeAUNotFound,
			fmt.Sprintf("root member %q does not match any assignable unit", id),
			TableUnits, id)

		return launch{}, false
	}

	l := launch{rootID: id, url: root.FileName}
	l.description = resolveDescription(j.units, l.url, course.Description)

	a.opts.Logger.Debug("root resolved", "root", id, "launch_url", l.url)

	return l, true
}

// rootRow returns the first row whose block is ROOT, or the first row of the
// table when none is (unless strict root resolution is on).
func (a *Assembler) rootRow(rows []model.CourseStructure, diags *diagnostic.Diagnostics) (model.CourseStructure, bool) {
	if i := common.Find(rows, (*model.CourseStructure).IsRoot); i >= 0 {
		return rows[i], true
	}

	first, ok := common.First(rows)
	if !ok {
		diags.AddError(CodeNoRootAU, "course structure table is empty", TableStructure, "")
		return model.CourseStructure{}, false
	}

	if a.opts.StrictRoot {
		diags.AddError(CodeNoRootBlock,
			fmt.Sprintf("no structure row has block %q", model.RootBlock),
			TableStructure, "")

		return model.CourseStructure{}, false
	}

	diags.AddWarning(CodeRootFallback,
		fmt.Sprintf("no structure row has block %q, using first row (member %q)", model.RootBlock, first.MemberKey()),
		TableStructure, first.MemberKey())
	a.opts.Logger.Warn("root block missing, falling back to first structure row", "member", first.MemberKey())

	return first, true
}

// resolveDescription finds the unit launched by url (or the first unit) and
// returns its descriptor description, falling back to the course description.
func resolveDescription(units []model.AssignableUnit, url, courseDescription string) string {
	i := common.FindOr(units, func(u *model.AssignableUnit) bool { return u.FileName == url })
	if i < 0 {
		return courseDescription
	}

	if d := units[i].Descriptor; d != nil && strings.TrimSpace(d.Description) != "" {
		return d.Description
	}

	return courseDescription
}
