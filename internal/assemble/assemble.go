package assemble

import (
	"errors"
	"fmt"

	"aicc-assembler/internal/diagnostic"
	"aicc-assembler/internal/model"
)

// ErrInvalidCourse is matched by every *ParseError via errors.Is.
var ErrInvalidCourse = errors.New("invalid AICC course")

// ParseError is returned when assembly finds at least one error-level
// issue. It carries every diagnostic gathered, not only the first.
type ParseError struct {
	CourseID    string
	Diagnostics diagnostic.Diagnostics
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to assemble course %q: %v", e.CourseID, e.Diagnostics.Error())
}

// Unwrap lets errors.Is(err, ErrInvalidCourse) match.
func (e *ParseError) Unwrap() error {
	return ErrInvalidCourse
}

// Issues returns all diagnostics, errors first.
func (e *ParseError) Issues() []diagnostic.Diagnostic {
	return e.Diagnostics.All()
}

// Assembler turns course tables into a Manifest. It holds no per-call
// state, so one Assembler may be shared between goroutines.
type Assembler struct {
	opts Options
}

// New creates an Assembler.
func New(opts ...Option) *Assembler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Assembler{opts: o}
}

// scoped returns a copy of a whose logger carries the given fields.
func (a *Assembler) scoped(keysAndValues ...interface{}) *Assembler {
	o := a.opts
	o.Logger = o.Logger.With(keysAndValues...)

	return &Assembler{opts: o}
}

// Assemble runs the assembly pipeline with default options.
func Assemble(t model.Tables) (*model.Manifest, error) {
	return New().Assemble(t)
}

// Assemble joins, finalizes and resolves the tables. The input tables are
// not modified. On failure no manifest is returned and the error is a
// *ParseError.
func (a *Assembler) Assemble(t model.Tables) (*model.Manifest, error) {
	run := a.scoped("course", t.Course.ID)
	log := run.opts.Logger
	diags := &diagnostic.Diagnostics{}

	j := run.join(t, diags)

	backfilled := finalize(j.units, t.Course.Behavior)
	log.Debug("defaults applied", "backfilled_fields", backfilled)

	l, ok := run.resolveRoot(j, t.Course, diags)
	if !ok || diags.HasErrors() {
		log.Debug("assembly failed", "codes", diags.Codes())
		return nil, &ParseError{CourseID: t.Course.ID, Diagnostics: *diags}
	}

	return model.NewManifest(model.ManifestParts{
		Course:             t.Course,
		Units:              j.units,
		Descriptors:        t.Descriptors,
		Structure:          j.structure,
		Prerequisites:      t.Prerequisites,
		ObjectiveRelations: t.ObjectiveRelations,
		RootID:             l.rootID,
		LaunchURL:          l.url,
		Description:        l.description,
		Diagnostics:        diags.NonErrors(),
	}), nil
}
