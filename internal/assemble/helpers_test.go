package assemble

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"aicc-assembler/internal/model"
)

func unit(id, file string) model.AssignableUnit {
	return model.AssignableUnit{SystemID: id, FileName: file}
}

func row(block, member, attrs string) model.CourseStructure {
	return model.CourseStructure{Block: block, Member: member, Attributes: attrs}
}

// dumpOnFailure prints v when the test has failed, to make the enriched
// model readable in CI output.
func dumpOnFailure(t *testing.T, v any) {
	t.Helper()

	t.Cleanup(func() {
		if t.Failed() {
			t.Log(spew.Sdump(v))
		}
	})
}
