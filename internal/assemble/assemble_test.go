package assemble

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicc-assembler/internal/model"
)

func TestAssemble_EndToEnd(t *testing.T) {
	tables := model.Tables{
		Course: model.Course{
			ID:    "C1",
			Title: "Safety Basics",
			Behavior: model.CourseBehavior{
				MasteryScore:   "80",
				MaxTimeAllowed: "02:00:00",
			},
		},
		Units:     []model.AssignableUnit{unit("AU1", "content/au1.html")},
		Structure: []model.CourseStructure{row("ROOT", "AU1", "CA=exit;CR=passed")},
	}

	m, err := Assemble(tables)
	require.NoError(t, err)
	dumpOnFailure(t, m)

	assert.Equal(t, "content/au1.html", m.LaunchURL())
	assert.Equal(t, "Safety Basics", m.Title())
	assert.Equal(t, "C1", m.Identifier())
	assert.Equal(t, time.Duration(0), m.Duration())

	au, ok := m.UnitByID("AU1")
	require.True(t, ok)

	score, ok := au.MasteryScoreValue()
	require.True(t, ok)
	assert.InDelta(t, 0.8, score, 1e-9)

	maxTime, ok := au.MaxTimeAllowedValue()
	require.True(t, ok)
	assert.Equal(t, 2*time.Hour, maxTime)

	require.NotNil(t, au.Completion)
	assert.Equal(t, "exit", au.Completion.Action)
	assert.Equal(t, "passed", au.Completion.ResultStatus)
	assert.Equal(t, "", au.Completion.LessonStatus)
	assert.Empty(t, au.Completion.AdditionalRules)

	// Defaults are backfilled into the raw fields.
	assert.Equal(t, "80", au.MasteryScore)
	assert.Equal(t, "02:00:00", au.MaxTimeAllowed)
	assert.Equal(t, []string{}, au.TimeLimitActions)
	assert.Empty(t, m.Diagnostics())
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	tables := model.Tables{
		Course:    model.Course{ID: "C1", Behavior: model.CourseBehavior{MasteryScore: "75"}},
		Units:     []model.AssignableUnit{unit("AU1", "a.html")},
		Structure: []model.CourseStructure{row("ROOT", "AU1", "MT=00:10:00;VENDOR=x")},
	}

	_, err := Assemble(tables)
	require.NoError(t, err)

	assert.Equal(t, "", tables.Units[0].MasteryScore)
	assert.Equal(t, "", tables.Units[0].MaxTimeAllowed)
	assert.Nil(t, tables.Units[0].NormalizedMasteryScore)
	assert.Nil(t, tables.Structure[0].AdditionalColumns)
}

func TestAssemble_IgnoresPresetDerivedFields(t *testing.T) {
	optional := false
	score := 0.1
	preset := unit("AU1", "a.html")
	preset.Mandatory = &optional
	preset.Completion = &model.CompletionCriteria{Action: "stale"}
	preset.NormalizedMasteryScore = &score
	preset.TimeLimitActions = []string{"STALE"}

	m, err := Assemble(model.Tables{
		Course:    model.Course{ID: "C1"},
		Units:     []model.AssignableUnit{preset},
		Structure: []model.CourseStructure{row("ROOT", "AU1", "")},
	})
	require.NoError(t, err)

	au := m.RootUnit()
	dumpOnFailure(t, au)

	assert.True(t, au.IsMandatory())
	assert.Nil(t, au.Mandatory)
	assert.Nil(t, au.Completion)
	_, ok := au.MasteryScoreValue()
	assert.False(t, ok)
	assert.Equal(t, []string{}, au.TimeLimitActions)
}

func TestAssemble_DuplicateUnitsFirstWins(t *testing.T) {
	tables := model.Tables{
		Course: model.Course{ID: "C1"},
		Units: []model.AssignableUnit{
			unit("AU1", "first.html"),
			unit("AU1", "second.html"),
		},
		Structure: []model.CourseStructure{row("ROOT", "AU1", "")},
	}

	m, err := Assemble(tables)
	require.NoError(t, err)

	units := m.AssignableUnits()
	require.Len(t, units, 1)
	assert.Equal(t, "first.html", units[0].FileName)
	assert.Equal(t, "first.html", m.LaunchURL())

	diags := m.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, CodeDuplicateAU, diags[0].Code)
}

func TestAssemble_RootFallbackToFirstRow(t *testing.T) {
	tables := model.Tables{
		Course: model.Course{ID: "C1"},
		Units:  []model.AssignableUnit{unit("AU1", "one.html"), unit("AU2", "two.html")},
		Structure: []model.CourseStructure{
			row("B1", "AU2", ""),
			row("B1", "AU1", ""),
		},
	}

	m, err := Assemble(tables)
	require.NoError(t, err)
	assert.Equal(t, "AU2", m.RootID())
	assert.Equal(t, "two.html", m.LaunchURL())

	diags := m.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, CodeRootFallback, diags[0].Code)
}

func TestAssemble_RootFallbackUnitNotFound(t *testing.T) {
	tables := model.Tables{
		Course:    model.Course{ID: "C1"},
		Units:     []model.AssignableUnit{unit("AU1", "one.html")},
		Structure: []model.CourseStructure{row("B1", "GHOST", ""), row("ROOTISH", "AU1", "")},
	}

	m, err := Assemble(tables)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, ErrInvalidCourse))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []string{CodeAUNotFound}, pe.Diagnostics.Codes())
	assert.Equal(t, "GHOST", pe.Diagnostics.Errors[0].Ref)
	assert.Contains(t, err.Error(), "GHOST")

	// The fallback warning travels with the error.
	issues := pe.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, CodeRootFallback, issues[1].Code)
}

func TestAssemble_StrictRoot(t *testing.T) {
	tables := model.Tables{
		Course:    model.Course{ID: "C1"},
		Units:     []model.AssignableUnit{unit("AU1", "one.html")},
		Structure: []model.CourseStructure{row("B1", "AU1", "")},
	}

	_, err := New(WithStrictRoot(true)).Assemble(tables)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []string{CodeNoRootBlock}, pe.Diagnostics.Codes())
}

func TestAssemble_StructuralErrors(t *testing.T) {
	tests := []struct {
		name      string
		structure []model.CourseStructure
		wantCode  string
		wantRef   string
	}{
		{"empty structure table", nil, CodeNoRootAU, ""},
		{"blank root member", []model.CourseStructure{row("root", "  ", "")}, CodeNoRootAU, "root"},
		{"unknown root member", []model.CourseStructure{row("ROOT", "AU9", "")}, CodeAUNotFound, "AU9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := model.Tables{
				Course:    model.Course{ID: "C1"},
				Units:     []model.AssignableUnit{unit("AU1", "one.html")},
				Structure: tt.structure,
			}

			m, err := Assemble(tables)
			assert.Nil(t, m)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			require.Len(t, pe.Diagnostics.Errors, 1)
			assert.Equal(t, tt.wantCode, pe.Diagnostics.Errors[0].Code)
			assert.Equal(t, tt.wantRef, pe.Diagnostics.Errors[0].Ref)
			assert.Equal(t, "C1", pe.CourseID)
		})
	}
}

func TestAssemble_DescriptionResolution(t *testing.T) {
	base := func() model.Tables {
		return model.Tables{
			Course: model.Course{ID: "C1", Description: "Course level text"},
			Units: []model.AssignableUnit{
				unit("AU0", "zero.html"),
				unit("AU1", "one.html"),
			},
			Structure: []model.CourseStructure{row("ROOT", "AU1", "")},
		}
	}

	t.Run("launch unit descriptor", func(t *testing.T) {
		tables := base()
		tables.Descriptors = []model.Descriptor{
			{SystemID: "AU0", Description: "Unit zero"},
			{SystemID: "AU1", Description: "Unit one"},
		}

		m, err := Assemble(tables)
		require.NoError(t, err)
		assert.Equal(t, "Unit one", m.Description())
	})

	t.Run("blank descriptor falls back to course", func(t *testing.T) {
		tables := base()
		tables.Descriptors = []model.Descriptor{{SystemID: "AU1", Description: "   "}}

		m, err := Assemble(tables)
		require.NoError(t, err)
		assert.Equal(t, "Course level text", m.Description())
	})

	t.Run("first unit sharing the launch file wins", func(t *testing.T) {
		tables := base()
		tables.Units[0].FileName = "one.html"
		tables.Descriptors = []model.Descriptor{
			{SystemID: "AU0", Description: "Unit zero"},
			{SystemID: "AU1", Description: "Unit one"},
		}

		m, err := Assemble(tables)
		require.NoError(t, err)
		assert.Equal(t, "AU1", m.RootID())
		assert.Equal(t, "Unit zero", m.Description())
	})
}

func TestAssemble_CarriesGenericTables(t *testing.T) {
	tables := model.Tables{
		Course:             model.Course{ID: "C1", Version: "4.0"},
		Units:              []model.AssignableUnit{unit("AU1", "one.html")},
		Structure:          []model.CourseStructure{row("ROOT", "AU1", "")},
		Prerequisites:      []model.Row{model.RowOf("Structure_Element", "AU1", "Prerequisite", "")},
		ObjectiveRelations: []model.Row{model.RowOf("Structure_Element", "AU1", "Member", "J1")},
	}

	m, err := Assemble(tables)
	require.NoError(t, err)
	assert.Equal(t, "4.0", m.Version())
	require.Len(t, m.Prerequisites(), 1)
	assert.Equal(t, "AU1", m.Prerequisites()[0].Value("STRUCTURE_ELEMENT"))
	require.Len(t, m.ObjectiveRelations(), 1)
	assert.Equal(t, "J1", m.ObjectiveRelations()[0].Value("member"))
}
