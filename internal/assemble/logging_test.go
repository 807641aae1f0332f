package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aicc-assembler/internal/logger"
	"aicc-assembler/internal/model"
)

func TestAssemble_LogsWithCourseContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	asm := New(WithLogger(logger.FromZap(zap.New(core))))

	_, err := asm.Assemble(model.Tables{
		Course:    model.Course{ID: "C9"},
		Units:     []model.AssignableUnit{unit("AU1", "a.html")},
		Structure: []model.CourseStructure{row("B1", "AU1", "")},
	})
	require.NoError(t, err)

	fallback := logs.FilterMessage("root block missing, falling back to first structure row").All()
	require.Len(t, fallback, 1)
	assert.Equal(t, zapcore.WarnLevel, fallback[0].Level)
	assert.Equal(t, "C9", fallback[0].ContextMap()["course"])
	assert.Equal(t, "AU1", fallback[0].ContextMap()["member"])

	assert.Equal(t, 1, logs.FilterMessage("tables joined").Len())
	assert.Equal(t, 1, logs.FilterMessage("root resolved").Len())
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	asm := New(WithLogger(nil))
	require.NotNil(t, asm.opts.Logger)
}
