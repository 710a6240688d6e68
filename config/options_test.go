package config

import (
	"strings"
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/require"
)

func TestDefaultsUsesOriginPositionAndUnboundedArena(t *testing.T) {
	o := Defaults()
	require.Equal(t, 0, o.InitialPosition.Offset)
	require.Equal(t, 0, o.InitialOrdinal)
	require.Equal(t, 0, o.MaxNodes)
	require.False(t, o.ParseOnlyStatements)
	require.False(t, o.SingleDirective)
}

func TestLoggerFallsBackToDiscardLogger(t *testing.T) {
	o := Defaults()
	require.NotNil(t, o.Logger())
}

func TestTracerFallsBackToNoopTracer(t *testing.T) {
	o := Defaults()
	require.IsType(t, opentracing.NoopTracer{}, o.Tracer())
}

func TestLoadCoercesStringNumericFieldsViaCast(t *testing.T) {
	doc := `
initial_line: "3"
initial_column: "1"
initial_offset: "20"
initial_ordinal: "10"
max_nodes: "500"
parse_only_statements: true
single_directive: true
`
	o, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 3, o.InitialPosition.Line)
	require.Equal(t, 1, o.InitialPosition.Column)
	require.Equal(t, 20, o.InitialPosition.Offset)
	require.Equal(t, 10, o.InitialOrdinal)
	require.Equal(t, 500, o.MaxNodes)
	require.True(t, o.ParseOnlyStatements)
	require.True(t, o.SingleDirective)
}

func TestLoadOfEmptyDocumentReturnsDefaults(t *testing.T) {
	o, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Defaults().InitialOrdinal, o.InitialOrdinal)
}
