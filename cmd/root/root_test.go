package root_test

import (
	"testing"

	"fjacquet/pdf-csv/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "pdf-csv", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "CLI tool to convert bank statement PDFs")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommandFlags(t *testing.T) {
	root.Init()

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	formatFlag := root.Cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "csv", formatFlag.DefValue)

	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("bank"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("keep-undated"))
}

func TestNewRegistry(t *testing.T) {
	registry := root.NewRegistry()
	require.NotNil(t, registry)

	p, ok := registry.Get("santander")
	require.True(t, ok)
	assert.Equal(t, "santander", p.ID())
}

func TestNewCategorizer(t *testing.T) {
	c := root.NewCategorizer()
	require.NotNil(t, c)
	assert.Equal(t, "Food & Dining", c.Categorize("RESTAURANTE LA PLAZA"))
}
