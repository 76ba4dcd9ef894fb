package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModulesGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(modules(), fx.NopLogger))
}
