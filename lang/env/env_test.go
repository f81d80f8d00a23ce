package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lohvht/golithp/lang/diag"
	"github.com/lohvht/golithp/lang/env"
	"github.com/lohvht/golithp/lang/value"
)

func TestLookupInParentChain(t *testing.T) {
	parent := env.New(nil)
	parent.Define("x", value.Number(1))
	child := parent.NewChild()

	v, err := child.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestDefineShadowsParentInChild(t *testing.T) {
	parent := env.New(nil)
	parent.Define("x", value.Number(1))
	child := parent.NewChild()
	child.Define("x", value.Number(2))

	v, _ := child.Lookup("x")
	assert.Equal(t, value.Number(2), v)
	v, _ = parent.Lookup("x")
	assert.Equal(t, value.Number(1), v)
}

func TestLookupUnboundIsNameError(t *testing.T) {
	e := env.New(nil)
	_, err := e.Lookup("nope")
	require.Error(t, err)
	var nameErr *diag.NameError
	assert.ErrorAs(t, err, &nameErr)
}

func TestAssignRebindsInDefiningFrame(t *testing.T) {
	parent := env.New(nil)
	parent.Define("x", value.Number(1))
	child := env.New(parent)

	require.NoError(t, child.Assign("x", value.Number(9)))

	v, _ := child.Lookup("x")
	assert.Equal(t, value.Number(9), v)
	v, _ = parent.Lookup("x")
	assert.Equal(t, value.Number(9), v)
}

func TestAssignUnboundIsNameError(t *testing.T) {
	e := env.New(nil)
	err := e.Assign("nope", value.Number(1))
	require.Error(t, err)
	var nameErr *diag.NameError
	assert.ErrorAs(t, err, &nameErr)
}
