package golithp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lohvht/golithp"
)

func TestScenarioTable(t *testing.T) {
	in := golithp.New("test")

	result, err := in.Evaluate("(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "3", result)

	result, err = in.Evaluate("'(1 2 . 3)")
	require.NoError(t, err)
	assert.Equal(t, "(1 2 . 3)", result)

	result, err = in.Evaluate("(if #f 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "2", result)

	result, err = in.Evaluate("(define x 10)")
	require.NoError(t, err)
	assert.Equal(t, "#t", result)
	result, err = in.Evaluate("(* x x)")
	require.NoError(t, err)
	assert.Equal(t, "100", result)

	result, err = in.Evaluate("(define (sq x) (* x x))")
	require.NoError(t, err)
	assert.Equal(t, "#t", result)
	result, err = in.Evaluate("(sq 5)")
	require.NoError(t, err)
	assert.Equal(t, "25", result)

	result, err = in.Evaluate("(define p (cons 1 2))")
	require.NoError(t, err)
	assert.Equal(t, "#t", result)
	result, err = in.Evaluate("(set-car! p 7)")
	require.NoError(t, err)
	assert.Equal(t, "#t", result)
	result, err = in.Evaluate("(car p)")
	require.NoError(t, err)
	assert.Equal(t, "7", result)

	result, err = in.Evaluate("(list-tail (list 1 2 3 4) 2)")
	require.NoError(t, err)
	assert.Equal(t, "(3 4)", result)

	_, err = in.Evaluate("(+ 1 2")
	assert.Error(t, err)

	_, err = in.Evaluate("undefined-name")
	assert.Error(t, err)

	_, err = in.Evaluate("(/ 1 0)")
	assert.Error(t, err)
}

func TestEvalAllChainsDefinitions(t *testing.T) {
	in := golithp.New("test")
	results, err := in.EvalAll("(define x 10) (* x x)")
	require.NoError(t, err)
	require.Equal(t, []string{"#t", "100"}, results)
}

func TestEvaluateStatelessConvenience(t *testing.T) {
	result, err := golithp.Evaluate("(+ 40 2)")
	require.NoError(t, err)
	assert.Equal(t, "42", result)
}
