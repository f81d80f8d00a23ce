package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lohvht/golithp/lang/diag"
	"github.com/lohvht/golithp/lang/value"
)

func TestReadAtoms(t *testing.T) {
	v, err := Read("test", "42")
	require.NoError(t, err)
	assert.Equal(t, value.Number(42), v)

	v, err = Read("test", "#t")
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(true), v)

	v, err = Read("test", "foo-bar?")
	require.NoError(t, err)
	assert.Equal(t, value.Symbol("foo-bar?"), v)
}

func TestReadProperList(t *testing.T) {
	v, err := Read("test", "(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", v.String())
}

func TestReadDottedPair(t *testing.T) {
	v, err := Read("test", "(1 . 2)")
	require.NoError(t, err)
	assert.Equal(t, "(1 . 2)", v.String())
}

func TestReadImproperList(t *testing.T) {
	v, err := Read("test", "(1 2 . 3)")
	require.NoError(t, err)
	assert.Equal(t, "(1 2 . 3)", v.String())
}

func TestReadEmptyList(t *testing.T) {
	v, err := Read("test", "()")
	require.NoError(t, err)
	assert.True(t, value.IsEmpty(v))
}

func TestReadQuote(t *testing.T) {
	v, err := Read("test", "'(1 2)")
	require.NoError(t, err)
	assert.Equal(t, "(quote (1 2))", v.String())
}

func TestReadMissingCloseParenIsSyntaxError(t *testing.T) {
	_, err := Read("test", "(+ 1 2")
	require.Error(t, err)
	var syn *diag.SyntaxError
	assert.ErrorAs(t, err, &syn)
}

func TestReadTrailingTokensIsSyntaxError(t *testing.T) {
	_, err := Read("test", "1 2")
	require.Error(t, err)
	var syn *diag.SyntaxError
	assert.ErrorAs(t, err, &syn)
}

func TestReadOrphanDotIsSyntaxError(t *testing.T) {
	_, err := Read("test", ". 1")
	require.Error(t, err)
	var syn *diag.SyntaxError
	assert.ErrorAs(t, err, &syn)
}

func TestReadAllMultipleExpressions(t *testing.T) {
	exprs, err := ReadAll("test", "(define x 10) (* x x)")
	require.NoError(t, err)
	require.Len(t, exprs, 2)
	assert.Equal(t, "(define x 10)", exprs[0].String())
	assert.Equal(t, "(* x x)", exprs[1].String())
}

// TestReaderPrinterRoundTrip reads each expression of a fixed corpus of
// well-formed inputs and checks that printing what was read reproduces input
// that reads back to an equal value, per the round-trip testable property.
func TestReaderPrinterRoundTrip(t *testing.T) {
	inputs := []string{
		"0",
		"42",
		"#t",
		"#f",
		"foo",
		"()",
		"(1)",
		"(1 2 3)",
		"(1 . 2)",
		"(1 2 . 3)",
		"(+ 1 (* 2 3))",
		"(quote (1 2))",
		"((lambda (x) x) 5)",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v, err := Read("roundtrip", in)
			require.NoError(t, err)
			printed := v.String()
			v2, err := Read("roundtrip", printed)
			require.NoError(t, err)
			assert.Equal(t, printed, v2.String())
		})
	}
}
