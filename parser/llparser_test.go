package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampell-lang/ampell/decl"
)

func TestParseSimpleStatements(t *testing.T) {
	prog, err := Parse(`&[15] &["hi"] &[n] % $ >>x + - × ÷ work: \[aux] ^"Age?"~age`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 13)

	lit, ok := prog.Statements[0].(*decl.PushLiteralStmt)
	require.True(t, ok)
	assert.Equal(t, decl.NumberValue(15), lit.Value)

	text, ok := prog.Statements[1].(*decl.PushLiteralStmt)
	require.True(t, ok)
	assert.Equal(t, decl.TextValue("hi"), text.Value)

	pvar, ok := prog.Statements[2].(*decl.PushVarStmt)
	require.True(t, ok)
	assert.Equal(t, "n", pvar.Name)

	_, ok = prog.Statements[3].(*decl.PopStmt)
	assert.True(t, ok)
	_, ok = prog.Statements[4].(*decl.PrintStmt)
	assert.True(t, ok)

	store, ok := prog.Statements[5].(*decl.StoreStmt)
	require.True(t, ok)
	assert.Equal(t, "x", store.VarName)

	expectedOps := []decl.ArithOp{decl.OpAdd, decl.OpSub, decl.OpMul, decl.OpDiv}
	for i, op := range expectedOps {
		arith, ok := prog.Statements[6+i].(*decl.ArithStmt)
		require.True(t, ok, "statement %d should be arithmetic", 6+i)
		assert.Equal(t, op, arith.Op)
	}

	call, ok := prog.Statements[10].(*decl.CallStmt)
	require.True(t, ok)
	assert.Equal(t, "work", call.Name)

	sw, ok := prog.Statements[11].(*decl.SwitchStackStmt)
	require.True(t, ok)
	assert.Equal(t, "aux", sw.Name)

	ask, ok := prog.Statements[12].(*decl.AskStmt)
	require.True(t, ok)
	assert.Equal(t, "Age?", ask.Prompt)
	assert.Equal(t, "age", ask.VarName)
}

func TestParseNestedBlocks(t *testing.T) {
	prog, err := Parse(`@outer[ =[ ![ % ] ] $ ]`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)

	def, ok := prog.Statements[0].(*decl.FuncDefStmt)
	require.True(t, ok)
	assert.Equal(t, "outer", def.Name)
	require.Len(t, def.Body.Statements, 2)

	eq, ok := def.Body.Statements[0].(*decl.CondStmt)
	require.True(t, ok)
	assert.Equal(t, decl.CmpEq, eq.Op)
	require.Len(t, eq.Body.Statements, 1)

	neq, ok := eq.Body.Statements[0].(*decl.CondStmt)
	require.True(t, ok)
	assert.Equal(t, decl.CmpNeq, neq.Op)
	require.Len(t, neq.Body.Statements, 1)
	_, ok = neq.Body.Statements[0].(*decl.PopStmt)
	assert.True(t, ok)

	// The inner brackets close the inner bodies, not the outer function.
	_, ok = def.Body.Statements[1].(*decl.PrintStmt)
	assert.True(t, ok)
}

func TestParseConditionalOps(t *testing.T) {
	prog, err := Parse(`=[ ] ![ ] <[ ] >[ ]`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 4)
	expected := []decl.CmpOp{decl.CmpEq, decl.CmpNeq, decl.CmpLt, decl.CmpGt}
	for i, op := range expected {
		cond, ok := prog.Statements[i].(*decl.CondStmt)
		require.True(t, ok)
		assert.Equal(t, op, cond.Op)
		assert.Empty(t, cond.Body.Statements)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unclosed function body", "@f[ % "},
		{"unclosed conditional", "=[ &[1] "},
		{"unclosed nested block", "@f[ =[ % ] "},
		{"comparison without block", "= %"},
		{"definition without block", "@f %"},
		{"stray close bracket", "% ]"},
		{"stray open bracket", "[ % ]"},
		{"bare colon", ": %"},
		{"identifier without colon", "work %"},
		{"empty push", "&[]"},
		{"push with operator content", "&[+]"},
		{"push with two tokens", "&[1 2]"},
		{"push without brackets", "& %"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
		})
	}
}

func TestParseErrorPositions(t *testing.T) {
	_, err := Parse("&[1]\n@f[ %")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseDeterminism(t *testing.T) {
	source := `&[3] >>n % @count[ &[n] $ &[1] - >>n % &[n] &[0] >[ % % count: ] ] count:`
	first, err := Parse(source)
	require.NoError(t, err)
	second, err := Parse(source)
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, decl.PPrintString(first), decl.PPrintString(second))
}

func TestParseCommentsIgnored(t *testing.T) {
	prog, err := Parse("# heading\n&[1] # push one\n# done\n")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
}
