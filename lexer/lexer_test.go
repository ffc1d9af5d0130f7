package lexer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostlang/frost/lexer"
	"github.com/frostlang/frost/token"
)

func kinds(toks []lexer.Token) []token.Token {
	out := make([]token.Token, len(toks))
	for i, t := range toks {
		out[i] = t.Tok
	}
	return out
}

func TestNewSourceTypes(t *testing.T) {
	fset := token.NewFileSet()
	const src = "return 0;"
	want := []token.Token{token.RETURN, token.INT, token.SEMICOLON, token.EOF}

	for name, arg := range map[string]interface{}{
		"string": src,
		"bytes":  []byte(src),
		"reader": strings.NewReader(src),
	} {
		toks, err := lexer.Tokenize(fset, "", arg, 0)
		require.NoError(t, err, name)
		assert.Equal(t, want, kinds(toks), name)
	}
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "main.frost")
	require.NoError(t, os.WriteFile(name, []byte("int main() { return 0; }"), 0o644))

	fset := token.NewFileSet()
	toks, err := lexer.Tokenize(fset, name, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		token.KW_INT, token.IDENT, token.LPAREN, token.RPAREN,
		token.LBRACE, token.RETURN, token.INT, token.SEMICOLON, token.RBRACE,
		token.EOF,
	}, kinds(toks))
}

func TestNewErrors(t *testing.T) {
	fset := token.NewFileSet()

	_, err := lexer.New(fset, "", nil, 0)
	assert.ErrorIs(t, err, lexer.ErrNoSource)

	_, err = lexer.New(fset, "", 42, 0)
	assert.ErrorIs(t, err, lexer.ErrInvalidSource)

	_, err = lexer.New(fset, filepath.Join(t.TempDir(), "missing.frost"), nil, 0)
	assert.Error(t, err)

	assert.Panics(t, func() { _, _ = lexer.New(nil, "", "x", 0) })
}

func TestNextEOFIdempotent(t *testing.T) {
	fset := token.NewFileSet()
	l, err := lexer.New(fset, "", "x", 0)
	require.NoError(t, err)

	tok := l.Next()
	assert.Equal(t, token.IDENT, tok.Tok)

	eof := l.Next()
	assert.Equal(t, token.EOF, eof.Tok)
	for i := 0; i < 5; i++ {
		again := l.Next()
		assert.Equal(t, token.EOF, again.Tok)
		assert.Equal(t, eof.Pos, again.Pos)
	}
}

func TestStreamIsTotal(t *testing.T) {
	// malformed input surfaces as ILLEGAL tokens plus collected errors,
	// never as a failed Next
	fset := token.NewFileSet()
	l, err := lexer.New(fset, "", `x = "abc`, 0)
	require.NoError(t, err)

	var got []token.Token
	for {
		tok := l.Next()
		got = append(got, tok.Tok)
		if tok.Tok == token.EOF {
			break
		}
	}
	assert.Equal(t, []token.Token{token.IDENT, token.ASSIGN, token.ILLEGAL, token.EOF}, got)

	require.Error(t, l.Err())
	assert.Equal(t, 1, l.ErrorCount())
	assert.Contains(t, l.Err().Error(), "string literal not terminated")
}

func TestTokenizeCollectsErrors(t *testing.T) {
	fset := token.NewFileSet()
	toks, err := lexer.Tokenize(fset, "bad.frost", "3.14.5 @", 0)
	assert.Error(t, err)
	assert.Equal(t, []token.Token{token.ILLEGAL, token.ILLEGAL, token.EOF}, kinds(toks))
}

func TestPeek(t *testing.T) {
	fset := token.NewFileSet()
	l, err := lexer.New(fset, "", "std::out", 0)
	require.NoError(t, err)

	tok := l.Next()
	require.Equal(t, token.IDENT, tok.Tok)
	require.Equal(t, "std", tok.Lit)

	// cursor sits on the first ':' now
	assert.EqualValues(t, ':', l.Peek(0))
	assert.EqualValues(t, ':', l.Peek(1))
	assert.EqualValues(t, 'o', l.Peek(2))
	assert.EqualValues(t, 's', l.Peek(-3))
	assert.EqualValues(t, 's', l.Peek(-100)) // clamped
	assert.EqualValues(t, 0, l.Peek(100))    // clamped
}

func TestComments(t *testing.T) {
	fset := token.NewFileSet()
	const src = "a // line\n/* block */ b"

	toks, err := lexer.Tokenize(fset, "", src, 0)
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.IDENT, token.IDENT, token.EOF}, kinds(toks))

	toks, err = lexer.Tokenize(fset, "", src, lexer.ScanComments)
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		token.IDENT, token.COMMENT, token.COMMENT, token.IDENT, token.EOF,
	}, kinds(toks))
}
