// Package lexer provides the token-stream interface to the Frost scanner:
// construction from a file, string, byte slice, or reader, and one token
// per call until EOF.
package lexer

import (
	"errors"
	"io"
	"os"

	"github.com/frostlang/frost/scanner"
	"github.com/frostlang/frost/token"
)

// A Token is one classified lexical unit of a Frost source text: its kind,
// its position, and - for literal, keyword, comment, and ILLEGAL kinds -
// the lexeme it was derived from. Tokens are plain values owned by the
// caller from the moment they are returned; there is nothing to release.
type Token struct {
	Pos token.Pos
	Tok token.Token
	Lit string
}

// Mode controls scanner behavior, see the scanner package.
type Mode = scanner.Mode

// ScanComments requests COMMENT tokens instead of skipping comments.
const ScanComments = scanner.ScanComments

var (
	// ErrNoSource is returned by New when neither a filename nor an
	// in-memory source is supplied.
	ErrNoSource = errors.New("lexer: no source provided")

	// ErrInvalidSource is returned by New when src has an unsupported type.
	ErrInvalidSource = errors.New("lexer: invalid source type")
)

func readSource(filename string, src interface{}) ([]byte, error) {
	if src != nil {
		switch s := src.(type) {
		case string:
			return []byte(s), nil
		case []byte:
			return s, nil
		case io.Reader:
			return io.ReadAll(s)
		}
		return nil, ErrInvalidSource
	}
	if filename == "" {
		return nil, ErrNoSource
	}
	return os.ReadFile(filename)
}

// A Lexer drives a Scanner over a single source buffer and hands out
// tokens one at a time. The buffer is borrowed: the lexer never writes to
// it or frees it, and tokens whose lexemes must outlive the buffer copy
// out of it when they are produced. A Lexer cannot be rewound; tokenizing
// the same source again requires a new Lexer.
type Lexer struct {
	file    *token.File
	scanner scanner.Scanner
	errors  scanner.ErrorList
}

// New creates a Lexer for the given source. The source is read from src if
// src is a string, []byte, or io.Reader; otherwise, with src == nil, it is
// read from filename. Position information is recorded in fset, which must
// not be nil.
//
// New fails with ErrNoSource when no source is supplied at all, with
// ErrInvalidSource for an unsupported src type, and with the underlying
// I/O error when filename cannot be read.
func New(fset *token.FileSet, filename string, src interface{}, mode Mode) (*Lexer, error) {
	if fset == nil {
		panic("lexer.New: no token.FileSet provided (fset == nil)")
	}

	text, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}

	l := &Lexer{}
	l.file = fset.AddFile(filename, fset.Base(), len(text))
	eh := func(pos token.Position, msg string) { l.errors.Add(pos, msg) }
	l.scanner.Init(l.file, text, eh, mode)
	return l, nil
}

// Next returns the next token of the stream. Malformed input is returned
// as a token.ILLEGAL token carrying the offending lexeme, so the stream is
// total: Next always yields a token. Once the end of input is reached,
// every subsequent call returns an EOF token at the same position.
func (l *Lexer) Next() Token {
	pos, tok, lit := l.scanner.Scan()
	return Token{Pos: pos, Tok: tok, Lit: lit}
}

// Peek returns the raw source byte at the given offset relative to the
// current scan position, without consuming anything. Negative offsets look
// behind; out-of-range offsets are clamped and the end of input reads as 0.
func (l *Lexer) Peek(offset int) byte {
	return l.scanner.Peek(offset)
}

// File returns the position table for the source being tokenized.
func (l *Lexer) File() *token.File {
	return l.file
}

// ErrorCount returns the number of lexical errors encountered so far.
func (l *Lexer) ErrorCount() int {
	return l.scanner.ErrorCount
}

// Err returns the lexical errors collected so far as an error, or nil if
// there were none. The list is sorted by position.
func (l *Lexer) Err() error {
	l.errors.Sort()
	return l.errors.Err()
}

// Tokenize runs a fresh Lexer over the given source and returns the
// complete token stream up to and including the EOF token, together with
// any lexical errors. The returned slice is never empty on success.
func Tokenize(fset *token.FileSet, filename string, src interface{}, mode Mode) ([]Token, error) {
	l, err := New(fset, filename, src, mode)
	if err != nil {
		return nil, err
	}

	var toks []Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Tok == token.EOF {
			break
		}
	}
	return toks, l.Err()
}
