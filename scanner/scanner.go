package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/frostlang/frost/token"
)

const (
	ScanComments Mode = 1 << iota // return comments as COMMENT tokens
)

type (
	// An ErrorHandler may be provided to Scanner.Init. If a lexical error is
	// encountered and a handler was installed, the handler is called with a
	// position and an error message. The position points to the beginning of
	// the offending token.
	//
	ErrorHandler func(pos token.Position, msg string)

	// A Scanner holds the scanner's internal state while processing
	// a given text. It can be allocated as part of another data
	// structure but must be initialized via Init before use.
	//
	Scanner struct {
		// immutable state
		file *token.File  // source file handle
		src  []byte       // source; borrowed, never written
		err  ErrorHandler // error reporting; or nil
		mode Mode         // scanning mode

		// scanning state (the read cursor)
		ch         rune // current character
		offset     int  // character offset
		rdOffset   int  // reading offset (position after current character)
		lineOffset int  // current line offset

		// public state - ok to modify
		ErrorCount int // number of errors encountered
	}

	// Mode A mode value is a set of flags (or 0).
	// They control scanner behavior.
	//
	Mode uint
)

// Init prepares the scanner s to tokenize the text src by setting the
// scanner at the beginning of src. The scanner uses the file set file
// for position information and it adds line information for each line.
// It is ok to re-use the same file when re-scanning the same file as
// line information which is already present is ignored. Init causes a
// panic if the file size does not match the src size.
//
// Calls to Scan will invoke the error handler err if they encounter a
// lexical error and err is not nil.
//
func (s *Scanner) Init(file *token.File, src []byte, err ErrorHandler, mode Mode) {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	s.file = file
	s.src = src
	s.err = err
	s.mode = mode

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.lineOffset = 0
	s.ErrorCount = 0

	s.next()
	if s.ch == bom {
		s.next() // ignore BOM at file beginning
	}
}

const (
	bom = 0xFEFF // byte order mark, only permitted as very first character
	eof = -1     // end of file
)

// next reads the next Unicode char into s.ch.
// s.ch < 0 means end-of-file. The cursor only moves forward.
//
func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		if s.ch == '\n' {
			s.lineOffset = s.offset
			s.file.AddLine(s.offset)
		}
		r, w := rune(s.src[s.rdOffset]), 1
		switch {
		case r == 0:
			s.error(s.offset, "illegal character NUL")
		case r >= utf8.RuneSelf:
			// not ASCII
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				s.error(s.offset, "illegal UTF-8 encoding")
			} else if r == bom && s.offset > 0 {
				s.error(s.offset, "illegal byte order mark")
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.lineOffset = s.offset
			s.file.AddLine(s.offset)
		}
		s.ch = eof
	}
}

// Peek returns the source byte at the given offset relative to the current
// scan position without moving the cursor. The offset may be negative for
// lookbehind; out-of-range offsets are clamped to the source bounds, and
// the position past the last byte reads as 0.
//
func (s *Scanner) Peek(offset int) byte {
	i := s.offset + offset
	if i < 0 {
		i = 0
	}
	if i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.next()
	}
}

// Maximal-munch helpers: try the longest operator spelling reachable from
// the character already consumed before settling for a shorter one.

func (s *Scanner) switch2(tok0, tok1 token.Token) token.Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	return tok0
}

func (s *Scanner) switch3(tok0, tok1 token.Token, ch2 rune, tok2 token.Token) token.Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	if s.ch == ch2 {
		s.next()
		return tok2
	}
	return tok0
}

// Scan scans the next token and returns the token position, the token,
// and its literal string if applicable. The source end is indicated by
// token.EOF.
//
// If the returned token is a literal (token.IDENT, token.INT, token.FLOAT,
// token.CHAR, token.STRING), a keyword, a token.COMMENT, or token.ILLEGAL,
// the literal string has the corresponding value; otherwise it is empty.
//
// Malformed input does not stop the scan: the offending text is returned
// as a token.ILLEGAL token (and reported to the error handler, if any)
// and scanning resumes after it. Every call either advances the scanner
// by at least one character or returns token.EOF, so repeated calls
// always terminate.
//
func (s *Scanner) Scan() (pos token.Pos, tok token.Token, lit string) {
scanAgain:
	s.skipWhitespace()

	pos = s.file.Pos(s.offset)

	switch ch := s.ch; {
	case isLetter(ch):
		lit = s.scanIdentifier()
		tok = token.Lookup(lit)
	case isDecimal(ch):
		tok, lit = s.scanNumber()
	default:
		s.next() // always make progress
		switch ch {
		case eof:
			tok = token.EOF
		case '"':
			tok, lit = s.scanString()
		case '\'':
			tok, lit = s.scanChar()
		case '/':
			if s.ch == '/' || s.ch == '*' {
				comment, terminated := s.scanComment()
				if !terminated {
					tok = token.ILLEGAL
					lit = comment
					break
				}
				if s.mode&ScanComments == 0 {
					// skip comment
					goto scanAgain
				}
				tok = token.COMMENT
				lit = comment
			} else {
				tok = s.switch2(token.QUO, token.QUO_ASSIGN)
			}
		case '+':
			tok = s.switch2(token.ADD, token.ADD_ASSIGN)
		case '-':
			tok = s.switch2(token.SUB, token.SUB_ASSIGN)
		case '*':
			tok = s.switch2(token.MUL, token.MUL_ASSIGN)
		case '%':
			tok = token.REM
		case '=':
			tok = s.switch2(token.ASSIGN, token.EQL)
		case '!':
			tok = s.switch2(token.NOT, token.NEQ)
		case '<':
			tok = s.switch3(token.LSS, token.LEQ, '<', token.SHL)
		case '>':
			tok = s.switch3(token.GTR, token.GEQ, '>', token.SHR)
		case '&':
			if s.ch == '&' {
				s.next()
				tok = token.LAND
			} else {
				tok = token.AND
			}
		case '|':
			if s.ch == '|' {
				s.next()
				tok = token.LOR
			} else {
				tok = token.OR
			}
		case '^':
			tok = token.XOR
		case '~':
			tok = token.TILDE
		case ':':
			if s.ch == ':' {
				s.next()
				tok = token.DOUBLE_COLON
			} else {
				tok = token.COLON
			}
		case '.':
			tok = token.PERIOD
		case ',':
			tok = token.COMMA
		case ';':
			tok = token.SEMICOLON
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		default:
			// next reports unexpected BOMs - don't repeat
			if ch != bom {
				s.errorf(s.file.Offset(pos), "illegal character %#U", ch)
			}
			tok = token.ILLEGAL
			lit = string(ch)
		}
	}

	return
}
