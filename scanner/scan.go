package scanner

import (
	"fmt"
	"unicode"

	"github.com/frostlang/frost/token"
)

// ----------------------------------------------------------------------------
// scanIdentifier

func (s *Scanner) scanIdentifier() string {
	offs := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

// ----------------------------------------------------------------------------
// scanNumber

func (s *Scanner) scanDigits() {
	for isDecimal(s.ch) {
		s.next()
	}
}

// scanNumber scans an integer or floating-point literal. The integer part
// has already been identified (s.ch is a decimal digit). A '.' only starts
// a fraction when a digit follows, so "1." lexes as INT then PERIOD. More
// than one fraction is a malformed literal: the whole run of digits and
// points is consumed into a single ILLEGAL token rather than lexing as two
// numbers.
func (s *Scanner) scanNumber() (token.Token, string) {
	offs := s.offset
	tok := token.INT

	s.scanDigits()
	if s.ch == '.' && isDecimal(rune(s.Peek(1))) {
		tok = token.FLOAT
		s.next() // consume '.'
		s.scanDigits()

		malformed := false
		for s.ch == '.' && isDecimal(rune(s.Peek(1))) {
			malformed = true
			s.next()
			s.scanDigits()
		}
		if malformed {
			s.error(offs, "too many decimal points in number")
			tok = token.ILLEGAL
		}
	}

	return tok, string(s.src[offs:s.offset])
}

// ----------------------------------------------------------------------------
// scanString

func (s *Scanner) scanString() (token.Token, string) {
	// '"' opening already consumed
	offs := s.offset - 1
	tok := token.STRING

	for {
		ch := s.ch
		if ch == '\n' || ch < 0 {
			s.error(offs, "string literal not terminated")
			tok = token.ILLEGAL
			break
		}
		s.next()
		if ch == '"' {
			break
		}
		if ch == '\\' {
			s.scanEscape('"')
		}
	}

	return tok, string(s.src[offs:s.offset])
}

// ----------------------------------------------------------------------------
// scanChar

func (s *Scanner) scanChar() (token.Token, string) {
	// '\'' opening already consumed
	offs := s.offset - 1
	tok := token.CHAR

	valid := true
	n := 0
	for {
		ch := s.ch
		if ch == '\n' || ch < 0 {
			// only report error if we don't have one already
			if valid {
				s.error(offs, "char literal not terminated")
				valid = false
			}
			break
		}
		s.next()
		if ch == '\'' {
			break
		}
		n++
		if ch == '\\' {
			if !s.scanEscape('\'') {
				valid = false
			}
		}
	}

	if valid && n != 1 {
		s.error(offs, "illegal char literal")
		valid = false
	}
	if !valid {
		tok = token.ILLEGAL
	}

	return tok, string(s.src[offs:s.offset])
}

// ----------------------------------------------------------------------------
// scanComment

// scanComment consumes a //-style comment up to (not including) the line
// end, or a /*-style comment up to the matching close. The second result
// is false when the source ends inside a block comment.
func (s *Scanner) scanComment() (string, bool) {
	// initial '/' already consumed; s.ch == '/' || s.ch == '*'
	offs := s.offset - 1 // position of initial '/'
	numCR := 0
	terminated := true

	if s.ch == '/' {
		//-style comment
		// (the final '\n' is not considered part of the comment)
		s.next()
		for s.ch != '\n' && s.ch >= 0 {
			if s.ch == '\r' {
				numCR++
			}
			s.next()
		}
		goto exit
	}

	/*-style comment */
	s.next()
	for s.ch >= 0 {
		ch := s.ch
		if ch == '\r' {
			numCR++
		}
		s.next()
		if ch == '*' && s.ch == '/' {
			s.next()
			goto exit
		}
	}

	s.error(offs, "comment not terminated")
	terminated = false

exit:
	lit := s.src[offs:s.offset]

	// On Windows, a (//-comment) line may end in "\r\n".
	// Remove the final '\r' before removing any interior
	// '\r' (matching the behavior of the go/scanner).
	if numCR > 0 && len(lit) >= 2 && lit[1] == '/' && lit[len(lit)-1] == '\r' {
		lit = lit[:len(lit)-1]
		numCR--
	}
	if numCR > 0 {
		lit = stripCR(lit, lit[1] == '*')
	}

	return string(lit), terminated
}

func stripCR(b []byte, comment bool) []byte {
	c := make([]byte, len(b))
	i := 0
	for j, ch := range b {
		// In a /*-style comment, don't strip \r from *\r/ (incl.
		// sequences of \r from *\r\r...\r/) since the resulting
		// */ would terminate the comment too early unless the \r
		// is immediately following the opening /* in which case
		// it's ok because /*/ is not closed yet.
		if ch != '\r' || comment && i > len("/*") && c[i-1] == '*' && j+1 < len(b) && b[j+1] == '/' {
			c[i] = ch
			i++
		}
	}
	return c[:i]
}

// ----------------------------------------------------------------------------
// scanEscape

// scanEscape parses an escape sequence where rune is the accepted
// escaped quote. In case of a syntax error, it stops at the offending
// character (without consuming it) and returns false. Otherwise
// it returns true.
func (s *Scanner) scanEscape(quote rune) bool {
	offs := s.offset

	var n int
	var base, max uint32
	switch s.ch {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', quote:
		s.next()
		return true
	case '0', '1', '2', '3', '4', '5', '6', '7':
		n, base, max = 3, 8, 255
	case 'x':
		s.next()
		n, base, max = 2, 16, 255
	case 'u':
		s.next()
		n, base, max = 4, 16, unicode.MaxRune
	case 'U':
		s.next()
		n, base, max = 8, 16, unicode.MaxRune
	default:
		msg := "unknown escape sequence"
		if s.ch < 0 {
			msg = "escape sequence not terminated"
		}
		s.error(offs, msg)
		return false
	}

	var x uint32
	for n > 0 {
		d := uint32(digitVal(s.ch))
		if d >= base {
			msg := fmt.Sprintf("illegal character %#U in escape sequence", s.ch)
			if s.ch < 0 {
				msg = "escape sequence not terminated"
			}
			s.error(s.offset, msg)
			return false
		}
		x = x*base + d
		s.next()
		n--
	}

	if x > max || 0xD800 <= x && x < 0xE000 {
		s.error(offs, "escape sequence is invalid Unicode code point")
		return false
	}

	return true
}
