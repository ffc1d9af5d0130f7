package scanner_test

import (
	"fmt"

	"github.com/frostlang/frost/scanner"
	"github.com/frostlang/frost/token"
)

func ExampleScanner_Scan() {
	// src is the input that we want to tokenize.
	src := []byte(`if (n <= 1) { return n; }`)

	// Initialize the scanner.
	var s scanner.Scanner
	fset := token.NewFileSet()                      // positions are relative to fset
	file := fset.AddFile("", fset.Base(), len(src)) // register input "file"
	s.Init(file, src, nil /* no error handler */, scanner.ScanComments)

	// Repeated calls to Scan yield the token sequence found in the input.
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		fmt.Printf("%s\t%s\t%q\n", fset.Position(pos), tok, lit)
	}

	// output:
	// 1:1	if	"if"
	// 1:4	(	""
	// 1:5	IDENT	"n"
	// 1:7	<=	""
	// 1:10	INT	"1"
	// 1:11	)	""
	// 1:13	{	""
	// 1:15	return	"return"
	// 1:22	IDENT	"n"
	// 1:23	;	""
	// 1:25	}	""
}
