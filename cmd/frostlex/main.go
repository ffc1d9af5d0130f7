// Command frostlex tokenizes Frost source files and prints the resulting
// token stream, one token per line. It is the lexical front half of the
// compiler pipeline, exposed as a standalone tool.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/frostlang/frost/lexer"
	"github.com/frostlang/frost/token"
)

type CLI struct {
	Paths    []string `arg:"" optional:"" name:"path" help:"Files or directories to tokenize (use dir/... to recurse). Reads stdin when empty."`
	Comments bool     `help:"Emit COMMENT tokens instead of skipping comments."`
	Count    bool     `short:"c" help:"Print a per-file token count instead of the token stream."`
}

type runner struct {
	cli    CLI
	fset   *token.FileSet
	log    *zap.Logger
	failed bool // at least one file had lexical errors
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("frostlex"),
		kong.Description("Tokenize Frost source code."),
	)

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	r := &runner{cli: cli, fset: token.NewFileSet(), log: log}
	kctx.FatalIfErrorf(r.run())
	if r.failed {
		os.Exit(1)
	}
}

func (r *runner) mode() lexer.Mode {
	if r.cli.Comments {
		return lexer.ScanComments
	}
	return 0
}

func (r *runner) run() error {
	if len(r.cli.Paths) == 0 {
		return r.process("<standard input>", os.Stdin)
	}

	for _, path := range r.cli.Paths {
		walkSubDir := strings.HasSuffix(path, "/...")
		if walkSubDir {
			path = path[:len(path)-len("...")]
		}

		err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if !walkSubDir {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".frost" {
				return nil
			}
			return r.process(path, nil)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// process tokenizes a single source, printing the stream (or its size) to
// stdout. Lexical errors are logged and remembered for the exit status but
// do not abort the run; only I/O failures do.
func (r *runner) process(name string, in io.Reader) error {
	l, err := lexer.New(r.fset, name, srcArg(in), r.mode())
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	n := 0
	for {
		t := l.Next()
		if t.Tok == token.EOF {
			break
		}
		n++
		if !r.cli.Count {
			fmt.Printf("%s\t%s\t%q\n", r.fset.Position(t.Pos), t.Tok, t.Lit)
		}
	}
	if r.cli.Count {
		fmt.Printf("%s\t%d tokens\n", name, n)
	}

	if err := l.Err(); err != nil {
		r.failed = true
		r.log.Warn("lexical errors",
			zap.String("file", name),
			zap.Int("count", l.ErrorCount()),
			zap.Error(err))
	}
	return nil
}

// srcArg keeps lexer.New's nil-means-read-the-file convention: a nil
// io.Reader inside a non-nil interface value would defeat it.
func srcArg(in io.Reader) interface{} {
	if in == nil {
		return nil
	}
	return in
}
