package fuzz

import (
	"testing"

	"github.com/cybertec-plsql/plsqlcst/lexer"
	"github.com/cybertec-plsql/plsqlcst/parser"
	"github.com/cybertec-plsql/plsqlcst/syntax"
)

// FuzzLexer checks the lexer never panics and always makes forward
// progress (Next eventually reaches Eof) on arbitrary byte input.
func FuzzLexer(f *testing.F) {
	seeds := []string{
		"SELECT * FROM t",
		"'unterminated string",
		"/* unterminated comment",
		"\x00\x01\x02",
		"идентификатор",
		"q'[literal]'",
		"1.5e-10",
		"0x1A2B",
		":named_param",
		"",
		"   \t\n  ",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("lexer panicked on input %q: %v", src, r)
			}
		}()

		l := lexer.New(src)
		consumed := 0
		for i := 0; i < len(src)+1; i++ {
			it := l.Next()
			if it.IsEof() {
				return
			}
			if it.End() <= consumed {
				t.Fatalf("lexer made no progress at offset %d on input %q", consumed, src)
			}
			consumed = it.End()
		}
		t.Fatalf("lexer did not reach Eof within len(src)+1 tokens for input %q", src)
	})
}

// FuzzParseUnit checks that every grammar entry point, fed through the
// dispatching ParseUnit, never panics and always produces a tree whose
// reconstructed text equals the input exactly, regardless of how
// malformed the input is.
func FuzzParseUnit(f *testing.F) {
	seeds := []string{
		"CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END p;",
		"CREATE OR REPLACE FUNCTION f RETURN NUMBER IS BEGIN RETURN 1; END f;",
		"BEGIN NULL; END;",
		"DECLARE x NUMBER; BEGIN x := 1; END;",
		"SELECT a FROM t WHERE a = 1",
		"INSERT INTO t (a) VALUES (1);",
		"UPDATE t SET a = 1 WHERE b = 2;",
		"DELETE FROM t WHERE a = 1;",
		"CREATE TABLE t (a NUMBER);",
		"CREATE SEQUENCE s;",
		"CREATE OR REPLACE TRIGGER trg BEFORE INSERT ON t BEGIN NULL; END trg;",
		"CREATE OR REPLACE VIEW v AS SELECT 1 FROM dual;",
		"BEGIN ABC END;",
		"SELECT f(a, b FROM t",
		"))))",
		"((((",
		"",
		"   ",
		"-- comment only",
		"CREATE",
		"CREATE OR REPLACE",
		"BEGIN",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseUnit panicked on input %q: %v", src, r)
			}
		}()

		p := parser.New(src)
		res := p.ParseUnit()
		tree := syntax.NewRoot(res.Root)
		if got := tree.Text(); got != src {
			t.Errorf("round-trip mismatch:\ninput:  %q\nresult: %q", src, got)
		}
	})
}

// FuzzParseAny checks the grammar-less bump-through-EOF entry point
// splice call sites use to turn arbitrary replacement text into a
// tree: it must never panic and must always round-trip every byte,
// since it has no grammar to fail out of in the first place.
func FuzzParseAny(f *testing.F) {
	seeds := []string{
		"REPLACEMENT_TEXT",
		"a, b, c",
		")))(((",
		"",
		"   ",
		"'unterminated",
		"\x00\x01\x02",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseAny panicked on input %q: %v", src, r)
			}
		}()

		p := parser.New(src)
		res := p.ParseAny()
		tree := syntax.NewRoot(res.Root)
		if got := tree.Text(); got != src {
			t.Errorf("round-trip mismatch:\ninput:  %q\nresult: %q", src, got)
		}
	})
}

// FuzzParseBlock targets the statement-recovery loop specifically,
// since it is the production most exercised by garbage mid-token-stream
// input (an unclosed BEGIN, stray keywords, runaway nesting).
func FuzzParseBlock(f *testing.F) {
	seeds := []string{
		"BEGIN NULL; END;",
		"BEGIN BEGIN NULL; END; END;",
		"BEGIN IF a THEN NULL; END IF; END;",
		"BEGIN",
		"BEGIN END",
		"DECLARE x NUMBER BEGIN END;",
		"BEGIN ; ; ; END;",
		"BEGIN LOOP NULL; END LOOP; END;",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseBlock panicked on input %q: %v", src, r)
			}
		}()

		p := parser.New(src)
		res := p.ParseBlock()
		tree := syntax.NewRoot(res.Root)
		if got := tree.Text(); got != src {
			t.Errorf("round-trip mismatch:\ninput:  %q\nresult: %q", src, got)
		}
		for _, e := range res.Errors {
			if e.Start < 0 || e.End > len(src) || e.Start > e.End {
				t.Errorf("diagnostic range [%d,%d) out of bounds for input of length %d", e.Start, e.End, len(src))
			}
		}
	})
}
