package parser_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cybertec-plsql/plsqlcst/parser"
)

var benchUnits = map[string]struct {
	src string
	fn  func(*parser.Parser) *parser.Result
}{
	"procedure": {
		`CREATE OR REPLACE PROCEDURE transfer_funds(p_from NUMBER, p_to NUMBER, p_amount NUMBER) IS
			v_balance NUMBER;
		BEGIN
			SELECT balance INTO v_balance FROM accounts WHERE id = p_from;
			IF v_balance < p_amount THEN
				RAISE_APPLICATION_ERROR(-20001, 'insufficient funds');
			END IF;
			UPDATE accounts SET balance = balance - p_amount WHERE id = p_from;
			UPDATE accounts SET balance = balance + p_amount WHERE id = p_to;
			COMMIT;
		END transfer_funds;`,
		(*parser.Parser).ParseProcedure,
	},
	"function": {
		`CREATE OR REPLACE FUNCTION total_for(p_id NUMBER) RETURN NUMBER IS
			v_total NUMBER := 0;
		BEGIN
			SELECT SUM(amount) INTO v_total FROM orders WHERE customer_id = p_id;
			RETURN NVL(v_total, 0);
		END total_for;`,
		(*parser.Parser).ParseFunction,
	},
	"select": {
		"SELECT a.id, a.name, b.total FROM accounts a JOIN orders b ON a.id = b.account_id WHERE a.status = 'active' AND b.total > 100 ORDER BY b.total DESC",
		(*parser.Parser).ParseQuery,
	},
	"block": {
		`DECLARE
			CURSOR c IS SELECT id FROM t;
			v_id t.id%TYPE;
		BEGIN
			OPEN c;
			LOOP
				FETCH c INTO v_id;
				EXIT WHEN c%NOTFOUND;
			END LOOP;
			CLOSE c;
		END;`,
		(*parser.Parser).ParseBlock,
	},
	"malformed": {
		"BEGIN ABC x y z END;",
		(*parser.Parser).ParseBlock,
	},
}

func BenchmarkParseByUnit(b *testing.B) {
	for name, unit := range benchUnits {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				p := parser.New(unit.src)
				_ = unit.fn(p)
			}
		})
	}
}

// BenchmarkParseWithPool measures the pooled-parser path the teacher's
// own sync.Pool benchmarks exercise, comparing allocation cost against a
// fresh Parser per call.
func BenchmarkParseWithPool(b *testing.B) {
	src := benchUnits["select"].src
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := parser.Get(src)
		p.ParseQuery()
		parser.Put(p)
	}
}

func BenchmarkParseWithoutPool(b *testing.B) {
	src := benchUnits["select"].src
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := parser.New(src)
		p.ParseQuery()
	}
}

// BenchmarkParseLargeColumnList scales the SELECT list's width to see
// how the parser's per-column allocation cost grows.
func BenchmarkParseLargeColumnList(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("columns_%d", size), func(b *testing.B) {
			src := generateColumnList(size)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				p := parser.New(src)
				_ = p.ParseQuery()
			}
		})
	}
}

// BenchmarkParseDeepExpression scales the left-recursive arithmetic
// chain's depth to see how the Pratt loop's checkpoint wrapping costs
// grow with nesting.
func BenchmarkParseDeepExpression(b *testing.B) {
	for _, depth := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("depth_%d", depth), func(b *testing.B) {
			src := generateArithmeticChain(depth)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				p := parser.New(src)
				_ = p.ParseQuery()
			}
		})
	}
}

func generateColumnList(n int) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("col")
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteString(" FROM t")
	return b.String()
}

func generateArithmeticChain(n int) string {
	var b strings.Builder
	b.WriteString("SELECT 1")
	for i := 0; i < n; i++ {
		b.WriteString(" + ")
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteString(" FROM dual")
	return b.String()
}
