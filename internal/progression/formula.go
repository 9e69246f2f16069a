package progression

import (
	"fmt"
	"strconv"
	"strings"
)

// Eval evaluates a class point-gain formula at a level.
//
// Two forms are supported. The parity forms odd:<start>-<end> and
// even:<start>-<end> yield 1 when the level is inside the range and has
// the matching parity, else 0. Everything else is treated as an integer
// arithmetic expression over +, -, *, / and parentheses, with the token
// "level" substituted by the numeric level. Any other character makes
// the formula invalid; callers fall back to their default.
func Eval(formula string, level int) (int, error) {
	f := strings.TrimSpace(formula)
	if f == "" {
		return 0, fmt.Errorf("empty formula")
	}

	if rest, ok := strings.CutPrefix(f, "odd:"); ok {
		return evalParity(rest, level, 1)
	}
	if rest, ok := strings.CutPrefix(f, "even:"); ok {
		return evalParity(rest, level, 0)
	}

	p := &parser{input: f, level: level}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("unexpected character %q at position %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

// evalParity handles the odd:/even: range forms. parity is level%2's
// required value.
func evalParity(rangeSpec string, level, parity int) (int, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(rangeSpec), "-")
	if !ok {
		return 0, fmt.Errorf("parity range must be <start>-<end>, got %q", rangeSpec)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return 0, fmt.Errorf("invalid range start %q", start)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return 0, fmt.Errorf("invalid range end %q", end)
	}
	if level >= lo && level <= hi && level%2 == parity {
		return 1, nil
	}
	return 0, nil
}

// parser is a recursive-descent integer expression parser.
// Grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = number | "level" | "(" expr ")" | "-" factor
type parser struct {
	input string
	pos   int
	level int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) parseExpr() (int, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return v, nil
		}
		switch p.input[p.pos] {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (int, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return v, nil
		}
		switch p.input[p.pos] {
		case '*':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseFactor() (int, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("unexpected end of formula")
	}

	c := p.input[p.pos]
	switch {
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	case c == '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case c >= '0' && c <= '9':
		start := p.pos
		for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
			p.pos++
		}
		return strconv.Atoi(p.input[start:p.pos])
	case strings.HasPrefix(p.input[p.pos:], "level"):
		p.pos += len("level")
		return p.level, nil
	default:
		return 0, fmt.Errorf("unexpected character %q at position %d", c, p.pos)
	}
}
