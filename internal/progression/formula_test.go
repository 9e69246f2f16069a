package progression_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dasu-rpg/leveling-api/internal/progression"
)

type FormulaTestSuite struct {
	suite.Suite
}

func TestFormulaSuite(t *testing.T) {
	suite.Run(t, new(FormulaTestSuite))
}

func (s *FormulaTestSuite) TestArithmetic() {
	testCases := []struct {
		name     string
		formula  string
		level    int
		expected int
	}{
		{name: "literal", formula: "2", level: 10, expected: 2},
		{name: "level substitution", formula: "level", level: 7, expected: 7},
		{name: "division truncates", formula: "level/2", level: 7, expected: 3},
		{name: "precedence", formula: "1+level*2", level: 4, expected: 9},
		{name: "parentheses", formula: "(level+1)/2", level: 7, expected: 4},
		{name: "whitespace", formula: " level / 2 + 1 ", level: 10, expected: 6},
		{name: "nested parens", formula: "((level))", level: 3, expected: 3},
		{name: "subtraction chain", formula: "10-2-3", level: 1, expected: 5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			v, err := progression.Eval(tc.formula, tc.level)
			s.NoError(err)
			s.Equal(tc.expected, v)
		})
	}
}

func (s *FormulaTestSuite) TestParityForms() {
	testCases := []struct {
		formula  string
		level    int
		expected int
	}{
		{formula: "odd:1-30", level: 3, expected: 1},
		{formula: "odd:1-30", level: 4, expected: 0},
		{formula: "odd:5-30", level: 3, expected: 0},
		{formula: "even:2-20", level: 10, expected: 1},
		{formula: "even:2-20", level: 11, expected: 0},
		{formula: "even:2-20", level: 22, expected: 0},
	}

	for _, tc := range testCases {
		v, err := progression.Eval(tc.formula, tc.level)
		s.NoError(err, "%s at %d", tc.formula, tc.level)
		s.Equal(tc.expected, v, "%s at %d", tc.formula, tc.level)
	}
}

func (s *FormulaTestSuite) TestInvalidFormulas() {
	invalid := []string{
		"",
		"level^2",
		"two+2",
		"level + ",
		"(level",
		"1/0",
		"odd:x-30",
		"even:2",
		"lvl",
	}

	for _, formula := range invalid {
		_, err := progression.Eval(formula, 5)
		s.Error(err, "formula %q", formula)
	}
}
