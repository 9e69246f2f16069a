package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dasu-rpg/leveling-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "actor not found",
			expected: "NOT_FOUND: actor not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid level",
			expected: "INVALID_ARGUMENT: invalid level",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestConstructors() {
	s.Run("NotFound", func() {
		err := errors.NotFound("actor not found")
		s.Assert().Equal(errors.CodeNotFound, err.Code)
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("NotFoundf", func() {
		err := errors.NotFoundf("actor %s not found", "actor_123")
		s.Assert().Equal(errors.CodeNotFound, err.Code)
		s.Assert().Equal("actor actor_123 not found", err.Message)
	})

	s.Run("InvalidArgument", func() {
		err := errors.InvalidArgument("level is required")
		s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("FailedPrecondition", func() {
		err := errors.FailedPrecondition("not enough merit to level up")
		s.Assert().Equal(errors.CodeFailedPrecondition, err.Code)
		s.Assert().True(errors.IsFailedPrecondition(err))
	})

	s.Run("Internal", func() {
		err := errors.Internal("storage write failed")
		s.Assert().Equal(errors.CodeInternal, err.Code)
		s.Assert().True(errors.IsInternal(err))
	})
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("actor not found").
		WithMeta("actor_id", "actor_123").
		WithMeta("level", 5)

	s.Assert().Equal("actor_123", err.Meta["actor_id"])
	s.Assert().Equal(5, err.Meta["level"])

	meta := errors.GetMeta(err)
	s.Assert().Equal("actor_123", meta["actor_id"])
}

func (s *ErrorsTestSuite) TestWithMetaMap() {
	err := errors.Internal("grant failed").WithMetaMap(map[string]interface{}{
		"actor_id":  "actor_123",
		"reference": "catalog.abilityX",
	})

	s.Assert().Len(err.Meta, 2)
	s.Assert().Equal("catalog.abilityX", err.Meta["reference"])
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("wraps plain error as internal", func() {
		base := fmt.Errorf("connection refused")
		err := errors.Wrap(base, "failed to update actor")

		s.Assert().Equal(errors.CodeInternal, err.Code)
		s.Assert().Equal("failed to update actor", err.Message)
		s.Assert().ErrorIs(err, base)
	})

	s.Run("preserves code of wrapped Error", func() {
		base := errors.NotFound("actor not found")
		err := errors.Wrap(base, "failed to load plan")

		s.Assert().Equal(errors.CodeNotFound, err.Code)
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("nil error yields nil", func() {
		s.Assert().Nil(errors.Wrap(nil, "no-op"))
	})
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("key miss")
	err := errors.WrapWithCode(base, errors.CodeNotFound, "catalog reference not found")

	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().ErrorIs(err, base)
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("missing")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("actor not found", errors.GetMessage(errors.NotFound("actor not found")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestIs() {
	notFound := errors.NotFound("first")
	otherNotFound := errors.NotFound("second")
	invalid := errors.InvalidArgument("bad input")

	s.Assert().True(errors.Is(notFound, otherNotFound))
	s.Assert().False(errors.Is(notFound, invalid))
}
