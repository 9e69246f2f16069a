package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dasu-rpg/leveling-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("actorID", "is required")
	ve.AddFieldError("reference", "is invalid")
	ve.AddFieldErrorf("level", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "actorID: is required")
	s.Assert().Contains(ve.Error(), "reference: is invalid")
	s.Assert().Contains(ve.Error(), "level: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 30).
		RequiredField("reference").
		InvalidField("category", "not a valid category")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMinLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMinLength("reference", "dasu", 8, vb)
	errors.ValidateMinLength("actorID", "actor_1", 3, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["reference"][0], "must be at least 8 characters")
	s.Assert().NotContains(validationErrors, "actorID")
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "this is a far too long actor name", 20, vb)
	errors.ValidateMaxLength("slot", "first", 6, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["name"][0], "must be no more than 20 characters")
	s.Assert().NotContains(validationErrors, "slot")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 35, 1, 30, vb)
	errors.ValidateRange("merit", 5, 0, 100, vb)
	errors.ValidateRange("schemaRank", 0, 1, 3, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["level"][0], "must be between 1 and 30")
	s.Assert().Contains(validationErrors["schemaRank"][0], "must be between 1 and 3")
	s.Assert().NotContains(validationErrors, "merit")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedCategories := []string{"ability", "schema", "strengthOfWill"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("category", "aptitude", allowedCategories, vb)
	errors.ValidateEnum("itemType", "ability", allowedCategories, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["category"][0], "must be one of: ability, schema, strengthOfWill")
	s.Assert().NotContains(validationErrors, "itemType")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	// Simulate validating a slot assignment request
	type AssignInput struct {
		ActorID   string
		Category  string
		Level     int
		Reference string
	}

	input := AssignInput{
		ActorID:   "",
		Category:  "aptitude",
		Level:     35,
		Reference: "dasu.abilities.fireball",
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("actorID", input.ActorID, vb)

	allowedCategories := []string{"ability", "schema", "strengthOfWill"}
	errors.ValidateEnum("category", input.Category, allowedCategories, vb)

	errors.ValidateRange("level", input.Level, 1, 30, vb)

	errors.ValidateRequired("reference", input.Reference, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "actorID")
	s.Assert().Contains(validationErrors, "category")
	s.Assert().Contains(validationErrors, "level")
	s.Assert().NotContains(validationErrors, "reference")
}
