package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
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
			message:  "weapon not found",
			expected: "NOT_FOUND: weapon not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown talent",
			expected: "INVALID_ARGUMENT: unknown talent",
		},
		{
			name:     "infeasible error",
			code:     errors.CodeInfeasible,
			message:  "no satisfying assignment",
			expected: "INFEASIBLE: no satisfying assignment",
		},
		{
			name:     "data integrity error",
			code:     errors.CodeDataIntegrity,
			message:  "catalog references unknown talent",
			expected: "DATA_INTEGRITY: catalog references unknown talent",
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

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("weapon not found").
		WithMeta("weapon", "Hope Blade").
		WithMeta("catalog_size", 42)

	s.Assert().Equal("Hope Blade", err.Meta["weapon"])
	s.Assert().Equal(42, err.Meta["catalog_size"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load catalog")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load catalog", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("no catalog stored")
	wrapped := errors.Wrap(base, "failed to load catalog")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("glpk: integer optimizer failed")
	wrapped := errors.WrapWithCode(base, errors.CodeInternal, "solver backend failure")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeInfeasible, errors.GetCode(errors.Infeasible("no build")))
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(errors.DeadlineExceeded("budget spent")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("no build", errors.GetMessage(errors.Infeasible("no build")))
}

func (s *ErrorsTestSuite) TestCodeCheckers() {
	s.Assert().True(errors.IsInfeasible(errors.Infeasiblef("no build for %q", "Hope Blade")))
	s.Assert().True(errors.IsDataIntegrity(errors.DataIntegrity("bad catalog")))
	s.Assert().True(errors.IsDeadlineExceeded(errors.DeadlineExceeded("budget spent")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad wish")))
	s.Assert().False(errors.IsInfeasible(errors.Internal("boom")))
}
