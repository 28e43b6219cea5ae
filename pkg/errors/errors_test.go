package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	e := New(ErrCodeVersionGap, "history is gapped")
	assert.Equal(t, "[VER_002] history is gapped", e.Error())

	withDetail := e.WithDetail("project p-42")
	assert.Equal(t, "[VER_002] history is gapped: project p-42", withDetail.Error())
	// WithDetail copies; the original stays untouched.
	assert.Empty(t, e.Detail)
}

func TestWrapPreservesChainAndCode(t *testing.T) {
	cause := fmt.Errorf("disk full")
	e := Wrap(cause, ErrCodeVersionStoreFailed, "write version history")
	require.NotNil(t, e)
	assert.True(t, stderrors.Is(e, cause))
	assert.True(t, IsCode(e, ErrCodeVersionStoreFailed))

	// Wrapping with CodeUnknown keeps the inner AppError's classification.
	inner := New(ErrCodeConflict, "version number taken")
	outer := Wrap(inner, CodeUnknown, "save failed")
	assert.Equal(t, ErrCodeConflict, outer.Code)

	assert.Nil(t, Wrap(nil, ErrCodeInternal, "never happens"))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrCodeVersionGap, GetCode(New(ErrCodeVersionGap, "gap")))

	wrapped := fmt.Errorf("outer: %w", New(ErrCodeNotFound, "missing"))
	assert.Equal(t, ErrCodeNotFound, GetCode(wrapped))
}

func TestClassificationHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("gone")))
	assert.True(t, IsNotFound(New(ErrCodeVersionNotFound, "gone")))
	assert.False(t, IsNotFound(New(ErrCodeInternal, "boom")))

	assert.True(t, IsValidation(InvalidParam("bad")))
	assert.True(t, IsValidation(New(ErrCodeScenarioUnknown, "field")))
	assert.False(t, IsValidation(New(ErrCodeDatabaseError, "down")))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatusForCode(ErrCodeProjectIDInvalid))
	assert.Equal(t, http.StatusConflict, HTTPStatusForCode(ErrCodeConflict))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusForCode(ErrCodeInvariantViolation))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusForCode(ErrorCode("NOPE_999")))

	assert.True(t, IsClientError(ErrCodeScenarioUnknown))
	assert.True(t, IsServerError(ErrCodeVersionGap))
	assert.Equal(t, "VER", ModuleForCode(ErrCodeVersionGap))
}

func TestInvariantPanicsInDebugAndErrorsInRelease(t *testing.T) {
	assert.Panics(t, func() { Invariantf("score %d escaped", 120) })

	SetDebugMode(false)
	defer SetDebugMode(true)
	err := Invariantf("score %d escaped", 120)
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeInvariantViolation, err.Code)
	assert.Contains(t, err.Message, "120")
	assert.NotEmpty(t, err.Stack)
}
