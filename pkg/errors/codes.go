package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeMessageQueueError  ErrorCode = "COMMON_014"
	ErrCodeInvariantViolation ErrorCode = "COMMON_015"
	ErrCodeNotImplemented     ErrorCode = "COMMON_016"
)

// Concept module error codes
const (
	ErrCodeConceptInvalid       ErrorCode = "CPT_001"
	ErrCodeConceptGenreUnknown  ErrorCode = "CPT_002"
	ErrCodeConceptFormatUnknown ErrorCode = "CPT_003"
)

// Analysis module error codes
const (
	ErrCodeAnalysisFailed        ErrorCode = "ANL_001"
	ErrCodeScoreOutOfRange       ErrorCode = "ANL_002"
	ErrCodeVerdictUnmapped       ErrorCode = "ANL_003"
	ErrCodeRuleTableInvalid      ErrorCode = "ANL_004"
	ErrCodeBreakdownInconsistent ErrorCode = "ANL_005"
)

// Matching module error codes
const (
	ErrCodeMatchingFailed    ErrorCode = "MAT_001"
	ErrCodeCatalogEmpty      ErrorCode = "MAT_002"
	ErrCodeMatchListUnsorted ErrorCode = "MAT_003"
)

// Catalog module error codes
const (
	ErrCodeCatalogUnavailable ErrorCode = "CAT_001"
	ErrCodeCatalogGenreMiss   ErrorCode = "CAT_002"
)

// Version-history module error codes
const (
	ErrCodeVersionNotFound      ErrorCode = "VER_001"
	ErrCodeVersionGap           ErrorCode = "VER_002"
	ErrCodeVersionStoreFailed   ErrorCode = "VER_003"
	ErrCodeVersionLockFailed    ErrorCode = "VER_004"
	ErrCodeProjectIDInvalid     ErrorCode = "VER_005"
	ErrCodeVersionSchemaInvalid ErrorCode = "VER_006"
)

// Development-service module error codes
const (
	ErrCodeComparisonFailed ErrorCode = "DEV_001"
	ErrCodeScenarioUnknown  ErrorCode = "DEV_002"
	ErrCodeRewriteFailed    ErrorCode = "DEV_003"
)

// Aliases kept short for the most frequently used codes.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeMessageQueueError:  http.StatusInternalServerError,
	ErrCodeInvariantViolation: http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeConceptInvalid:       http.StatusBadRequest,
	ErrCodeConceptGenreUnknown:  http.StatusBadRequest,
	ErrCodeConceptFormatUnknown: http.StatusBadRequest,

	ErrCodeAnalysisFailed:        http.StatusInternalServerError,
	ErrCodeScoreOutOfRange:       http.StatusInternalServerError,
	ErrCodeVerdictUnmapped:       http.StatusInternalServerError,
	ErrCodeRuleTableInvalid:      http.StatusInternalServerError,
	ErrCodeBreakdownInconsistent: http.StatusInternalServerError,

	ErrCodeMatchingFailed:    http.StatusInternalServerError,
	ErrCodeCatalogEmpty:      http.StatusInternalServerError,
	ErrCodeMatchListUnsorted: http.StatusInternalServerError,

	ErrCodeCatalogUnavailable: http.StatusServiceUnavailable,
	ErrCodeCatalogGenreMiss:   http.StatusNotFound,

	ErrCodeVersionNotFound:      http.StatusNotFound,
	ErrCodeVersionGap:           http.StatusInternalServerError,
	ErrCodeVersionStoreFailed:   http.StatusInternalServerError,
	ErrCodeVersionLockFailed:    http.StatusConflict,
	ErrCodeProjectIDInvalid:     http.StatusBadRequest,
	ErrCodeVersionSchemaInvalid: http.StatusBadRequest,

	ErrCodeComparisonFailed: http.StatusInternalServerError,
	ErrCodeScenarioUnknown:  http.StatusBadRequest,
	ErrCodeRewriteFailed:    http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeMessageQueueError:  "message queue error",
	ErrCodeInvariantViolation: "internal invariant violated",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeConceptInvalid:       "invalid concept",
	ErrCodeConceptGenreUnknown:  "unknown genre",
	ErrCodeConceptFormatUnknown: "unknown format",

	ErrCodeAnalysisFailed:        "concept analysis failed",
	ErrCodeScoreOutOfRange:       "final score escaped its clamp range",
	ErrCodeVerdictUnmapped:       "no verdict tier covers the score",
	ErrCodeRuleTableInvalid:      "scoring rule table is invalid",
	ErrCodeBreakdownInconsistent: "logline breakdown total does not match sub-scores",

	ErrCodeMatchingFailed:    "catalog matching failed",
	ErrCodeCatalogEmpty:      "catalog returned no entries",
	ErrCodeMatchListUnsorted: "match list ordering violated",

	ErrCodeCatalogUnavailable: "catalog provider unavailable",
	ErrCodeCatalogGenreMiss:   "genre not present in catalog",

	ErrCodeVersionNotFound:      "concept version not found",
	ErrCodeVersionGap:           "version numbers are not gapless and monotonic",
	ErrCodeVersionStoreFailed:   "version store operation failed",
	ErrCodeVersionLockFailed:    "failed to acquire project lock",
	ErrCodeProjectIDInvalid:     "invalid project id",
	ErrCodeVersionSchemaInvalid: "concept version failed schema round-trip",

	ErrCodeComparisonFailed: "A/B comparison failed",
	ErrCodeScenarioUnknown:  "unknown what-if scenario field",
	ErrCodeRewriteFailed:    "logline rewrite failed",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
