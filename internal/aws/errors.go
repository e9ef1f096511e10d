package aws

import (
	"errors"

	"github.com/aws/smithy-go"
)

var throttleCodes = map[string]bool{
	"ProvisionedThroughputExceededException": true,
	"ThrottlingException":                    true,
	"RequestLimitExceeded":                   true,
	"TransactionConflictException":           true,
}

// ErrorCode returns the AWS API error code wrapped in err, or "".
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsThrottled reports whether err is a capacity or contention error the
// caller may retry later.
func IsThrottled(err error) bool {
	return throttleCodes[ErrorCode(err)]
}
