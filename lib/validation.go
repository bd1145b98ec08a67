package lib

import (
	stdErr "errors"

	"github.com/friendsofgo/errors"
)

// JoinMessages turns a list of validation messages into a single error.
// returns nil for an empty list
func JoinMessages(messages []string) error {
	if len(messages) == 0 {
		return nil
	}

	validationErrors := make([]error, len(messages))
	for i, message := range messages {
		validationErrors[i] = errors.New(message)
	}

	return stdErr.Join(validationErrors...)
}
