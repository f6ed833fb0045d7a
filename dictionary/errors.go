package dictionary

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a required keyword that is missing or does not parse as its declared type
type ConfigurationError struct {
	Dict   string // name of the dictionary being read, may be empty
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if len(e.Dict) != 0 {
		return fmt.Sprintf("configuration error in dictionary %q, keyword %q: %s", e.Dict, e.Key, e.Reason)
	}
	return fmt.Sprintf("configuration error, keyword %q: %s", e.Key, e.Reason)
}

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// MissingKey returns the keyword named by a ConfigurationError anywhere in the chain
func MissingKey(err error) (key string, ok bool) {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce.Key, true
	}
	return
}
