package salary

import "errors"

var ErrMissingReference = errors.New("no salary reference for employee")
