package attendance

import "errors"

var ErrInvalidRange = errors.New("end date before start date")
