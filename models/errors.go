package models

import "errors"

var ErrUnknownAvailabilityTag = errors.New("unknown availability tag")
