package offers

import "errors"

var ErrNotFound = errors.New("offer not found")
