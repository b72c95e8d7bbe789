package catalog

import "errors"

var ErrNotFound = errors.New("equipment not found")
