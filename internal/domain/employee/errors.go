package employee

import "errors"

var ErrDirectoryEmpty = errors.New("employee directory is empty")
