package sales

import "errors"

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrNoAssignedOfficer = errors.New("store has no assigned field officer")
)
