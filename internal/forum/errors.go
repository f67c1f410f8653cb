package forum

import (
	"errors"
	"fmt"

	"forumcfg/internal/models"
)

var ErrUnknownAccount = errors.New("account missing from identity registry")

// LookupError means an entity references an account the registry scan never
// saw. It is a defect in the scan, not bad input.
type LookupError struct {
	Entity  string
	ID      uint64
	Role    string
	Account models.AccountID
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %d: %s %s: %s", e.Entity, e.ID, e.Role, e.Account, ErrUnknownAccount)
}

func (e *LookupError) Unwrap() error {
	return ErrUnknownAccount
}
