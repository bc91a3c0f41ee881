package commands

import (
	"errors"

	"flowershop/internal/pkg/errs"
	"flowershop/internal/pkg/guard"
)

var ErrPurgeDeletedOrdersCommandIsNotConstructed = errors.New(
	"PurgeDeletedOrdersCommand must be created via NewPurgeDeletedOrdersCommand constructor",
)

// maxRetentionDays bounds the purge window so a misconfigured retention
// cannot silently keep deleted rows forever.
const maxRetentionDays = 3650

// PurgeDeletedOrdersCommand represents a request to permanently remove
// orders that were soft-deleted more than retentionDays ago.
type PurgeDeletedOrdersCommand struct {
	retentionDays int

	guard guard.ConstructorGuard
}

// NewPurgeDeletedOrdersCommand creates a command to purge old soft-deleted
// orders. Retention must be between 1 and 3650 days.
func NewPurgeDeletedOrdersCommand(retentionDays int) (PurgeDeletedOrdersCommand, error) {
	if retentionDays < 1 || retentionDays > maxRetentionDays {
		return PurgeDeletedOrdersCommand{}, errs.NewValueIsOutOfRangeError(
			"retentionDays", retentionDays, 1, maxRetentionDays,
		)
	}

	return PurgeDeletedOrdersCommand{
		retentionDays: retentionDays,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeDeletedOrdersCommandIsNotConstructed if validation fails.
func (c PurgeDeletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeletedOrdersCommandIsNotConstructed)
}

// RetentionDays returns how many days soft-deleted orders are kept before
// being purged.
func (c PurgeDeletedOrdersCommand) RetentionDays() int {
	return c.retentionDays
}
