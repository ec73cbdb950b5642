package commands

import (
	"errors"

	"vetpickup/internal/pkg/guard"
)

var ErrReportIncompleteRequestersCommandIsNotConstructed = errors.New(
	"ReportIncompleteRequestersCommand must be created via NewReportIncompleteRequestersCommand constructor",
)

// ReportIncompleteRequestersCommand asks for a notice about every requester
// whose email or address is flagged as unknown.
type ReportIncompleteRequestersCommand struct {
	guard guard.ConstructorGuard
}

func NewReportIncompleteRequestersCommand() ReportIncompleteRequestersCommand {
	return ReportIncompleteRequestersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ReportIncompleteRequestersCommand) Validate() error {
	return c.guard.Validate(ErrReportIncompleteRequestersCommandIsNotConstructed)
}
