package commands

import (
	"context"
	"log/slog"
	"strings"
)

// ReportIncompleteRequestersCommandHandler emits one warning per requester
// with unknown contact data so staff can chase the missing fields. It never
// changes stored data.
type ReportIncompleteRequestersCommandHandler struct {
	uowFactory RequesterUoWFactory
	logger     *slog.Logger
}

func NewReportIncompleteRequestersCommandHandler(
	uowFactory RequesterUoWFactory,
	logger *slog.Logger,
) ReportIncompleteRequestersCommandHandler {
	return ReportIncompleteRequestersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "incomplete_requesters_report"),
	}
}

// Handle returns the number of requesters reported.
func (h ReportIncompleteRequestersCommandHandler) Handle(
	ctx context.Context,
	cmd ReportIncompleteRequestersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	incomplete, err := uow.RequesterRepository().ListWithUnknownData(ctx)
	if err != nil {
		return 0, err
	}

	for _, r := range incomplete {
		h.logger.WarnContext(ctx, "Requester has missing contact data",
			"requester_id", r.ID().String(),
			"requester", r.Name(),
			"missing", strings.Join(r.MissingData(), ", "),
		)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(incomplete), nil
}
