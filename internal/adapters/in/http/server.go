package http

import (
	"log/slog"
	"time"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/application/usecases/queries"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/generated/servers"
)

// Clock tells the server what time it is in the service time zone.
type Clock interface {
	Now() time.Time
}

// LocalClock reads the system clock in Location.
type LocalClock struct {
	Location *time.Location
}

func (c LocalClock) Now() time.Time {
	return time.Now().In(c.Location)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateZone                 commands.CreateZoneCommandHandler
	RenameZone                 commands.RenameZoneCommandHandler
	DeleteZone                 commands.DeleteZoneCommandHandler
	CreateRequester            commands.CreateRequesterCommandHandler
	UpdateRequester            commands.UpdateRequesterCommandHandler
	DeleteRequester            commands.DeleteRequesterCommandHandler
	ReportIncompleteRequesters commands.ReportIncompleteRequestersCommandHandler
	CreateCourier              commands.CreateCourierCommandHandler
	UpdateCourier              commands.UpdateCourierCommandHandler
	DeleteCourier              commands.DeleteCourierCommandHandler
	CreateRequest              commands.CreateRequestCommandHandler
	UpdateRequest              commands.UpdateRequestCommandHandler
	AssignCourier              commands.AssignCourierCommandHandler
	CompleteRequest            commands.CompleteRequestCommandHandler
	CancelRequest              commands.CancelRequestCommandHandler

	// Query handlers
	ListZones                queries.ListZonesQueryHandler
	GetZoneStatistics        queries.GetZoneStatisticsQueryHandler
	SearchRequesters         queries.SearchRequestersQueryHandler
	GetRequester             queries.GetRequesterQueryHandler
	ListIncompleteRequesters queries.ListIncompleteRequestersQueryHandler
	GetAllCouriers           queries.GetAllCouriersQueryHandler
	GetCourierSchedule       queries.GetCourierScheduleQueryHandler
	GetDaySchedule           queries.GetDayScheduleQueryHandler
	GetDailySummary          queries.GetDailySummaryQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	clock    Clock
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, clock Clock, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		clock:    clock,
		logger:   logger.With("component", "http_server"),
	}
}

// today is the calendar day in the service time zone.
func (s *Server) today() kernel.Date {
	return kernel.DateOf(s.clock.Now())
}

// dateOrToday resolves an optional ?date= parameter.
func (s *Server) dateOrToday(date *servers.Date) kernel.Date {
	if date == nil {
		return s.today()
	}
	return kernel.DateOf(date.Time)
}
