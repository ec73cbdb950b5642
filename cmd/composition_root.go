package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpin "vetpickup/internal/adapters/in/http"
	"vetpickup/internal/adapters/out/inmemory"
	"vetpickup/internal/adapters/out/postgres"
	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/application/usecases/queries"
	"vetpickup/internal/core/ports"
	"vetpickup/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	location   *time.Location
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
}

// NewCompositionRoot opens the store selected by config.StoreDriver. The
// postgres store is migrated on start.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	location, err := config.Location()
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:   config,
		logger:   logger,
		location: location,
	}

	switch config.StoreDriver {
	case StoreDriverMemory:
		root.uowFactory = inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	case StoreDriverPostgres:
		db, err := postgres.Open(config.Postgres().DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect database: %w", err)
		}
		if err = postgres.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		root.gormDB = db
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", config.StoreDriver)
	}

	return root, nil
}

// Close releases the database pool, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) Clock() httpin.Clock {
	return httpin.LocalClock{Location: c.location}
}

func (c *CompositionRoot) zoneUoWFactory() commands.ZoneUoWFactory {
	return FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) requesterUoWFactory() commands.RequesterUoWFactory {
	return FuncRequesterUoWFactory(func() commands.RequesterUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// readers hands out repositories outside of any transaction for queries.
func (c *CompositionRoot) readers() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	return commands.NewCreateZoneCommandHandler(c.zoneUoWFactory())
}

func (c *CompositionRoot) CreateRenameZoneCommandHandler() commands.RenameZoneCommandHandler {
	return commands.NewRenameZoneCommandHandler(c.zoneUoWFactory())
}

func (c *CompositionRoot) CreateDeleteZoneCommandHandler() commands.DeleteZoneCommandHandler {
	return commands.NewDeleteZoneCommandHandler(c.zoneUoWFactory())
}

func (c *CompositionRoot) CreateCreateRequesterCommandHandler() commands.CreateRequesterCommandHandler {
	return commands.NewCreateRequesterCommandHandler(c.requesterUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRequesterCommandHandler() commands.UpdateRequesterCommandHandler {
	return commands.NewUpdateRequesterCommandHandler(c.requesterUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRequesterCommandHandler() commands.DeleteRequesterCommandHandler {
	return commands.NewDeleteRequesterCommandHandler(c.requesterUoWFactory())
}

func (c *CompositionRoot) CreateReportIncompleteRequestersCommandHandler() commands.ReportIncompleteRequestersCommandHandler {
	return commands.NewReportIncompleteRequestersCommandHandler(c.requesterUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCourierCommandHandler() commands.UpdateCourierCommandHandler {
	return commands.NewUpdateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	return commands.NewDeleteCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	return commands.NewCreateRequestCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRequestCommandHandler() commands.UpdateRequestCommandHandler {
	return commands.NewUpdateRequestCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCompleteRequestCommandHandler() commands.CompleteRequestCommandHandler {
	return commands.NewCompleteRequestCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelRequestCommandHandler() commands.CancelRequestCommandHandler {
	return commands.NewCancelRequestCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateListZonesQueryHandler() queries.ListZonesQueryHandler {
	return queries.NewListZonesQueryHandler(c.readers().ZoneRepository())
}

func (c *CompositionRoot) CreateGetZoneStatisticsQueryHandler() queries.GetZoneStatisticsQueryHandler {
	r := c.readers()
	return queries.NewGetZoneStatisticsQueryHandler(
		r.ZoneRepository(), r.RequesterRepository(), r.CourierRepository(), r.RequestRepository(),
	)
}

func (c *CompositionRoot) CreateSearchRequestersQueryHandler() queries.SearchRequestersQueryHandler {
	return queries.NewSearchRequestersQueryHandler(c.readers().RequesterRepository())
}

func (c *CompositionRoot) CreateGetRequesterQueryHandler() queries.GetRequesterQueryHandler {
	return queries.NewGetRequesterQueryHandler(c.readers().RequesterRepository())
}

func (c *CompositionRoot) CreateListIncompleteRequestersQueryHandler() queries.ListIncompleteRequestersQueryHandler {
	return queries.NewListIncompleteRequestersQueryHandler(c.readers().RequesterRepository())
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.readers().CourierRepository())
}

func (c *CompositionRoot) CreateGetCourierScheduleQueryHandler() queries.GetCourierScheduleQueryHandler {
	r := c.readers()
	return queries.NewGetCourierScheduleQueryHandler(r.RequestRepository(), r.CourierRepository())
}

func (c *CompositionRoot) CreateGetDayScheduleQueryHandler() queries.GetDayScheduleQueryHandler {
	r := c.readers()
	return queries.NewGetDayScheduleQueryHandler(r.RequestRepository(), r.CourierRepository())
}

func (c *CompositionRoot) CreateGetDailySummaryQueryHandler() queries.GetDailySummaryQueryHandler {
	r := c.readers()
	return queries.NewGetDailySummaryQueryHandler(r.RequestRepository(), r.RequesterRepository(), r.CourierRepository())
}

func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateZone:                 c.CreateCreateZoneCommandHandler(),
		RenameZone:                 c.CreateRenameZoneCommandHandler(),
		DeleteZone:                 c.CreateDeleteZoneCommandHandler(),
		CreateRequester:            c.CreateCreateRequesterCommandHandler(),
		UpdateRequester:            c.CreateUpdateRequesterCommandHandler(),
		DeleteRequester:            c.CreateDeleteRequesterCommandHandler(),
		ReportIncompleteRequesters: c.CreateReportIncompleteRequestersCommandHandler(),
		CreateCourier:              c.CreateCreateCourierCommandHandler(),
		UpdateCourier:              c.CreateUpdateCourierCommandHandler(),
		DeleteCourier:              c.CreateDeleteCourierCommandHandler(),
		CreateRequest:              c.CreateCreateRequestCommandHandler(),
		UpdateRequest:              c.CreateUpdateRequestCommandHandler(),
		AssignCourier:              c.CreateAssignCourierCommandHandler(),
		CompleteRequest:            c.CreateCompleteRequestCommandHandler(),
		CancelRequest:              c.CreateCancelRequestCommandHandler(),

		ListZones:                c.CreateListZonesQueryHandler(),
		GetZoneStatistics:        c.CreateGetZoneStatisticsQueryHandler(),
		SearchRequesters:         c.CreateSearchRequestersQueryHandler(),
		GetRequester:             c.CreateGetRequesterQueryHandler(),
		ListIncompleteRequesters: c.CreateListIncompleteRequestersQueryHandler(),
		GetAllCouriers:           c.CreateGetAllCouriersQueryHandler(),
		GetCourierSchedule:       c.CreateGetCourierScheduleQueryHandler(),
		GetDaySchedule:           c.CreateGetDayScheduleQueryHandler(),
		GetDailySummary:          c.CreateGetDailySummaryQueryHandler(),
	}
}

// NewRouter wires the HTTP API. clock drives "today" and the booking window.
func (c *CompositionRoot) NewRouter(clock httpin.Clock) (*echo.Echo, error) {
	start, end, err := c.config.BookingWindow()
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(c.HTTPHandlers(), clock, c.logger)
	return httpin.NewRouter(server, httpin.BookingWindowConfig{
		Start: start,
		End:   end,
		Clock: clock,
	}, c.logger)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.Schedules{
			PendingAssignment: c.config.PendingAssignmentSchedule,
			IncompleteReport:  c.config.IncompleteReportSchedule,
		},
		c.location,
		c.CreateGetDayScheduleQueryHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateReportIncompleteRequestersCommandHandler(),
		c.logger,
	)
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncRequesterUoWFactory func() commands.RequesterUoW

func (f FuncRequesterUoWFactory) Create() commands.RequesterUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
