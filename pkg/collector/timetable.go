package collector

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/pkg/journey"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/static"
	"github.com/simtrack/sit-collector/pkg/upstream"
)

// timetableTimeLayout is the upstream wall-time format, server-local.
const timetableTimeLayout = "2006-01-02 15:04:05"

// TimetableAPI is the slice of the upstream client the timetable collector uses.
type TimetableAPI interface {
	Timetable(ctx context.Context, serverCode string) ([]upstream.TimetableEntry, error)
}

// Schedules is the journey surface the timetable collector drives.
type Schedules interface {
	ApplyTimetable(ctx context.Context, run journey.TimetableRun) error
	SlotKey(runID string) (string, bool)
}

// ConsistSeeder carries predicted consists onto newly scheduled journeys,
// satisfied by services.VehicleService.
type ConsistSeeder interface {
	SeedPrediction(ctx context.Context, journeyID, resolveKey string) (*ent.VehicleSequence, error)
}

// TimetableCollector fetches the full per-server timetable and feeds resolved
// runs into the journey reconciler.
type TimetableCollector struct {
	api       TimetableAPI
	schedules Schedules
	consists  ConsistSeeder
	servers   ServerLister
	points    *static.PointProvider
	clock     *ServerClock
	logger    *slog.Logger
}

// NewTimetableCollector wires the timetable collector. consists may be nil,
// which disables consist carry-over.
func NewTimetableCollector(api TimetableAPI, schedules Schedules, consists ConsistSeeder, servers ServerLister, points *static.PointProvider, clock *ServerClock, logger *slog.Logger) *TimetableCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimetableCollector{
		api:       api,
		schedules: schedules,
		consists:  consists,
		servers:   servers,
		points:    points,
		clock:     clock,
		logger:    logger,
	}
}

// Tick processes every server sequentially.
func (c *TimetableCollector) Tick(ctx context.Context) {
	servers, err := c.servers.List(ctx)
	if err != nil {
		c.logger.Error("listing servers for timetable collection failed", slog.Any("error", err))
		return
	}
	for _, srv := range servers {
		c.collectServer(ctx, srv.ID, srv.Code, srv.UtcOffsetHours)
	}
}

func (c *TimetableCollector) collectServer(ctx context.Context, serverID, serverCode string, offsetHours int) {
	entries, err := c.api.Timetable(ctx, serverCode)
	if err != nil {
		if errors.Is(err, upstream.ErrNotModified) {
			return
		}
		logUpstreamError(c.logger, "timetable listing failed", err)
		return
	}

	zone := c.clock.Zone(serverCode, offsetHours)
	for _, entry := range entries {
		if entry.RunID == "" {
			continue
		}
		run := c.resolveRun(serverID, zone, entry)
		if len(run.Rows) == 0 {
			continue
		}
		if err := c.schedules.ApplyTimetable(ctx, run); err != nil {
			c.logger.Error("applying timetable failed",
				slog.String("run_id", entry.RunID),
				slog.String("server_code", serverCode),
				slog.Any("error", err))
			continue
		}
		c.seedConsist(ctx, entry.RunID)
	}
}

// seedConsist attaches the predicted consist of the run's scheduled slot,
// carried over from a previous sighting. A run whose consist was already
// observed, or whose slot was never seen, is a no-op.
func (c *TimetableCollector) seedConsist(ctx context.Context, runID string) {
	if c.consists == nil {
		return
	}
	key, ok := c.schedules.SlotKey(runID)
	if !ok {
		return
	}
	if _, err := c.consists.SeedPrediction(ctx, railid.JourneyID(runID), key); err != nil && !errors.Is(err, services.ErrNotFound) {
		c.logger.Warn("consist carry-over failed",
			slog.String("run_id", runID),
			slog.Any("error", err))
	}
}

func (c *TimetableCollector) resolveRun(serverID string, zone *time.Location, entry upstream.TimetableEntry) journey.TimetableRun {
	run := journey.TimetableRun{
		RunID:       entry.RunID,
		ServerID:    serverID,
		TrainNumber: entry.TrainNoLocal,
		TrainName:   entry.TrainName,
		Category:    category(entry.TrainType),
		Label:       entry.TrainType,
		ContinuesAs: entry.ContinuesAs,
		Rows:        make([]journey.TimetableRow, 0, len(entry.Rows)),
	}
	for _, raw := range entry.Rows {
		pt, ok := c.points.ByForeignID(raw.PointForeignID)
		if !ok {
			// Unknown reference point, drop the row. The rest of the
			// schedule still reconciles.
			c.logger.Debug("dropping timetable row with unknown point",
				slog.String("run_id", entry.RunID),
				slog.String("point_foreign_id", raw.PointForeignID))
			continue
		}
		row := journey.TimetableRow{
			PointID:          pt.ID,
			PointName:        pt.Name,
			InPlayableBorder: pt.Playable(),
			Arrival:          parseWallTime(raw.ArrivalTime, zone),
			Departure:        parseWallTime(raw.DepartureTime, zone),
			Stop:             stopType(raw.StopType),
			Platform:         platform(raw.Platform),
			Track:            positive(raw.Track),
			Line:             raw.Line,
			MaxSpeedKmh:      raw.MaxSpeedKmh,
		}
		run.Rows = append(run.Rows, row)
	}
	return run
}

func category(trainType string) string {
	cat, err := railid.ParseTrainType(trainType)
	if err != nil {
		return railid.CategoryUnknown.String()
	}
	return cat.String()
}

func parseWallTime(raw string, zone *time.Location) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation(timetableTimeLayout, raw, zone)
	if err != nil {
		return nil
	}
	return &t
}

func stopType(raw string) journey.StopType {
	switch raw {
	case "CommercialStop":
		return journey.StopPassenger
	case "NoncommercialStop":
		return journey.StopNonPassenger
	default:
		return journey.StopNone
	}
}

func platform(roman string) *int {
	if roman == "" {
		return nil
	}
	n := railid.ParseRoman(roman)
	if n <= 0 {
		return nil
	}
	return &n
}

func positive(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
