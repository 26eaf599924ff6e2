package collector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/static"
	"github.com/simtrack/sit-collector/pkg/upstream"
)

// SequenceStore is the persistence surface, satisfied by services.VehicleService.
type SequenceStore interface {
	Upsert(ctx context.Context, rec services.SequenceRecord) (*ent.VehicleSequence, error)
}

// SlotSource resolves the scheduled-slot key of a run, satisfied by the
// journey reconciler. The key carries the origin departure time, so the
// same train number on distinct slots never collides.
type SlotSource interface {
	SlotKey(runID string) (string, bool)
}

// VehicleCollector resolves the consists of live runs. It reads the train
// listing from the train collector instead of refetching it, so the shared
// conditional-request state stays intact.
type VehicleCollector struct {
	source   TrainSource
	slots    SlotSource
	store    SequenceStore
	servers  ServerLister
	railcars *static.RailcarProvider
	logger   *slog.Logger
}

// NewVehicleCollector wires the vehicle collector.
func NewVehicleCollector(source TrainSource, slots SlotSource, store SequenceStore, servers ServerLister, railcars *static.RailcarProvider, logger *slog.Logger) *VehicleCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return &VehicleCollector{
		source:   source,
		slots:    slots,
		store:    store,
		servers:  servers,
		railcars: railcars,
		logger:   logger,
	}
}

// Tick processes every server sequentially.
func (c *VehicleCollector) Tick(ctx context.Context) {
	servers, err := c.servers.List(ctx)
	if err != nil {
		c.logger.Error("listing servers for vehicle collection failed", slog.Any("error", err))
		return
	}
	for _, srv := range servers {
		for _, entry := range c.source.Last(srv.Code) {
			if entry.RunID == "" || len(entry.Vehicles) == 0 {
				continue
			}
			key, ok := c.slots.SlotKey(entry.RunID)
			if !ok {
				// Timetable not reconciled yet; the consist saves on a
				// later tick.
				continue
			}
			rec := c.sequence(entry, key)
			if _, err := c.store.Upsert(ctx, rec); err != nil {
				c.logger.Error("vehicle sequence save failed",
					slog.String("run_id", entry.RunID),
					slog.String("server_code", srv.Code),
					slog.Any("error", err))
			}
		}
	}
}

func (c *VehicleCollector) sequence(entry upstream.TrainEntry, resolveKey string) services.SequenceRecord {
	vehicles := make([]map[string]any, 0, len(entry.Vehicles))
	for _, raw := range entry.Vehicles {
		vehicles = append(vehicles, c.vehicle(raw))
	}
	return services.SequenceRecord{
		ID:         railid.SequenceID(),
		JourneyID:  railid.JourneyID(entry.RunID),
		Status:     vehiclesequence.StatusREAL,
		Vehicles:   vehicles,
		ResolveKey: resolveKey,
	}
}

// vehicle decodes one "<apiID>[:<load>[@<weight>]]" vehicle reference
// against the railcar bundle.
func (c *VehicleCollector) vehicle(raw string) map[string]any {
	apiID, rest, _ := strings.Cut(raw, ":")
	v := map[string]any{"api_id": apiID}
	if car, ok := c.railcars.ByAPIID(apiID); ok {
		v["name"] = car.Name
		v["kind"] = car.Kind
		if car.MaxSpeedKmh > 0 {
			v["max_speed_kmh"] = car.MaxSpeedKmh
		}
	} else {
		v["name"] = apiID
		v["kind"] = "UNKNOWN"
	}
	if rest != "" {
		load, weight, hasWeight := strings.Cut(rest, "@")
		if load != "" {
			v["load"] = load
		}
		if hasWeight && weight != "" {
			v["load_weight"] = weight
		}
	}
	return v
}
