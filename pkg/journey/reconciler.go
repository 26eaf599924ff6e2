package journey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/simtrack/sit-collector/pkg/livecache"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/static"
)

const shardCount = 64

type shard struct {
	mu    sync.Mutex
	byRun map[string]*Journey
}

// Reconciler maps live run observations onto persistent journeys. One
// instance serves all servers; mutations of a single journey are serialised
// through its shard lock, so the collectors may call in concurrently.
type Reconciler struct {
	store   Store
	signals *static.SignalProvider
	digests *livecache.Cache[StateDigest]
	sink    Sink
	logger  *slog.Logger

	// goneThreshold is how many consecutive active-listing absences move an
	// active run to Gone.
	goneThreshold int

	shards [shardCount]shard
}

// NewReconciler creates a reconciler. digests may be nil, which disables
// checksum suppression (every tick persists). sink may be nil, which
// disables fan-out.
func NewReconciler(store Store, signals *static.SignalProvider, digests *livecache.Cache[StateDigest], sink Sink, goneThreshold int, logger *slog.Logger) *Reconciler {
	if store == nil {
		panic("NewReconciler: store must not be nil")
	}
	if goneThreshold <= 0 {
		goneThreshold = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reconciler{
		store:         store,
		signals:       signals,
		digests:       digests,
		sink:          sink,
		logger:        logger,
		goneThreshold: goneThreshold,
	}
	for i := range r.shards {
		r.shards[i].byRun = make(map[string]*Journey)
	}
	return r
}

// NewDigestCache builds the cache used for checksum suppression, keyed by
// the upstream run id. remote may be nil for a purely local cache.
func NewDigestCache(remote *redis.Client, ttl time.Duration) *livecache.Cache[StateDigest] {
	return livecache.New(livecache.Options[StateDigest]{
		Prefix:     "journey-digest",
		TTL:        ttl,
		PrimaryKey: func(d StateDigest) string { return d.RunID },
		Version:    func(d StateDigest) int64 { return d.Version },
		Encode:     func(d StateDigest) ([]byte, error) { return json.Marshal(d) },
		Decode: func(raw []byte) (StateDigest, error) {
			var d StateDigest
			err := json.Unmarshal(raw, &d)
			return d, err
		},
	}, remote)
}

func (r *Reconciler) shardFor(runID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(runID))
	return &r.shards[h.Sum32()%shardCount]
}

// loadLocked returns the in-memory journey for runID, fetching it from the
// store on first touch. The shard lock must be held. Returns nil when the
// journey exists nowhere.
func (r *Reconciler) loadLocked(ctx context.Context, sh *shard, runID string) (*Journey, error) {
	if j, ok := sh.byRun[runID]; ok {
		return j, nil
	}
	row, err := r.store.GetByRunID(ctx, runID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load journey %s: %w", runID, err)
	}
	j := fromEntity(row)
	sh.byRun[runID] = j
	return j, nil
}

// ApplyTimetable installs or refreshes the scheduled events of one run.
// Realtime projections of events that survive the rebuild are preserved;
// events whose realtime time is already REAL keep it untouched.
func (r *Reconciler) ApplyTimetable(ctx context.Context, run TimetableRun) error {
	sh := r.shardFor(run.RunID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	j, err := r.loadLocked(ctx, sh, run.RunID)
	if err != nil {
		return err
	}
	kind := KindUpdate
	if j == nil {
		j = newJourney(run.RunID, run.ServerID, run.TrainNumber)
		sh.byRun[run.RunID] = j
		kind = KindAdd
	}

	j.TrainNumber = run.TrainNumber
	j.TrainName = run.TrainName
	j.Category = run.Category
	j.ContinuesAs = run.ContinuesAs

	rebuilt := buildEvents(j.ID, run)
	mergeRealtime(j.Events, rebuilt)
	j.Events = rebuilt
	j.recomputeReached()

	return r.commit(ctx, j, kind, true)
}

// Observe processes one live sighting from the active-train collector.
func (r *Reconciler) Observe(ctx context.Context, obs Observation) error {
	sh := r.shardFor(obs.RunID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	j, err := r.loadLocked(ctx, sh, obs.RunID)
	if err != nil {
		return err
	}
	kind := KindUpdate
	if j == nil {
		// Seen live before the timetable collector caught up.
		j = newJourney(obs.RunID, obs.ServerID, obs.TrainNumber)
		sh.byRun[obs.RunID] = j
	}

	if j.FirstSeen == nil {
		t := obs.ServerNow
		j.FirstSeen = &t
		kind = KindAdd
	}
	j.state = StateActive
	j.absences = 0

	j.live.speed.Set(obs.SpeedKmh)
	j.live.position.Set(obs.Position)
	if obs.PositionOnly {
		return r.commit(ctx, j, kind, false)
	}

	j.live.driver.SetNullable(obs.Driver)
	if obs.NextSignal != nil {
		if obs.NextSignal.DistanceM <= maxSignalDistanceM {
			j.live.nextSignal.Set(*obs.NextSignal)
		} else {
			j.live.nextSignal.Clear()
		}
	}

	eventsChanged := false
	if obs.CurrentPointID != "" && obs.CurrentPointID != j.lastPointID {
		if j.applyPointChange(j.lastPointID, obs.CurrentPointID, obs.ServerNow) {
			eventsChanged = true
		}
		j.lastPointID = obs.CurrentPointID
	}
	if obs.NextSignal != nil && obs.CurrentPointID != "" {
		if r.applySignalUpdate(j, obs.CurrentPointID, obs.NextSignal.ID) {
			eventsChanged = true
		}
	}

	return r.commit(ctx, j, kind, eventsChanged)
}

// unseenEvictAfter is how long past its last scheduled event a run that was
// never observed live is kept before it is finalised as never-ran.
const unseenEvictAfter = 30 * time.Minute

// SyncActive is called once per active-train tick with the complete set of
// run ids currently listed for the server. Tracked runs missing from enough
// consecutive listings are removed: last-seen is stamped, cancellations are
// inferred and a REMOVE frame goes out. Runs that never left the timetable
// are finalised once their whole schedule lies in the past, so timetable
// churn cannot grow the shards without bound.
func (r *Reconciler) SyncActive(ctx context.Context, serverID string, present map[string]struct{}, serverNow time.Time) {
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mu.Lock()
		var gone []*Journey
		for runID, j := range sh.byRun {
			if j.ServerID != serverID {
				continue
			}
			switch j.state {
			case StateActive:
				if _, ok := present[runID]; ok {
					j.absences = 0
					continue
				}
				j.absences++
				if j.absences >= r.goneThreshold {
					gone = append(gone, j)
				}
			case StateUnseen:
				if end, ok := j.scheduleEnd(); ok && serverNow.After(end.Add(unseenEvictAfter)) {
					gone = append(gone, j)
				}
			case StateCancelled, StateCompleted:
				// Reloaded by a late timetable refresh; already finalised.
				delete(sh.byRun, runID)
			}
		}
		for _, j := range gone {
			if err := r.applyRemoval(ctx, sh, j, serverNow); err != nil {
				r.logger.Error("journey removal failed",
					slog.String("run_id", j.RunID),
					slog.String("server_id", serverID),
					slog.Any("error", err))
			}
		}
		sh.mu.Unlock()
	}
}

// SlotKey identifies the scheduled slot of a tracked run: category, number,
// origin, destination and the origin departure wall time. Consist
// predictions follow the slot across run instances through this key, so two
// runs of the same number and route with different departures never share
// one. False until the run's timetable has been applied.
func (r *Reconciler) SlotKey(runID string) (string, bool) {
	sh := r.shardFor(runID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	j, ok := sh.byRun[runID]
	if !ok || len(j.Events) == 0 {
		return "", false
	}
	return j.slotKey(), true
}

// State returns the lifecycle state of a tracked run, for introspection.
func (r *Reconciler) State(runID string) (State, bool) {
	sh := r.shardFor(runID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	j, ok := sh.byRun[runID]
	if !ok {
		return StateUnseen, false
	}
	return j.state, true
}

func newJourney(runID, serverID, trainNumber string) *Journey {
	return &Journey{
		ID:          railid.JourneyID(runID),
		RunID:       runID,
		ServerID:    serverID,
		TrainNumber: trainNumber,
		lastReached: -1,
		live:        newLiveState(),
		state:       StateUnseen,
	}
}

// buildEvents expands the timetable rows into the dense event list: one
// arrival and/or departure event per row, indices from 0 in route order.
// An arrival always precedes the departure at the same point.
func buildEvents(journeyID string, run TimetableRun) []*Event {
	var events []*Event
	idx := 0
	add := func(row TimetableRow, typ EventType, at time.Time) {
		events = append(events, &Event{
			ID:               railid.JourneyEventID(journeyID, idx, string(typ)),
			Index:            idx,
			Type:             typ,
			PointID:          row.PointID,
			PointName:        row.PointName,
			InPlayableBorder: row.InPlayableBorder,
			Scheduled:        at,
			TimeType:         TimeSchedule,
			Transport: map[string]any{
				"category":  run.Category,
				"number":    run.TrainNumber,
				"line":      row.Line,
				"label":     run.Label,
				"max_speed": row.MaxSpeedKmh,
			},
			Stop:              row.Stop,
			ScheduledPlatform: row.Platform,
			ScheduledTrack:    row.Track,
		})
		idx++
	}
	for _, row := range run.Rows {
		if row.Arrival != nil {
			add(row, EventArrival, *row.Arrival)
		}
		if row.Departure != nil {
			add(row, EventDeparture, *row.Departure)
		}
	}
	return events
}

// mergeRealtime carries realtime projections from the old event list onto
// the rebuilt one, matching by (point, type) in route order.
func mergeRealtime(old, rebuilt []*Event) {
	consumed := make([]bool, len(rebuilt))
	for _, prev := range old {
		if prev.TimeType == TimeSchedule && prev.RealtimePlatform == nil &&
			prev.RealtimeTrack == nil && !prev.Cancelled {
			continue
		}
		for i, ev := range rebuilt {
			if consumed[i] || ev.PointID != prev.PointID || ev.Type != prev.Type {
				continue
			}
			consumed[i] = true
			ev.Realtime = prev.Realtime
			ev.TimeType = prev.TimeType
			ev.RealtimePlatform = prev.RealtimePlatform
			ev.RealtimeTrack = prev.RealtimeTrack
			ev.Cancelled = prev.Cancelled
			break
		}
	}
}

func (j *Journey) recomputeReached() {
	j.lastReached = -1
	for _, ev := range j.Events {
		if ev.TimeType == TimeReal && ev.Index > j.lastReached {
			j.lastReached = ev.Index
		}
	}
}

func (j *Journey) eventByIndex(idx int) *Event {
	for _, ev := range j.Events {
		if ev.Index == idx {
			return ev
		}
	}
	return nil
}

// firstPendingAt returns the first event at the point, past the run's
// current progress, whose realtime time has not reached REAL yet. typ
// narrows to one event type when non-empty. Scanning from the progress
// index keeps a route that visits the same point twice from stamping the
// already-passed earlier visit.
func (j *Journey) firstPendingAt(pointID string, typ EventType) *Event {
	for _, ev := range j.Events {
		if ev.Index <= j.lastReached || ev.PointID != pointID || ev.TimeType == TimeReal {
			continue
		}
		if typ != "" && ev.Type != typ {
			continue
		}
		return ev
	}
	return nil
}

// currentAt returns the event at the point nearest the run's current
// progress, REAL or not.
func (j *Journey) currentAt(pointID string, typ EventType) *Event {
	from := j.lastReached
	if from < 0 {
		from = 0
	}
	for _, ev := range j.Events {
		if ev.Index < from || ev.PointID != pointID {
			continue
		}
		if typ != "" && ev.Type != typ {
			continue
		}
		return ev
	}
	return nil
}

// applyPointChange realises the crossing of a point boundary: the pending
// event at the new point (and the departure of the previous one) get a REAL
// time of server-now; skipped events are back-filled as predictions using
// the observed run rate; future events are re-projected by the current
// delay. Events already REAL are never touched.
func (j *Journey) applyPointChange(prev, current string, now time.Time) bool {
	changed := false

	if prev != "" {
		if dep := j.firstPendingAt(prev, EventDeparture); dep != nil {
			t := now
			dep.Realtime = &t
			dep.TimeType = TimeReal
			if dep.Index > j.lastReached {
				j.lastReached = dep.Index
			}
			changed = true
		}
	}

	base := j.eventByIndex(j.lastReached)
	cur := j.firstPendingAt(current, "")
	if cur == nil {
		return changed
	}
	t := now
	cur.Realtime = &t
	cur.TimeType = TimeReal
	changed = true

	// Back-fill the events the run passed unobserved, scaled by the run
	// rate between the last REAL event and this crossing.
	if base != nil && base.Realtime != nil {
		schedSpan := cur.Scheduled.Sub(base.Scheduled)
		actualSpan := now.Sub(*base.Realtime)
		for _, ev := range j.Events {
			if ev.Index <= base.Index || ev.Index >= cur.Index || ev.TimeType == TimeReal {
				continue
			}
			var projected time.Time
			if schedSpan > 0 {
				frac := float64(ev.Scheduled.Sub(base.Scheduled)) / float64(schedSpan)
				projected = base.Realtime.Add(time.Duration(frac * float64(actualSpan)))
			} else {
				projected = now
			}
			ev.Realtime = &projected
			ev.TimeType = TimePrediction
		}
	}

	// Project the rest of the route with the current delay. Early running
	// clamps to the schedule.
	delay := now.Sub(cur.Scheduled)
	if delay < 0 {
		delay = 0
	}
	for _, ev := range j.Events {
		if ev.Index <= cur.Index || ev.TimeType == TimeReal {
			continue
		}
		projected := ev.Scheduled.Add(delay)
		if ev.Realtime == nil || !ev.Realtime.Equal(projected) || ev.TimeType != TimePrediction {
			ev.Realtime = &projected
			ev.TimeType = TimePrediction
		}
	}

	if cur.Index > j.lastReached {
		j.lastReached = cur.Index
	}
	return true
}

// applySignalUpdate resolves the signal the run is standing at into the
// realtime platform and track of the current passenger stop. Only the one
// event is touched.
func (r *Reconciler) applySignalUpdate(j *Journey, pointID, signalID string) bool {
	if r.signals == nil {
		return false
	}
	sig, ok := r.signals.Lookup(pointID, signalID)
	if !ok {
		return false
	}
	ev := j.currentAt(pointID, EventArrival)
	if ev == nil || ev.Stop != StopPassenger {
		return false
	}
	changed := false
	if ev.RealtimePlatform == nil || *ev.RealtimePlatform != sig.Platform {
		p := sig.Platform
		ev.RealtimePlatform = &p
		changed = true
	}
	if ev.RealtimeTrack == nil || *ev.RealtimeTrack != sig.Track {
		tr := sig.Track
		ev.RealtimeTrack = &tr
		changed = true
	}
	return changed
}

// applyRemoval handles the disappearance of a run from the live listing:
// stamp last-seen, cancel every playable event still ahead of server-now,
// cancel the whole journey if it never reached its first playable event,
// and resolve the continuation link. Shard lock must be held.
func (r *Reconciler) applyRemoval(ctx context.Context, sh *shard, j *Journey, now time.Time) error {
	if j.FirstSeen != nil {
		t := now
		j.LastSeen = &t
	}
	j.state = StateGone

	for _, ev := range j.Events {
		if !ev.InPlayableBorder || ev.TimeType == TimeReal {
			continue
		}
		if !ev.Scheduled.Before(now) {
			ev.Cancelled = true
		}
	}

	var firstPlayable *Event
	for _, ev := range j.Events {
		if ev.InPlayableBorder {
			firstPlayable = ev
			break
		}
	}
	if firstPlayable != nil && firstPlayable.TimeType != TimeReal {
		// The run never entered the playable area: the whole journey is off.
		for _, ev := range j.Events {
			if ev.InPlayableBorder {
				ev.Cancelled = true
			}
		}
	}

	j.Cancelled = allPlayableCancelled(j.Events)
	if j.Cancelled {
		j.state = StateCancelled
	} else {
		j.state = StateCompleted
	}

	if j.ContinuationID == nil && j.ContinuesAs != "" && len(j.Events) > 0 {
		last := j.Events[len(j.Events)-1]
		next, err := r.store.FindContinuation(ctx, j.ServerID, j.ContinuesAs, last.PointID, last.Scheduled)
		switch {
		case err == nil:
			id := next.ID
			j.ContinuationID = &id
		case !errors.Is(err, services.ErrNotFound):
			r.logger.Warn("continuation lookup failed",
				slog.String("run_id", j.RunID),
				slog.Any("error", err))
		}
	}

	err := r.commit(ctx, j, KindRemove, true)
	// Terminal journeys drop out of memory; a late reappearance reloads
	// from the store.
	delete(sh.byRun, j.RunID)
	return err
}

func allPlayableCancelled(events []*Event) bool {
	sawPlayable := false
	for _, ev := range events {
		if !ev.InPlayableBorder {
			continue
		}
		sawPlayable = true
		if !ev.Cancelled {
			return false
		}
	}
	return sawPlayable
}

// commit persists the journey unless its checksum matches the cached digest,
// then publishes a delta when anything (persisted or realtime-only) changed.
// Frames are handed to the sink strictly after the transaction committed.
func (r *Reconciler) commit(ctx context.Context, j *Journey, kind UpdateKind, eventsChanged bool) error {
	liveDirty := j.live.group.ConsumeDirty()
	changes := j.live.group.Changes()

	sum := j.Checksum()
	persist := true
	if r.digests != nil {
		if d, ok := r.digests.FindPrimary(j.RunID); ok && d.Checksum == sum {
			persist = false
		}
	}

	if persist {
		rec, events := j.toRecord()
		if _, err := r.store.SaveWithEvents(ctx, rec, events); err != nil {
			// One retry within the tick; deterministic ids make the upsert
			// idempotent.
			if _, err2 := r.store.SaveWithEvents(ctx, rec, events); err2 != nil {
				return fmt.Errorf("persist journey %s: %w", j.ID, err2)
			}
		}
		if r.digests != nil {
			r.digests.Set(StateDigest{
				RunID:    j.RunID,
				Checksum: sum,
				Version:  time.Now().UnixNano(),
			})
		}
	}

	if r.sink == nil || (!persist && !liveDirty) {
		return nil
	}
	d := Delta{
		JourneyID:    j.ID,
		RunID:        j.RunID,
		ServerID:     j.ServerID,
		Kind:         kind,
		EventUpdated: persist && eventsChanged,
	}
	if liveDirty {
		d.Changes = changes
	}
	r.sink.JourneyChanged(d)
	j.live.group.Reset()
	return nil
}
