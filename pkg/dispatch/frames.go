// Package dispatch fans the sparse update frames out to their consumers: the
// gRPC update stream for internal services and the NATS broker for external
// ones. Delivery is at-most-once everywhere; a consumer that cannot keep up
// loses frames, never liveness.
package dispatch

import (
	"google.golang.org/protobuf/proto"

	"github.com/simtrack/sit-collector/pkg/collector"
	"github.com/simtrack/sit-collector/pkg/dirty"
	"github.com/simtrack/sit-collector/pkg/journey"
	sitv1 "github.com/simtrack/sit-collector/proto"
)

func updateType(kind journey.UpdateKind) sitv1.UpdateType {
	switch kind {
	case journey.KindAdd:
		return sitv1.UpdateType_UPDATE_TYPE_ADD
	case journey.KindRemove:
		return sitv1.UpdateType_UPDATE_TYPE_REMOVE
	default:
		return sitv1.UpdateType_UPDATE_TYPE_UPDATE
	}
}

// journeyFrame encodes a journey delta. Only changed fields are present;
// wrapper messages with an unset inner field encode "changed to null".
func journeyFrame(d journey.Delta) *sitv1.JourneyUpdateFrame {
	f := &sitv1.JourneyUpdateFrame{
		JourneyId:    d.JourneyID,
		ServerId:     d.ServerID,
		UpdateType:   updateType(d.Kind),
		EventUpdated: d.EventUpdated,
	}
	for _, c := range d.Changes {
		switch c.Name {
		case "driver":
			if c.Cleared {
				f.Driver = &sitv1.DriverChange{}
			} else if id, ok := c.Value.(string); ok {
				f.Driver = &sitv1.DriverChange{DriverId: proto.String(id)}
			}
		case "speed":
			if v, ok := c.Value.(uint32); ok {
				f.SpeedKmh = proto.Uint32(v)
			}
		case "position":
			if p, ok := c.Value.(journey.Position); ok {
				f.Position = &sitv1.Position{Latitude: p.Lat, Longitude: p.Lon}
			}
		case "next_signal":
			if c.Cleared {
				f.NextSignal = &sitv1.NextSignalChange{}
			} else if sig, ok := c.Value.(journey.SignalAhead); ok {
				f.NextSignal = &sitv1.NextSignalChange{Signal: nextSignal(sig)}
			}
		}
	}
	return f
}

func nextSignal(sig journey.SignalAhead) *sitv1.NextSignal {
	out := &sitv1.NextSignal{
		Name:      sig.ID,
		DistanceM: uint32(sig.DistanceM),
	}
	if sig.SpeedLimitKmh > 0 {
		out.SpeedLimitKmh = proto.Uint32(sig.SpeedLimitKmh)
	}
	return out
}

func serverFrame(d collector.ServerDelta) *sitv1.ServerUpdateFrame {
	f := &sitv1.ServerUpdateFrame{
		ServerId:   d.ServerID,
		UpdateType: updateType(d.Kind),
	}
	for _, c := range d.Changes {
		applyServerChange(f, c)
	}
	return f
}

func applyServerChange(f *sitv1.ServerUpdateFrame, c dirty.Change) {
	switch c.Name {
	case "online":
		if v, ok := c.Value.(bool); ok {
			f.Online = proto.Bool(v)
		}
	case "zone_offset":
		if v, ok := c.Value.(string); ok {
			f.ZoneOffset = proto.String(v)
		}
	case "utc_offset_hours":
		if v, ok := c.Value.(int); ok {
			f.UtcOffsetHours = proto.Int32(int32(v))
		}
	case "server_scenery":
		if v, ok := c.Value.(string); ok {
			f.ServerScenery = proto.String(v)
		}
	}
}

func postFrame(d collector.PostDelta) *sitv1.DispatchPostUpdateFrame {
	f := &sitv1.DispatchPostUpdateFrame{
		PostId:             d.PostID,
		ServerId:           d.ServerID,
		UpdateType:         updateType(d.Kind),
		DispatchersChanged: d.DispatchersChanged,
	}
	if d.DispatchersChanged {
		f.DispatcherIds = d.Dispatchers
	}
	return f
}
