package dispatch

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"

	sitv1 "github.com/simtrack/sit-collector/proto"
)

// Subject layout: sit-events.<kind>.v1.<server-id>[.<object-id>]. Consumers
// subscribe with wildcards, e.g. "sit-events.journey-updates.v1.*.>" for all
// journeys everywhere or "...v1.<server-id>.>" for one server.
const (
	subjectPrefix = "sit-events"

	kindJourneyUpdates  = "journey-updates"
	kindJourneyRemovals = "journey-removals"
	kindServerUpdates   = "server-updates"
	kindServerRemovals  = "server-removals"
	kindPostUpdates     = "dispatch-post-updates"
	kindPostRemovals    = "dispatch-post-removals"
)

func serverSubject(kind, serverID string) string {
	return fmt.Sprintf("%s.%s.v1.%s", subjectPrefix, kind, serverID)
}

func objectSubject(kind, serverID, objectID string) string {
	return fmt.Sprintf("%s.%s.v1.%s.%s", subjectPrefix, kind, serverID, objectID)
}

// Publisher pushes frames to the NATS broker. Publishing is fire-and-forget:
// while the broker is unreachable frames are dropped and counted, the
// collectors never block on it.
type Publisher struct {
	conn    *nats.Conn
	logger  *slog.Logger
	dropped atomic.Uint64
}

// Connect dials the broker. The connection retries forever with a fixed
// wait, so a broker restart heals without process intervention.
func Connect(url string, logger *slog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("broker connection lost", slog.Any("error", err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("broker connection restored", slog.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to broker %s: %w", url, err)
	}
	return &Publisher{conn: conn, logger: logger}, nil
}

// PublishJourney implements Sink.
func (p *Publisher) PublishJourney(f *sitv1.JourneyUpdateFrame) {
	kind := kindJourneyUpdates
	if f.UpdateType == sitv1.UpdateType_UPDATE_TYPE_REMOVE {
		kind = kindJourneyRemovals
	}
	p.publish(objectSubject(kind, f.ServerId, f.JourneyId), f)
}

// PublishServer implements Sink.
func (p *Publisher) PublishServer(f *sitv1.ServerUpdateFrame) {
	kind := kindServerUpdates
	if f.UpdateType == sitv1.UpdateType_UPDATE_TYPE_REMOVE {
		kind = kindServerRemovals
	}
	p.publish(serverSubject(kind, f.ServerId), f)
}

// PublishDispatchPost implements Sink.
func (p *Publisher) PublishDispatchPost(f *sitv1.DispatchPostUpdateFrame) {
	kind := kindPostUpdates
	if f.UpdateType == sitv1.UpdateType_UPDATE_TYPE_REMOVE {
		kind = kindPostRemovals
	}
	p.publish(objectSubject(kind, f.ServerId, f.PostId), f)
}

func (p *Publisher) publish(subject string, frame proto.Message) {
	if !p.conn.IsConnected() {
		p.dropped.Add(1)
		return
	}
	raw, err := proto.Marshal(frame)
	if err != nil {
		p.logger.Error("encoding frame failed", slog.String("subject", subject), slog.Any("error", err))
		return
	}
	if err := p.conn.Publish(subject, raw); err != nil {
		p.dropped.Add(1)
		p.logger.Warn("publishing frame failed", slog.String("subject", subject), slog.Any("error", err))
	}
}

// Dropped returns the number of frames lost to broker outages.
func (p *Publisher) Dropped() uint64 {
	return p.dropped.Load()
}

// Close drains and closes the broker connection.
func (p *Publisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
