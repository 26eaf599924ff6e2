package dispatch

import (
	"context"

	sitv1 "github.com/simtrack/sit-collector/proto"
)

// StreamServer serves the update stream to internal consumers.
type StreamServer struct {
	sitv1.UnimplementedUpdateStreamServer
	hub *Hub
}

// NewStreamServer wires the stream service onto the hub.
func NewStreamServer(hub *Hub) *StreamServer {
	return &StreamServer{hub: hub}
}

// SubscribeJourneyUpdates streams journey frames until the client goes away.
func (s *StreamServer) SubscribeJourneyUpdates(req *sitv1.SubscribeRequest, stream sitv1.UpdateStream_SubscribeJourneyUpdatesServer) error {
	ch, cancel := s.hub.SubscribeJourneys(req.GetServerId())
	defer cancel()
	return pump(stream.Context(), ch, stream.Send)
}

// SubscribeServerUpdates streams server frames.
func (s *StreamServer) SubscribeServerUpdates(req *sitv1.SubscribeRequest, stream sitv1.UpdateStream_SubscribeServerUpdatesServer) error {
	ch, cancel := s.hub.SubscribeServers(req.GetServerId())
	defer cancel()
	return pump(stream.Context(), ch, stream.Send)
}

// SubscribeDispatchPostUpdates streams dispatch post frames.
func (s *StreamServer) SubscribeDispatchPostUpdates(req *sitv1.SubscribeRequest, stream sitv1.UpdateStream_SubscribeDispatchPostUpdatesServer) error {
	ch, cancel := s.hub.SubscribeDispatchPosts(req.GetServerId())
	defer cancel()
	return pump(stream.Context(), ch, stream.Send)
}

func pump[F any](ctx context.Context, ch <-chan F, send func(F) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case frame, ok := <-ch:
			if !ok {
				return nil
			}
			if err := send(frame); err != nil {
				return err
			}
		}
	}
}
