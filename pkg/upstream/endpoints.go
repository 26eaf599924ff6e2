package upstream

import (
	"context"
	"fmt"
	"net/url"
)

// Servers lists all open servers.
func (c *Client) Servers(ctx context.Context) ([]ServerEntry, error) {
	var out []ServerEntry
	err := c.getJSON(ctx, c.cfg.PanelURL+"/servers-open", &out)
	return out, err
}

// TimeOffset returns the UTC offset of a server's simulated clock. The
// offset can change with DST, so the server collector refreshes it each tick.
func (c *Client) TimeOffset(ctx context.Context, serverCode string) (TimeOffset, error) {
	var out TimeOffset
	err := c.getRawJSON(ctx, fmt.Sprintf("%s/api/getTimeZone?serverCode=%s", c.cfg.AWSURL, url.QueryEscape(serverCode)), &out)
	return out, err
}

// ActiveTrains lists the live runs on a server.
func (c *Client) ActiveTrains(ctx context.Context, serverCode string) ([]TrainEntry, error) {
	var out []TrainEntry
	err := c.getJSON(ctx, fmt.Sprintf("%s/trains-open?serverCode=%s", c.cfg.PanelURL, url.QueryEscape(serverCode)), &out)
	return out, err
}

// TrainPositions lists the live run positions on a server.
func (c *Client) TrainPositions(ctx context.Context, serverCode string) ([]PositionEntry, error) {
	var out []PositionEntry
	err := c.getJSON(ctx, fmt.Sprintf("%s/train-positions-open?serverCode=%s", c.cfg.PanelURL, url.QueryEscape(serverCode)), &out)
	return out, err
}

// DispatchPosts lists the dispatch posts of a server.
func (c *Client) DispatchPosts(ctx context.Context, serverCode string) ([]DispatchPostEntry, error) {
	var out []DispatchPostEntry
	err := c.getJSON(ctx, fmt.Sprintf("%s/stations-open?serverCode=%s", c.cfg.PanelURL, url.QueryEscape(serverCode)), &out)
	return out, err
}

// Timetable fetches the full timetable of a server.
func (c *Client) Timetable(ctx context.Context, serverCode string) ([]TimetableEntry, error) {
	var out []TimetableEntry
	err := c.getRawJSON(ctx, fmt.Sprintf("%s/api/getAllTimetables?serverCode=%s", c.cfg.AWSURL, url.QueryEscape(serverCode)), &out)
	return out, err
}

// TrainThumbnail fetches the thumbnail image bytes for a train name.
func (c *Client) TrainThumbnail(ctx context.Context, trainName string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("%s/Thumbnails/Locomotives/%s.png", c.cfg.AWSURL, url.PathEscape(trainName)), "image/png")
}

// RoutePolyline resolves the polyline between two points.
func (c *Client) RoutePolyline(ctx context.Context, fromPointID, toPointID string) ([]PolylinePoint, error) {
	var out []PolylinePoint
	err := c.getRawJSON(ctx, fmt.Sprintf("%s/route?from=%s&to=%s", c.cfg.RoutingURL,
		url.QueryEscape(fromPointID), url.QueryEscape(toPointID)), &out)
	return out, err
}

// UserProfile resolves a player profile by platform id.
func (c *Client) UserProfile(ctx context.Context, steamID string) (UserProfile, error) {
	var out UserProfile
	err := c.getRawJSON(ctx, fmt.Sprintf("%s/api/user/%s", c.cfg.ProfileURL, url.PathEscape(steamID)), &out)
	return out, err
}
