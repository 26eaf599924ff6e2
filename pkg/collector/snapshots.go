package collector

import (
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/simtrack/sit-collector/pkg/livecache"
)

// ServerSnapshot is the realtime-only state of a game server. Online state
// is never persisted; this cache is its single home.
type ServerSnapshot struct {
	ServerID       string `json:"server_id"`
	Code           string `json:"code"`
	Online         bool   `json:"online"`
	UTCOffsetHours int    `json:"utc_offset_hours"`
	ZoneOffset     string `json:"zone_offset"`
	Scenery        string `json:"scenery"`
	Version        int64  `json:"version"`
}

// NewServerCache builds the server snapshot cache. The server code doubles
// as a secondary key because upstream endpoints address servers by code.
func NewServerCache(remote *redis.Client, ttl time.Duration) *livecache.Cache[ServerSnapshot] {
	return livecache.New(livecache.Options[ServerSnapshot]{
		Prefix:       "server",
		TTL:          ttl,
		PrimaryKey:   func(s ServerSnapshot) string { return s.ServerID },
		SecondaryKey: func(s ServerSnapshot) string { return s.Code },
		Version:      func(s ServerSnapshot) int64 { return s.Version },
		Encode:       func(s ServerSnapshot) ([]byte, error) { return json.Marshal(s) },
		Decode: func(raw []byte) (ServerSnapshot, error) {
			var s ServerSnapshot
			err := json.Unmarshal(raw, &s)
			return s, err
		},
	}, remote)
}

// PostSnapshot is the realtime-only state of a dispatch post: who is
// dispatching right now.
type PostSnapshot struct {
	PostID      string   `json:"post_id"`
	ServerID    string   `json:"server_id"`
	Dispatchers []string `json:"dispatchers"`
	Version     int64    `json:"version"`
}

// NewPostCache builds the dispatch post snapshot cache.
func NewPostCache(remote *redis.Client, ttl time.Duration) *livecache.Cache[PostSnapshot] {
	return livecache.New(livecache.Options[PostSnapshot]{
		Prefix:     "dispatch-post",
		TTL:        ttl,
		PrimaryKey: func(s PostSnapshot) string { return s.PostID },
		Version:    func(s PostSnapshot) int64 { return s.Version },
		Encode:     func(s PostSnapshot) ([]byte, error) { return json.Marshal(s) },
		Decode: func(raw []byte) (PostSnapshot, error) {
			var s PostSnapshot
			err := json.Unmarshal(raw, &s)
			return s, err
		},
	}, remote)
}
