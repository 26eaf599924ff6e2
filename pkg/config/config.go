// Package config loads and validates the collector configuration from
// sit.yaml, with environment expansion and built-in defaults.
package config

import (
	"time"

	"github.com/simtrack/sit-collector/pkg/upstream"
)

// Config is the fully resolved application configuration.
type Config struct {
	Upstream  upstream.Config `yaml:"upstream"`
	Redis     RedisConfig     `yaml:"redis"`
	Broker    BrokerConfig    `yaml:"broker"`
	Collector CollectorConfig `yaml:"collector"`
	Retention RetentionConfig `yaml:"retention"`
	Listen    ListenConfig    `yaml:"listen"`
	Static    StaticConfig    `yaml:"static"`
}

// RedisConfig configures the snapshot cache replication. An empty URL runs
// the caches local-only, which is the single-replica mode.
type RedisConfig struct {
	URL string        `yaml:"url"`
	TTL time.Duration `yaml:"ttl"`
}

// BrokerConfig configures the NATS fan-out. An empty URL disables it.
type BrokerConfig struct {
	URL string `yaml:"url"`
}

// CollectorConfig tunes the polling loops.
type CollectorConfig struct {
	ServerPeriod    time.Duration `yaml:"server_period"`
	PostPeriod      time.Duration `yaml:"post_period"`
	TrainPeriod     time.Duration `yaml:"train_period"`
	VehiclePeriod   time.Duration `yaml:"vehicle_period"`
	TimetablePeriod time.Duration `yaml:"timetable_period"`

	// GoneThreshold is the number of consecutive listings a run must be
	// absent from before it is treated as finished.
	GoneThreshold int `yaml:"gone_threshold"`
}

// RetentionConfig tunes the journey purge.
type RetentionConfig struct {
	Days      int    `yaml:"days"`
	BatchSize int    `yaml:"batch_size"`
	Schedule  string `yaml:"schedule"`
}

// ListenConfig holds the serving addresses.
type ListenConfig struct {
	HTTP string `yaml:"http"`
	GRPC string `yaml:"grpc"`
}

// StaticConfig points at the reference data bundles.
type StaticConfig struct {
	Dir string `yaml:"dir"`
}

// defaultConfig is the baseline every sit.yaml is merged over.
func defaultConfig() *Config {
	return &Config{
		Upstream: upstream.Config{
			PanelURL:   "https://panel.simrail.eu:8084",
			AWSURL:     "https://api1.aws.simrail.eu:8082",
			RoutingURL: "https://routing.simkol.pl",
			ProfileURL: "https://simrail-edr.de",
		},
		Redis: RedisConfig{
			TTL: 5 * time.Minute,
		},
		Collector: CollectorConfig{
			ServerPeriod:    30 * time.Second,
			PostPeriod:      10 * time.Second,
			TrainPeriod:     4 * time.Second,
			VehiclePeriod:   15 * time.Second,
			TimetablePeriod: 5 * time.Minute,
			GoneThreshold:   3,
		},
		Retention: RetentionConfig{
			Days:      90,
			BatchSize: 30000,
			Schedule:  "0 0 5 * * *",
		},
		Listen: ListenConfig{
			HTTP: ":8080",
			GRPC: ":9090",
		},
		Static: StaticConfig{
			Dir: "data",
		},
	}
}
