package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/Barritosaurus/cpu-scheduler/internal/schedulers"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int64
	Policies              []schedulers.Policy
	Precision             int
	LogLevel              string
	RemoteURL             string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml (or $SCHEDULER_CONFIG) once per process.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads configuration from path, or from config.yaml in the working
// directory when path is empty. A missing file leaves the defaults in place.
// SCHEDULER_* environment variables override file values.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.policies", []string{"fcfs", "sjf", "srtf", "npps", "pps", "rr"})
	v.SetDefault("output.precision", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("remote.url", "")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("config")

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt64("scheduler.round_robin.time_quantum"),
		Precision:             v.GetInt("output.precision"),
		LogLevel:              v.GetString("log.level"),
		RemoteURL:             v.GetString("remote.url"),
	}
	for _, name := range v.GetStringSlice("scheduler.policies") {
		p, err := schedulers.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		cfg.Policies = append(cfg.Policies, p)
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, &schedulers.InvalidQuantumError{Quantum: cfg.RoundRobinTimeQuantum}
	}
	if cfg.Precision < 0 {
		cfg.Precision = 0
	}

	return cfg, nil
}
