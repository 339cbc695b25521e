package config

import (
	"bytes"
	_ "embed" // for embedding default config
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"os"
	"path"
	"strings"
	"time"
)

//go:embed config.default.yml
var defaultConfig []byte

// Config is the whole application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	MySQL      MySQLConfig      `mapstructure:"mysql"`
	Log        LogConfig        `mapstructure:"log"`
	Jaeger     JaegerConfig     `mapstructure:"jaeger"`
	Memcache   MemcacheConfig   `mapstructure:"memcache"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Generation GenerationConfig `mapstructure:"generation"`
	AMQP       AMQPConfig       `mapstructure:"amqp"`
}

// SchedulerConfig configures the orchestrator loop
type SchedulerConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	NumWorkers    int           `mapstructure:"num_workers"`
	HintCacheSize int           `mapstructure:"hint_cache_size"`
	HintTTL       time.Duration `mapstructure:"hint_ttl"`
}

// GenerationLockType ...
type GenerationLockType string

const (
	// GenerationLockTypeLocal uses an in-process mutex per campaign
	GenerationLockTypeLocal GenerationLockType = "local"

	// GenerationLockTypeMemcache uses memcached leases, shared between processes
	GenerationLockTypeMemcache GenerationLockType = "memcache"
)

// GenerationConfig configures batch generation
type GenerationConfig struct {
	// ChunkSize = 0 means inserting all batch prospects in a single transaction
	ChunkSize int                `mapstructure:"chunk_size"`
	LockType  GenerationLockType `mapstructure:"lock_type"`
}

// AMQPConfig for the outbox relay
type AMQPConfig struct {
	URL          string        `mapstructure:"url"`
	Exchange     string        `mapstructure:"exchange"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    uint64        `mapstructure:"batch_size"`
}

func loadConfigWithFile(filename string) Config {
	vip := viper.New()
	vip.SetConfigType("yaml")

	err := vip.ReadConfig(bytes.NewReader(defaultConfig))
	if err != nil {
		panic(err)
	}

	if _, err := os.Stat(filename); err == nil {
		vip.SetConfigFile(filename)
		err = vip.MergeInConfig()
		if err != nil {
			panic(err)
		}
	}

	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	var conf Config
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load loads config from .env, config.yml and environment variables
func Load() Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		fmt.Println("[WARN] Can not load .env:", err)
	}
	return loadConfigWithFile("config.yml")
}

// LoadTestConfig loads config.test.yml in the root directory
func LoadTestConfig(rootDir string) Config {
	return loadConfigWithFile(path.Join(rootDir, "config.test.yml"))
}
