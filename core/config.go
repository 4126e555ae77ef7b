package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultSubjects is the ordered subject list used when none is configured.
var DefaultSubjects = []string{"Mathematics", "Science", "History", "English", "Art"}

type (
	StorageConfig struct {
		Driver    string // memory | badger | redis
		Path      string // badger data directory
		RosterKey string
		ThemeKey  string
	}

	RedisConfig struct {
		Addr     string
		Password string
		DB       int
	}

	ServerConfig struct {
		Address         string
		ShutdownTimeout time.Duration
	}

	Config struct {
		Env          string
		Debug        bool
		TestMode     bool
		AppName      string
		LogLevel     string
		RollbarToken string
		Build        string
		Subjects     []string
		Storage      StorageConfig
		Redis        RedisConfig
		Server       ServerConfig
	}
)

// NewConfig reads the configuration for the current ENV (DEV by default).
// config/.env.<env> is loaded first when it exists; real environment variables,
// prefixed with the env name (eg. DEV_STORAGE_DRIVER), take precedence.
func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Gradebook")
	v.SetDefault("logLevel", "info")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")
	v.SetDefault("subjects", DefaultSubjects)
	v.SetDefault("storage.driver", "badger")
	v.SetDefault("storage.path", filepath.Join(".", "data"))
	v.SetDefault("storage.rosterKey", "students")
	v.SetDefault("storage.themeKey", "theme")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.shutdownTimeout", 10*time.Second)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("storage.driver", "memory")
	case "PROD":
		v.SetDefault("debug", false)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		LogLevel:     v.GetString("logLevel"),
		RollbarToken: v.GetString("rollbarToken"),
		Build:        v.GetString("build"),
		Subjects:     cleanSubjects(v.GetStringSlice("subjects")),
		Storage: StorageConfig{
			Driver:    strings.ToLower(v.GetString("storage.driver")),
			Path:      v.GetString("storage.path"),
			RosterKey: v.GetString("storage.rosterKey"),
			ThemeKey:  v.GetString("storage.themeKey"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
		},
	}
	if len(conf.Subjects) == 0 {
		conf.Subjects = append([]string(nil), DefaultSubjects...)
	}
	return conf, nil
}

// cleanSubjects trims names and drops blanks and duplicates, keeping order.
// env values arrive as a single comma separated string.
func cleanSubjects(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	subjects := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, s := range strings.Split(item, ",") {
			s = CleanString(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			subjects = append(subjects, s)
		}
	}
	return subjects
}
