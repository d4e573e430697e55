package configs

import (
	"log"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Postgres `mapstructure:"postgres"`
	Nuxeo    `mapstructure:"nuxeo"`
	Debug    `mapstructure:"debug"`
	CMIS     `mapstructure:"cmis"`
	Session  `mapstructure:"session"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Nuxeo struct - automation binding endpoint.
// URL is the server root including the trailing slash, e.g. http://127.0.0.1:8080/nuxeo/
type Nuxeo struct {
	URL      string `mapstructure:"url"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Timeout  int    `mapstructure:"timeout"` // seconds
}

// Debug struct - fallback credentials used when a binding has none of its own
type Debug struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// CMIS struct - content-interoperability binding endpoint
type CMIS struct {
	Enabled      bool   `mapstructure:"enabled"`
	URL          string `mapstructure:"url"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	RepositoryID string `mapstructure:"repository_id"`
	BindingType  string `mapstructure:"binding_type"`
	Timeout      int    `mapstructure:"timeout"` // seconds
}

// Session struct - idle reaping of backend sessions, both values in seconds
type Session struct {
	IdleTimeout   int `mapstructure:"idle_timeout"`
	CheckInterval int `mapstructure:"check_interval"`
}

// Credentials returns the automation user and password, falling back to the debug pair.
func (n Nuxeo) Credentials(fallback Debug) (string, string) {
	if n.User == "" {
		return fallback.User, fallback.Password
	}
	return n.User, n.Password
}

// Credentials returns the CMIS user and password, falling back to the debug pair.
func (c CMIS) Credentials(fallback Debug) (string, string) {
	if c.User == "" {
		return fallback.User, fallback.Password
	}
	return c.User, c.Password
}

// IdleTimeoutDuration converts the configured idle timeout; zero means "use the default".
func (s Session) IdleTimeoutDuration() time.Duration {
	return time.Duration(s.IdleTimeout) * time.Second
}

// CheckIntervalDuration converts the configured watchdog interval; zero means "use the default".
func (s Session) CheckIntervalDuration() time.Duration {
	return time.Duration(s.CheckInterval) * time.Second
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}
