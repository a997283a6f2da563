package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Session SessionConfig
	Board   BoardConfig
	Log     LogConfig
}

type ServerConfig struct {
	Address string
}

// DBConfig 資料庫設定，sqlite 只使用 Path，postgres 使用其餘欄位
type DBConfig struct {
	Driver   string
	Path     string
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type SessionConfig struct {
	Secret   string
	TTLHours int `mapstructure:"ttl_hours"`
	Cookie   string
}

type BoardConfig struct {
	Title    string
	PageSize int `mapstructure:"page_size"`
}

type LogConfig struct {
	Level string
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load 讀取設定檔與環境變數
// path 為空時從 ./pkg/config 尋找 config.yaml，找不到設定檔時使用預設值
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path == "" {
		path = "./pkg/config"
	}
	v.AddConfigPath(path)

	setDefaults(v)

	// 環境變數覆蓋，例如 MINIBOARD_DB_PATH
	v.SetEnvPrefix("MINIBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":3000")

	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "board_data.sqlite3")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "miniboard")
	v.SetDefault("db.port", 5432)

	v.SetDefault("session.secret", "miniboard_dev_secret")
	v.SetDefault("session.ttl_hours", 240)
	v.SetDefault("session.cookie", "login")

	v.SetDefault("board.title", "miniBoard")
	v.SetDefault("board.page_size", 10)

	v.SetDefault("log.level", "info")
}

// Validate 檢查設定值是否可用
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if c.Board.PageSize < 1 {
		return fmt.Errorf("board.page_size must be positive, got %d", c.Board.PageSize)
	}
	if c.Session.Secret == "" {
		return errors.New("session.secret must not be empty")
	}
	return nil
}
