package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// AppConfig is the console's deployment configuration: where the backend
// lives, where the shell listens, and how logging behaves.
type AppConfig struct {
	API    APIConfig    `yaml:"api"`
	Web    WebConfig    `yaml:"web"`
	Logger LoggerConfig `yaml:"logger"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // seconds
}

type WebConfig struct {
	Listen string `yaml:"listen"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		API: APIConfig{
			BaseURL: "http://127.0.0.1:8080",
			Timeout: 15,
		},
		Web: WebConfig{
			Listen: ":9090",
		},
		Logger: LoggerConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "storeadmin.log",
		},
	}
}

// Load reads the yaml config file and applies STOREADMIN_* environment
// overrides on top. A missing file is not an error; defaults apply. An
// optional .env file is loaded first so overrides can live there too.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("STOREADMIN_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("STOREADMIN_API_TIMEOUT"); v != "" {
		cfg.API.Timeout = cast.ToInt(v)
	}
	if v := os.Getenv("STOREADMIN_WEB_LISTEN"); v != "" {
		cfg.Web.Listen = v
	}
	if v := os.Getenv("STOREADMIN_LOGGER_MODE"); v != "" {
		cfg.Logger.Mode = v
	}
	if v := os.Getenv("STOREADMIN_LOGGER_FILE_ENABLE"); v != "" {
		cfg.Logger.FileEnable = cast.ToBool(v)
	}
	if v := os.Getenv("STOREADMIN_LOGGER_FILENAME"); v != "" {
		cfg.Logger.Filename = v
	}
}
