package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppCfg struct{ Env, Port string }
type DBCfg struct{ DSN string }

type SearchCfg struct {
	DefaultLimit    int
	MaxLimit        int
	ListItemLimit   int
	ListConcurrency int
}

type HTTPCfg struct {
	AllowedOrigins []string
}

type Cfg struct {
	App    AppCfg
	DB     DBCfg
	Search SearchCfg
	HTTP   HTTPCfg
}

func Load() Cfg {
	// Load .env into process env if present, then read everything via viper.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", "dev")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("SEARCH_DEFAULT_LIMIT", 40)
	viper.SetDefault("SEARCH_MAX_LIMIT", 200)
	viper.SetDefault("LIST_ITEM_LIMIT", 40)
	viper.SetDefault("LIST_CONCURRENCY", 4)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	cfg := Cfg{
		App: AppCfg{
			Env:  viper.GetString("APP_ENV"),
			Port: viper.GetString("APP_PORT"),
		},
		DB: DBCfg{DSN: viper.GetString("DB_DSN")},
		Search: SearchCfg{
			DefaultLimit:    viper.GetInt("SEARCH_DEFAULT_LIMIT"),
			MaxLimit:        viper.GetInt("SEARCH_MAX_LIMIT"),
			ListItemLimit:   viper.GetInt("LIST_ITEM_LIMIT"),
			ListConcurrency: viper.GetInt("LIST_CONCURRENCY"),
		},
		HTTP: HTTPCfg{
			AllowedOrigins: splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if cfg.DB.DSN == "" {
		log.Fatal().Msg("DB_DSN is required")
	}
	return cfg
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
