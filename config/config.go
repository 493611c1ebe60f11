package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

type SecurityConfiguration struct {
	JwtSecret           string `mapstructure:"jwt_secret"`
	AccessTTLMinutes    int    `mapstructure:"access_ttl_minutes"`
	RefreshCodeLen      int    `mapstructure:"refresh_code_len"`
	RefreshCodeMaxValid int    `mapstructure:"refresh_code_max_valid_days"`
}

type Configuration struct {
	ApiPort string `mapstructure:"api_port"`

	Database string `mapstructure:"database"` // "sqlite3" ou "postgres"
	DbPath   string `mapstructure:"db_path"`  // sqlite3
	DbHost   string `mapstructure:"db_host"`
	DbPort   string `mapstructure:"db_port"`
	DbUser   string `mapstructure:"db_user"`
	DbName   string `mapstructure:"db_name"`
	DbPass   string `mapstructure:"db_pass"`

	Security SecurityConfiguration `mapstructure:"security"`
}

// Get carrega a configuração de um arquivo (yaml/json) com overrides por
// variáveis de ambiente prefixadas com TRAVEL_ (ex: TRAVEL_API_PORT=9000).
// Arquivo ausente não é erro: ficam os defaults, bons para dev e testes.
func Get(path string) Configuration {
	v := viper.New()
	if path == "" {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("TRAVEL")
	v.AutomaticEnv()

	// defaults (pra evitar nil/zero chato)
	v.SetDefault("api_port", "8080")
	v.SetDefault("database", "sqlite3")
	v.SetDefault("db_path", "db/database.db")
	v.SetDefault("security.jwt_secret", "CHANGE_ME")
	v.SetDefault("security.access_ttl_minutes", 24*60)
	v.SetDefault("security.refresh_code_len", 32)
	v.SetDefault("security.refresh_code_max_valid_days", 30)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}

	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		log.Fatal(err)
	}
	return c
}
