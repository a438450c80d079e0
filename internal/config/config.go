package config

import (
	"github.com/spf13/viper"
)

// Config carries everything main needs to wire the service. There are no
// ambient singletons: Load is called once at startup and the result is passed
// down explicitly.
type Config struct {
	Addr        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string

	// DefaultLowStock is the threshold assigned to items created without an
	// explicit low-stock level.
	DefaultLowStock int

	SMTP SMTP
}

// SMTP holds the outbound mail settings for low-stock alerts. An empty Host,
// User or Password disables delivery; the gateway reports that instead of
// failing the inventory operation.
type SMTP struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// Load reads configuration from the environment, falling back to an optional
// inventree.yaml in the working directory.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("default_low_stock", 1)
	v.SetDefault("smtp_port", "587")

	v.SetConfigName("inventree")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}
	v.AutomaticEnv()

	return Config{
		Addr:            v.GetString("addr"),
		DatabaseURL:     v.GetString("database_url"),
		RedisAddr:       v.GetString("redis_addr"),
		JWTSecret:       v.GetString("jwt_secret"),
		DefaultLowStock: v.GetInt("default_low_stock"),
		SMTP: SMTP{
			Host:     v.GetString("smtp_host"),
			Port:     v.GetString("smtp_port"),
			User:     v.GetString("smtp_user"),
			Password: v.GetString("smtp_pass"),
			From:     v.GetString("alert_from"),
		},
	}, nil
}
