package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// RabbitMQ for publishing reservation lifecycle events
	RabbitURL           string `envconfig:"RABBIT_URL" required:"true"`
	ReservationExchange string `envconfig:"RESERVATION_EXCHANGE" default:"reservation.exchange"`
	// Observability
	OtelEnabled bool   `envconfig:"OTEL_ENABLED" default:"false"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
