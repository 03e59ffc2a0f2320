package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"server": map[string]interface{}{
			"addr": ":3001",
		},
		"db": map[string]interface{}{
			"host":     "localhost",
			"port":     5432,
			"user":     "postgres",
			"password": "",
			"name":     "reminders",
			"sslmode":  "disable",
		},
		"sweep": map[string]interface{}{
			"interval": 60, // check for due tasks every minute
		},
		"twilio": map[string]interface{}{
			"sid":   "",
			"token": "",
			"from":  "",
		},
		"smtp": map[string]interface{}{
			"host":     "smtp.gmail.com",
			"port":     587,
			"user":     "",
			"password": "",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
