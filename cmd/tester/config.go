package main

import "github.com/kelseyhightower/envconfig"

type Config struct {
	// TESTER_URL is the hub base URL, http or https
	URL      string `envconfig:"TESTER_URL" default:"http://localhost:8080"`
	Token    string `envconfig:"TESTER_TOKEN"`
	Email    string `envconfig:"TESTER_EMAIL"`
	Password string `envconfig:"TESTER_PASSWORD"`
	// TESTER_COLOURS enables colorized event output
	Colours bool `envconfig:"TESTER_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
