package main

import (
	"flag"
	"os"

	"github.com/arhyth/finapigo"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg finapigo.Config
	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfgfl, err := os.Open(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening config file")
	}
	if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("error decoding config file")
	}

	lh, err := finapigo.NewLocalHelper(&cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting local helper")
	}
	if _, err = lh.InitDB(); err != nil {
		logger.Fatal().Err(err).Msg("error initializing database")
	}
	users, err := lh.SeedUsers(map[string]string{
		"Alice Demo": "alice@example.com",
		"Bob Demo":   "bob@example.com",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("error seeding users")
	}
	for email, id := range users {
		logger.Info().Str("email", email).Int64("id", id.Int64()).Msg("seeded user")
	}
}
