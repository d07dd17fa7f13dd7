package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/arhyth/finapigo"
	"github.com/sony/gobreaker/v2"
	"gopkg.in/yaml.v3"

	"github.com/rs/zerolog"
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

	var repo finapigo.Repository
	switch {
	case cfg.Database.ConnectionString != "":
		repo, err = finapigo.NewPostgresEndpoint(cfg.Database.ConnectionString, &logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("error starting database")
		}
	case cfg.Database.SqlitePath != "":
		repo, err = finapigo.NewSqliteEndpoint(cfg.Database.SqlitePath)
		if err != nil {
			logger.Fatal().Err(err).Msg("error opening sqlite database")
		}
	default:
		logger.Warn().Msg("no database configured, using in-memory store")
		repo = finapigo.NewMemoryEndpoint()
	}

	svc, err := finapigo.NewService(repo, repo, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}

	write, read := cfg.Limits.Write, cfg.Limits.Read
	if write == 0 {
		write = 64
	}
	if read == 0 {
		read = 256
	}
	brkrs := finapigo.NewServiceBreaker(gobreaker.Settings{
		Name:    "finapigo",
		Timeout: 30 * time.Second,
	})
	var wrapped finapigo.Service = svc
	for _, mw := range []finapigo.Middleware{
		finapigo.NewCircuitBreakMiddleware(brkrs),
		finapigo.NewLimitMiddleware(finapigo.NewServiceLimits(write, read)),
		finapigo.NewValidationMiddleware(),
	} {
		wrapped = mw(wrapped)
	}
	hndlr := finapigo.NewHTTPHandler(wrapped, &logger)

	listen := cfg.Listen
	if listen == "" {
		listen = ":3000"
	}
	logger.Info().Str("listen", listen).Msg("starting HTTP server")
	if err = http.ListenAndServe(listen, hndlr); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server exited")
	}
}
