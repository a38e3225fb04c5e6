package main

import (
	"flag"
	"os"

	"github.com/fivestars/bankapp"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg bankapp.Config
	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfgfl, err := os.Open(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening config file")
	}
	if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("error decoding config file")
	}

	lh, err := bankapp.NewLocalHelper(&cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening database")
	}
	defer lh.Close()

	if err = lh.PrepareAdmin(); err != nil {
		logger.Fatal().Err(err).Msg("error seeding admin credential")
	}
	logger.Info().Str("username", cfg.Admin.Username).Msg("admin credential seeded")
}
