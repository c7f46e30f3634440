package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sounny/geoaiagents/internal/boundaries"
	"github.com/sounny/geoaiagents/internal/config"
	"github.com/sounny/geoaiagents/internal/logger"
	"github.com/sounny/geoaiagents/internal/pipeline"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file"`
	ISO        string `short:"I" long:"iso"    env:"BOUNDARY_ISO" description:"ISO 3166-1 alpha-3 country code" required:"true"`
	ADM        string `short:"a" long:"adm"    env:"BOUNDARY_ADM" description:"Administrative level" choice:"ADM0" choice:"ADM1" choice:"ADM2" choice:"ADM3" choice:"ADM4" choice:"ADM5" default:"ADM0"`
	Output     string `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
	Minify     bool   `short:"m" long:"minify" description:"Minify the GeoJSON before writing"`
	Table      bool   `short:"t" long:"table"  description:"Print a point table instead of the raw GeoJSON"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	baseURL := boundaries.DefaultBaseURL
	timeout := 15 * time.Second

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		if cfg.Boundaries.URL != "" {
			baseURL = cfg.Boundaries.URL
		}
		if cfg.Boundaries.Timeout > 0 {
			timeout = time.Duration(cfg.Boundaries.Timeout) * time.Second
		}
	}

	client := &http.Client{Timeout: timeout}

	log.Info().
		Str("iso", opts.ISO).
		Str("adm", opts.ADM).
		Str("url", baseURL).
		Msg("Fetching boundary")

	geoJSON, err := boundaries.Fetch(client, baseURL, opts.ISO, opts.ADM)
	if err != nil {
		log.Fatal().Err(err).Str("iso", opts.ISO).Str("adm", opts.ADM).Msg("Failed to fetch boundary")
	}

	output := geoJSON
	if opts.Table {
		output = pipeline.ParseGeoJSON(geoJSON)
	} else if opts.Minify {
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)

		output, err = m.String("application/json", geoJSON)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to minify GeoJSON")
		}
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(output), 0644); err != nil {
			log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output file")
		}
		log.Info().Str("path", opts.Output).Int("bytes", len(output)).Msg("Boundary written")
	} else {
		fmt.Println(output)
	}
}
