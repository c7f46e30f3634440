package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sounny/geoaiagents/internal/config"
	"github.com/sounny/geoaiagents/internal/gazetteer"
	"github.com/sounny/geoaiagents/internal/logger"
	"github.com/sounny/geoaiagents/internal/pipeline"

	"github.com/charmbracelet/glamour"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Tool       string `short:"t" long:"tool"   env:"GEOTABLE_TOOL" description:"Coordinate tool to run" choice:"dms" choice:"distance" choice:"geojson" choice:"kml" choice:"csv" choice:"geocode" choice:"reverse" required:"true"`
	Input      string `short:"i" long:"in"     description:"Input file path. Reads from stdin if empty"`
	Output     string `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"   description:"Path to configuration file with gazetteer places"`
	Render     bool   `short:"r" long:"render" description:"Render the markdown table for the terminal"`
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

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to read input file")
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read stdin")
		}
	}
	text := string(inputData)

	var table string
	switch opts.Tool {
	case "dms":
		table = pipeline.ConvertPointsToDMS(text)
	case "distance":
		table = pipeline.ComputeDistances(text)
	case "geojson":
		table = pipeline.ParseGeoJSON(text)
	case "kml":
		table = pipeline.ParseKML(text)
	case "csv":
		table = pipeline.ParseCSV(text)
	case "geocode", "reverse":
		cfg := &config.Config{}
		if opts.ConfigFile != "" {
			cfg, err = config.Load(opts.ConfigFile)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to load configuration")
			}
		} else {
			log.Warn().Msg("No configuration file given, gazetteer is empty")
		}

		idx := gazetteer.NewIndex(cfg.Places)
		if opts.Tool == "geocode" {
			table = pipeline.GeocodeLocations(idx, text)
		} else {
			table = pipeline.ReverseGeocodeCoordinates(idx, cfg.ReverseMaxKm, text)
		}
	}

	if opts.Render {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(120),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize markdown renderer")
		}

		rendered, err := renderer.Render(table)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to render markdown")
		}
		table = rendered
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(table), 0644); err != nil {
			log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output file")
		}
		log.Info().Str("tool", opts.Tool).Str("path", opts.Output).Msg("Table written")
	} else {
		fmt.Println(table)
	}
}
