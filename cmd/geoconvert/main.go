package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sounny/geoaiagents/internal/geo"
	"github.com/sounny/geoaiagents/internal/parser"

	"github.com/jessevdk/go-flags"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input  string `short:"i" long:"in" description:"Input file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	From   string `short:"F" long:"from" description:"Input format" choice:"geojson" choice:"kml" choice:"csv" required:"true"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Minify bool   `short:"m" long:"minify" description:"Minify JSON output"`
}

func main() {
	var opts Options
	argParser := flags.NewParser(&opts, flags.Default)
	if _, err := argParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Minify && opts.Format != "json" {
		fmt.Fprintln(os.Stderr, "Error: --minify applies to json output only")
		os.Exit(1)
	}

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	text := string(inputData)

	var points []geo.Point
	switch opts.From {
	case "geojson":
		points = parser.GeoJSONPoints(text)
	case "kml":
		points = parser.KMLPoints(text)
	case "csv":
		points = parser.CSVPoints(text)
	}

	fc := geo.NewPointCollection(points)

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(fc)
	} else {
		outputData, err = json.MarshalIndent(fc, "", "  ")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	if opts.Minify {
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)

		compact, err := m.String("application/json", string(outputData))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error minifying output: %v\n", err)
			os.Exit(1)
		}
		outputData = []byte(compact)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully converted %d points to %s (format: %s)\n", len(points), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}
