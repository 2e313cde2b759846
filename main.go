package main

import (
	"context"
	"flag"
	"log"
	"os"

	"f1telemetrydashboard/pkg/config"
	"f1telemetrydashboard/pkg/openf1"
	"f1telemetrydashboard/pkg/reference"
	"f1telemetrydashboard/pkg/render"
	"f1telemetrydashboard/pkg/summary"
	"f1telemetrydashboard/pkg/telemetry"
	"f1telemetrydashboard/pkg/webserver"
)

func main() {
	dumpSummary := flag.Bool("summary", false, "build the race summary once, print it as tables and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// Abort if something is wrong
		log.Panic(err)
	}

	client := openf1.NewClient(cfg.OpenF1BaseURL, reference.SessionKey)
	builder := summary.NewBuilder(client)
	extractor := telemetry.NewExtractor(client)

	if *dumpSummary {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		defer cancel()
		render.RaceSummary(os.Stdout, builder.Build(ctx))
		return
	}

	log.Printf("race: %s (%s)", reference.RaceName, reference.RaceLocation)
	m := webserver.NewManager(cfg.WebServerAddress, cfg.RequestTimeout, builder, extractor)
	m.Serve()
}
