package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adsb2aprs/internal/beacon"
	"adsb2aprs/internal/config"
	"adsb2aprs/internal/logging"
	"adsb2aprs/internal/monitor"
	"adsb2aprs/internal/sbs"
	"adsb2aprs/internal/track"

	flag "github.com/spf13/pflag"
)

func main() {
	help := flag.BoolP("help", "h", false, "Show help message")
	configPath := flag.StringP("config", "c", "", "Path to YAML config file")
	feedAddr := flag.String("feed", "", "BaseStation feed address (host:port)")
	deliveryAddr := flag.String("delivery", "", "APRS-IS server address (host:port)")
	callsign := flag.String("callsign", "", "Delivery identity (callsign)")
	passcode := flag.String("passcode", "", "Delivery passcode")
	lat := flag.Float64("lat", 0, "Operator latitude (decimal degrees)")
	lon := flag.Float64("lon", 0, "Operator longitude (decimal degrees)")
	alt := flag.Int("alt", config.DefaultOperatorAltitudeFt, "Operator altitude (feet)")
	positionTTL := flag.Int("ttl", 0, "Position freshness window (seconds)")
	evictAfter := flag.Int("evict-after", 0, "Drop aircraft silent for this long (seconds)")
	circles := flag.Bool("circles", false, "Emit circle overlays for aircraft without a position fix")
	console := flag.Bool("console", false, "Show a live console view of tracked aircraft")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Log to this file instead of stderr")
	flag.Parse()

	if *help {
		fmt.Println("adsb2aprs - BaseStation to APRS beacon gateway")
		fmt.Println("\nUsage: adsb2aprs [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	applyFlags(&cfg, map[string]func(){
		"feed":        func() { cfg.Feed = *feedAddr },
		"delivery":    func() { cfg.Delivery = *deliveryAddr },
		"callsign":    func() { cfg.Callsign = *callsign },
		"passcode":    func() { cfg.Passcode = *passcode },
		"lat":         func() { cfg.Latitude = *lat },
		"lon":         func() { cfg.Longitude = *lon },
		"alt":         func() { cfg.AltitudeFt = *alt },
		"ttl":         func() { cfg.PositionTTLSeconds = *positionTTL },
		"evict-after": func() { cfg.EvictAfterSeconds = *evictAfter },
		"circles":     func() { cfg.Circles = *circles },
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(*logLevel, *logFile)

	if err := run(cfg, logger, *console); err != nil {
		logger.Error("exiting", slog.Any("err", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config, setters map[string]func()) {
	for name, set := range setters {
		if flag.CommandLine.Changed(name) {
			set()
		}
	}
}

func run(cfg config.Config, logger *logging.Logger, console bool) error {
	readTimeout := time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	writeTimeout := time.Duration(cfg.WriteTimeoutSeconds) * time.Second

	feed, err := sbs.Dial(cfg.Feed, readTimeout)
	if err != nil {
		return err
	}
	defer feed.Close()
	logger.Info("feed connected", slog.String("addr", cfg.Feed))

	sink, err := beacon.DialIS(cfg.Delivery, cfg.Callsign, cfg.Passcode, writeTimeout)
	if err != nil {
		return err
	}
	defer sink.Close()
	logger.Info("delivery connected",
		slog.String("addr", cfg.Delivery), slog.String("callsign", cfg.Callsign))

	store := track.NewStore()
	engine := track.NewEngine(store)
	composer := &beacon.Composer{
		Callsign: cfg.Callsign,
		Operator: beacon.Operator{
			Latitude:   cfg.Latitude,
			Longitude:  cfg.Longitude,
			AltitudeFt: cfg.AltitudeFt,
		},
		PositionTTL: time.Duration(cfg.PositionTTLSeconds) * time.Second,
		Circles:     cfg.Circles,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store.StartSweeping(ctx, time.Minute,
		time.Duration(cfg.EvictAfterSeconds)*time.Second,
		func(n int) { logger.Debug("evicted silent aircraft", slog.Int("count", n)) })

	if console {
		view, err := monitor.New(store, cancel)
		if err != nil {
			return err
		}
		go view.Run(ctx)
	}

	feed.Start()
	return pipeline(ctx, feed, engine, store, composer, sink, logger)
}

// pipeline is the single processing thread: one record is read, parsed,
// applied, and its reports delivered before the next record is touched.
func pipeline(ctx context.Context, feed *sbs.Client, engine *track.Engine,
	store *track.Store, composer *beacon.Composer, sink beacon.Sink,
	logger *logging.Logger) error {

	stats := time.NewTicker(time.Minute)
	defer stats.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down", slog.Int("tracked", store.Count()))
			return nil

		case err := <-feed.Errors():
			return err

		case <-stats.C:
			s := store.Stats()
			logger.Info("tracking",
				slog.Int("aircraft", s.Tracked),
				slog.Int("with_position", s.WithPosition),
				slog.Int("with_altitude", s.WithAltitude))

		case line, ok := <-feed.Lines():
			if !ok {
				return errors.New("feed connection closed")
			}
			if err := process(line, engine, store, composer, sink, logger); err != nil {
				return err
			}
		}
	}
}

func process(line string, engine *track.Engine, store *track.Store,
	composer *beacon.Composer, sink beacon.Sink, logger *logging.Logger) error {

	rec, err := sbs.Parse(line)
	if err != nil {
		// Malformed records are skipped without touching any state.
		logger.Debug("skipping record", slog.Any("err", err))
		return nil
	}

	now := time.Now()
	res, err := engine.Apply(rec, now)
	if err != nil {
		logger.Debug("skipping record", slog.Any("err", err))
		return nil
	}

	if res.TacticalAssigned {
		report := composer.Tactical(res.State)
		logger.Debug("tactical", slog.String("report", report))
		if err := sink.Submit(report); err != nil {
			return err
		}
	}

	if !res.Dirty {
		return nil
	}

	coverage := composer.Coverage(store.Stats())
	for _, report := range composer.Compose(res.State, res.Emergency, res.OnGround, now) {
		logger.Debug("report",
			slog.String("report", report),
			slog.Int("dirty", res.State.DirtyCount),
			slog.Float64("coverage", coverage))
		if err := sink.Submit(report); err != nil {
			return err
		}
	}
	store.MarkReported(res.State.Address)
	return nil
}
