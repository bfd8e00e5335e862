package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"

	"github.com/robmorgan/helios/config"
	"github.com/robmorgan/helios/dmx"
	"github.com/robmorgan/helios/engine"
	"github.com/robmorgan/helios/logger"
	"github.com/robmorgan/helios/monitor"
	"github.com/robmorgan/helios/surface"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	ctx := context.Background()
	Run(ctx, *cfgPath)
}

// Run boots the rig: config, patch, transport, OSC surface, render loop.
func Run(ctx context.Context, cfgPath string) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logger.GetProjectLogger()

	log.Infof("Loading config from %s...", cfgPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("error loading config. err='%v'", err)
	}

	log.Info("Patching fixtures...")
	patches, table, err := cfg.Patch()
	if err != nil {
		log.Fatalf("error patching fixtures. err='%v'", err)
	}
	log.Infof("Patched %d fixtures exposing %d controls", len(patches), table.Len())

	// pick the DMX output
	var tx dmx.Transmitter
	if cfg.Debug {
		log.Info("Debug mode: logging frames instead of sending DMX")
		tx = &dmx.LogWriter{Log: log}
	} else {
		log.Infof("Connecting to OLA at %s...", cfg.OLA.Address)
		tx, err = dmx.NewOLAWriter(cfg.OLA.Address, cfg.OLA.Universe)
		if err != nil {
			log.Fatalf("could not open DMX output. err='%v'", err)
		}
	}

	eng, err := engine.New(patches, table, tx, engine.Options{
		Period:         cfg.Period(),
		QueueSize:      cfg.QueueSize,
		TxFailureLimit: cfg.TxFailureLimit,
	})
	if err != nil {
		log.Fatalf("error building render loop. err='%v'", err)
	}

	listener, err := surface.NewListener(cfg.OSC.Addr(), table.IDs(), eng.Submit)
	if err != nil {
		log.Fatalf("error building OSC listener. err='%v'", err)
	}

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := eng.Run(ctx); err != nil {
			log.Errorf("render loop exited with error: %v", err)
		}
	}()

	go func() {
		if err := listener.ListenAndServe(); err != nil {
			log.Errorf("OSC listener stopped: %v", err)
		}
	}()

	// handle CTRL+C interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	go func() {
		<-quit
		log.Info("shutting down helios")
		eng.Shutdown()
	}()

	if cfg.Monitor {
		// the monitor owns the terminal until the diagnostic stream closes
		if err := monitor.Run(eng.Diagnostics(), eng.Shutdown); err != nil {
			log.Errorf("monitor exited with error: %v", err)
		}
	}

	wg.Wait()
	if err := listener.Close(); err != nil {
		log.Errorf("error closing OSC listener: %v", err)
	}
}
