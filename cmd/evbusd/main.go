package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"evbus/internal/config"
	"evbus/internal/httpapi"
	"evbus/pkg/bus"
)

// tickEvent is the name the demo publishes under.
const tickEvent = "tick"

const (
	defaultAddr      = ":8080"
	defaultTickEvery = 100 * time.Millisecond
	defaultLogLevel  = "info"
)

// options are the fully resolved runtime settings: defaults, then config
// file values, then explicitly set flags.
type options struct {
	addr      string
	tickEvery time.Duration
	tickCount int
	logLevel  string
}

// mergeConfig applies file values underneath explicitly set flags.
func mergeConfig(cfg config.Config, opts options, changed func(string) bool) (options, error) {
	if !changed("addr") && cfg.Addr != "" {
		opts.addr = cfg.Addr
	}
	if !changed("tick-every") && cfg.TickEvery != "" {
		d, err := time.ParseDuration(cfg.TickEvery)
		if err != nil {
			return opts, fmt.Errorf("tick_every: %w", err)
		}
		opts.tickEvery = d
	}
	if !changed("tick-count") && cfg.TickCount != 0 {
		opts.tickCount = cfg.TickCount
	}
	if !changed("log-level") && cfg.LogLevel != "" {
		opts.logLevel = cfg.LogLevel
	}
	if opts.tickEvery <= 0 {
		return opts, fmt.Errorf("tick interval must be positive, got %s", opts.tickEvery)
	}
	return opts, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		opts    = options{
			addr:      defaultAddr,
			tickEvery: defaultTickEvery,
			logLevel:  defaultLogLevel,
		}
	)
	root := &cobra.Command{
		Use:           "evbusd",
		Short:         "Demo daemon posting tick events on the evbus dispatcher",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Config
			if cfgPath != "" {
				var err error
				cfg, err = config.Load(cfgPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			resolved, err := mergeConfig(cfg, opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return run(resolved)
		},
	}
	root.Flags().StringVar(&cfgPath, "config", "", "optional config file (.toml/.yaml/.json)")
	root.Flags().StringVar(&opts.addr, "addr", opts.addr, "HTTP listen address for the ops endpoints")
	root.Flags().DurationVar(&opts.tickEvery, "tick-every", opts.tickEvery, "interval between posted tick events")
	root.Flags().IntVar(&opts.tickCount, "tick-count", 0, "tick events to post before exiting (0 = run until signaled)")
	root.Flags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level: debug|info|warn|error")
	return root
}

func run(opts options) error {
	logger := newLogger(opts.logLevel)
	httpapi.SetLogger(logger)

	// All registration happens here, before any goroutine starts; from this
	// point on the bus registry is only read.
	b := bus.NewBus()
	rec := bus.NewRecorder()
	if err := b.SubscribeAll(tickEvent, []bus.Subscriber{
		&ticker{log: logger},
		rec,
	}); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	svc := newBusService(b, rec)

	srv := &http.Server{Addr: opts.addr, Handler: httpapi.NewMux(svc)}
	go func() {
		logger.Info().Str("addr", opts.addr).Msg("evbusd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	svc.markReady()
	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		tk := time.NewTicker(opts.tickEvery)
		defer tk.Stop()
		for i := 0; opts.tickCount == 0 || i < opts.tickCount; i++ {
			select {
			case <-tk.C:
			case <-quit:
				return
			}
			if err := svc.post(bus.NewEvent(tickEvent, i)); err != nil {
				logger.Error().Err(err).Msg("post failed, stopping")
				return
			}
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM), or exit once the tick budget is
	// spent.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
		close(quit)
		<-done
	case <-done:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "evbusd:", err)
		os.Exit(1)
	}
}
