package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pietroro/ka3305p"
	ka3305p_serial "github.com/Pietroro/ka3305p/serial"
	"github.com/kellegous/poop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string        `yaml:"port"`
	Listen       string        `yaml:"listen"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

func loadConfig(path string) (*Config, error) {
	cfg := Config{
		Port:         "/dev/ttyUSB0",
		Listen:       ":9123",
		PollInterval: 5 * time.Second,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, poop.Chain(err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, poop.Chain(err)
		}
	}

	if cfg.PollInterval <= 0 {
		return nil, poop.Newf("poll_interval must be positive, got %s", cfg.PollInterval)
	}
	return &cfg, nil
}

var (
	voltageSetpoint = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "psu_voltage_setpoint_volts",
		Help: "Programmed voltage per channel.",
	}, []string{"channel"})

	outputVoltage = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "psu_output_voltage_volts",
		Help: "Measured output voltage per channel.",
	}, []string{"channel"})

	currentSetpoint = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "psu_current_setpoint_amps",
		Help: "Programmed current per channel.",
	}, []string{"channel"})

	outputCurrent = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "psu_output_current_amps",
		Help: "Measured output current per channel.",
	}, []string{"channel"})

	outputOn = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "psu_output_on",
		Help: "1 when the output is enabled.",
	})

	modeCV = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "psu_mode_cv",
		Help: "1 when the supply is in constant-voltage regulation.",
	})

	pollErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "psu_poll_errors_total",
		Help: "Polls that failed to read the instrument.",
	})
)

func main() {
	if err := run(context.Background()); err != nil {
		poop.HitFan(err)
	}
}

func run(ctx context.Context) error {
	var configPath string
	flag.StringVar(
		&configPath,
		"config",
		"",
		"path to the yaml config file",
	)
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return poop.Chain(err)
	}

	log, err := zap.NewProduction()
	if err != nil {
		return poop.Chain(err)
	}
	defer log.Sync()

	prometheus.MustRegister(
		voltageSetpoint,
		outputVoltage,
		currentSetpoint,
		outputCurrent,
		outputOn,
		modeCV,
		pollErrors,
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	psu, err := ka3305p_serial.Connect(ctx, cfg.Port)
	if err != nil {
		return poop.Chain(err)
	}
	defer psu.Close()

	idn, err := psu.Identify(ctx)
	if err != nil {
		return poop.Chain(err)
	}
	log.Info("connected",
		zap.String("port", cfg.Port),
		zap.String("instrument", idn))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:    cfg.Listen,
		Handler: mux,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return poop.Chain(err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return poop.Chain(server.Shutdown(context.Background()))
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.PollInterval)
		defer ticker.Stop()
		for {
			if err := poll(ctx, psu); err != nil {
				pollErrors.Inc()
				log.Warn("poll failed", zap.Error(err))
			}
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	log.Info("serving metrics", zap.String("listen", cfg.Listen))
	return g.Wait()
}

// poll reads the supply one query at a time. The link is half duplex with a
// single command in flight, so the reads are strictly sequential.
func poll(ctx context.Context, psu *ka3305p.Client) error {
	status, err := psu.GetStatus(ctx)
	if err != nil {
		return poop.Chain(err)
	}
	setBool(outputOn, status.Output == ka3305p.OutputOn)
	setBool(modeCV, status.Mode == ka3305p.ModeCV)

	for _, ch := range []ka3305p.Channel{ka3305p.Channel1, ka3305p.Channel2} {
		label := prometheus.Labels{"channel": ch.String()}

		v, err := psu.VoltageSetpoint(ctx, ch)
		if err != nil {
			return poop.Chain(err)
		}
		voltageSetpoint.With(label).Set(v)

		v, err = psu.ReadVoltage(ctx, ch)
		if err != nil {
			return poop.Chain(err)
		}
		outputVoltage.With(label).Set(v)

		a, err := psu.CurrentSetpoint(ctx, ch)
		if err != nil {
			return poop.Chain(err)
		}
		currentSetpoint.With(label).Set(a)

		a, err = psu.ReadCurrent(ctx, ch)
		if err != nil {
			return poop.Chain(err)
		}
		outputCurrent.With(label).Set(a)
	}

	return nil
}

func setBool(g prometheus.Gauge, on bool) {
	if on {
		g.Set(1)
	} else {
		g.Set(0)
	}
}
