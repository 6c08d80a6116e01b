package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/seagrayinc/gopid/internal/ffbusb"
	"github.com/seagrayinc/gopid/pkg/ffb"
	"github.com/seagrayinc/gopid/pkg/pid"
)

type CLI struct {
	Config kong.ConfigFlag `help:"Load settings from a YAML file." placeholder:"PATH"`

	VIDPID      string        `help:"Colon-separated hex vendor and product id." default:"346e:0002" name:"vidpid"`
	Gain        uint8         `help:"Device gain, 255 applies 100% force." default:"255"`
	Magnitude   int16         `help:"Constant force magnitude for the ramp loop." default:"1500"`
	Interval    time.Duration `help:"Delay between force writes." default:"10ms"`
	Ticks       int           `help:"Force writes per direction." default:"100"`
	Cycles      int           `help:"Back-and-forth cycles." default:"10"`
	EffectIndex uint8         `help:"Drive an already allocated effect slot instead of creating one." default:"0"`
	RawUSB      bool          `help:"Bypass the HID layer and write through a raw interrupt endpoint (no feature reports)."`
	Debug       bool          `help:"Enable debug logging."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("pidctl"),
		kong.Description("Drive a PID force feedback device through its HID reports."),
		kong.UsageOnError(),
		kong.Configuration(kongyaml.Loader),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	kctx.FatalIfErrorf(run(cli))
}

func run(cli CLI) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	vendorID, productID, err := parseVIDPID(cli.VIDPID)
	if err != nil {
		return err
	}

	wheel, err := open(cli, vendorID, productID)
	if err != nil {
		return err
	}
	defer wheel.Close()

	warnIf(wheel.Reset(), "device reset")
	warnIf(wheel.SetGain(cli.Gain), "device gain")

	if pool, err := wheel.Pool(); err != nil {
		slog.Warn("pool report unavailable", slog.Any("error", err))
	} else {
		slog.Info("effect pool",
			slog.Int("ram", int(pool.RAMPoolSize)),
			slog.Int("max effects", int(pool.SimultaneousEffectsMax)),
			slog.Bool("device managed", pool.DeviceManagedPool))
	}

	if cli.EffectIndex != 0 {
		wheel.UseEffect(cli.EffectIndex)
	} else {
		bl, err := wheel.CreateConstantForceEffect()
		if err != nil {
			return err
		}
		slog.Info("effect allocated",
			slog.Int("index", int(bl.Index)),
			slog.Int("ram available", int(bl.RAMPoolAvailable)))
	}

	warnIf(wheel.SetConstantForce(0), "constant force")
	warnIf(wheel.SetEnvelope(pid.Envelope{}), "envelope")
	warnIf(wheel.SetEffect(ffb.DefaultEffect()), "effect parameters")
	warnIf(wheel.Start(), "effect start")

	err = wheel.Ramp(ctx, ffb.RampConfig{
		Magnitude: cli.Magnitude,
		Interval:  cli.Interval,
		Ticks:     cli.Ticks,
		Cycles:    cli.Cycles,
	})
	if err != nil && ctx.Err() == nil {
		slog.Warn("ramp loop failed", slog.Any("error", err))
	}

	warnIf(wheel.StopAll(), "stop all effects")
	return nil
}

func open(cli CLI, vendorID, productID uint16) (*ffb.Wheel, error) {
	if cli.RawUSB {
		dev, err := ffbusb.Open(vendorID, productID)
		if err != nil {
			return nil, err
		}
		return ffb.NewWheel(dev), nil
	}

	wheel, err := ffb.Open(vendorID, productID)
	if err == nil {
		return wheel, nil
	}
	slog.Warn("HID open failed, falling back to raw USB", slog.Any("error", err))

	dev, ferr := ffbusb.Open(vendorID, productID)
	if ferr != nil {
		return nil, err
	}
	return ffb.NewWheel(dev), nil
}

func parseVIDPID(s string) (uint16, uint16, error) {
	ids := strings.Split(s, ":")
	if len(ids) != 2 {
		return 0, 0, fmt.Errorf("malformed vid:pid %q", s)
	}
	vid, err := strconv.ParseUint(ids[0], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed vendor id %q: %w", ids[0], err)
	}
	prod, err := strconv.ParseUint(ids[1], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed product id %q: %w", ids[1], err)
	}
	return uint16(vid), uint16(prod), nil
}

func warnIf(err error, what string) {
	if err != nil {
		slog.Warn("report send failed", slog.String("report", what), slog.Any("error", err))
	}
}
