// Package ffb drives a PID force feedback device over a HID transport,
// issuing the report sequence the protocol expects: device reset, device
// gain, effect allocation through the CreateNewEffect/BlockLoad feature
// exchange, effect parameters, and effect operations.
package ffb

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/seagrayinc/gopid/pkg/hid"
	"github.com/seagrayinc/gopid/pkg/pid"
)

// VID/PID for the MOZA R9 wheel base the demo flow was written against.
const (
	MozaVID   uint16 = 0x346e
	MozaR9PID uint16 = 0x0002
)

type report interface {
	Encode() []byte
}

// Wheel is one opened force feedback device holding at most one allocated
// effect. It is not safe for concurrent use.
type Wheel struct {
	dev   hid.Device
	index byte
}

// Open opens the first HID device matching vendorID/productID.
func Open(vendorID, productID uint16) (*Wheel, error) {
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, fmt.Errorf("hid manager: %w", err)
	}

	dev, err := mgr.OpenVIDPID(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}

	return NewWheel(dev), nil
}

// NewWheel wraps an already opened device.
func NewWheel(dev hid.Device) *Wheel {
	return &Wheel{dev: dev}
}

func (w *Wheel) Close() error {
	return w.dev.Close()
}

// EffectIndex returns the device-assigned slot of the allocated effect, or 0
// when no effect has been created yet.
func (w *Wheel) EffectIndex() byte {
	return w.index
}

func (w *Wheel) write(r report) error {
	b := r.Encode()
	slog.Debug("sending report", slog.String("bytes", EncodeReportToString(b)))

	if _, err := w.dev.Write(b); err != nil {
		return fmt.Errorf("write report 0x%02x: %w", b[0], err)
	}
	return nil
}

// Reset clears any paused condition, enables all actuators and frees every
// effect in device memory. The effect index, if any, becomes stale.
func (w *Wheel) Reset() error {
	w.index = 0
	return w.write(pid.DeviceControl{Flags: pid.DeviceReset})
}

// StopAll stops every playing effect without freeing them.
func (w *Wheel) StopAll() error {
	return w.write(pid.DeviceControl{Flags: pid.StopAllEffects})
}

// SetGain sets the device gain; 0xff applies 100% of the configured force.
func (w *Wheel) SetGain(gain byte) error {
	return w.write(pid.DeviceGain{Gain: gain})
}

// CreateEffect asks the device to allocate an effect of the given type and
// reads back the block load response carrying the assigned index. The
// transport must support feature reports.
func (w *Wheel) CreateEffect(effectType byte) (pid.BlockLoad, error) {
	adv, ok := w.dev.(hid.Advanced)
	if !ok {
		return pid.BlockLoad{}, fmt.Errorf("create effect: %w", hid.ErrNotSupported)
	}

	if err := adv.WriteFeature(pid.CreateNewEffect{EffectType: effectType}.Encode()); err != nil {
		return pid.BlockLoad{}, fmt.Errorf("create new effect: %w", err)
	}

	buf, err := adv.ReadFeature(pid.BlockLoadReportID)
	if err != nil {
		return pid.BlockLoad{}, fmt.Errorf("read block load: %w", err)
	}
	slog.Debug("block load response", slog.String("bytes", EncodeReportToString(buf)))

	bl, err := pid.DecodeBlockLoad(buf)
	if err != nil {
		return pid.BlockLoad{}, fmt.Errorf("decode block load: %w", err)
	}

	if outcome := bl.Outcome(); outcome != pid.BlockLoadSuccess {
		return bl, fmt.Errorf("effect allocation failed: %s", outcome)
	}

	w.index = bl.Index
	return bl, nil
}

// CreateConstantForceEffect allocates an ET Constant Force effect.
func (w *Wheel) CreateConstantForceEffect() (pid.BlockLoad, error) {
	return w.CreateEffect(pid.EffectTypeConstantForce)
}

// UseEffect targets an already allocated effect slot instead of creating
// one, for transports that cannot carry the feature report exchange.
func (w *Wheel) UseEffect(index byte) {
	w.index = index
}

func (w *Wheel) checkIndex() error {
	if w.index == 0 {
		return fmt.Errorf("no effect allocated")
	}
	return nil
}

// SetConstantForce updates the signed magnitude of the allocated effect.
func (w *Wheel) SetConstantForce(magnitude int16) error {
	if err := w.checkIndex(); err != nil {
		return err
	}
	return w.write(pid.ConstantForce{Index: w.index, Magnitude: magnitude})
}

// SetEnvelope applies attack/fade shaping to the allocated effect. The Index
// field of env is overwritten with the device-assigned one.
func (w *Wheel) SetEnvelope(env pid.Envelope) error {
	if err := w.checkIndex(); err != nil {
		return err
	}
	env.Index = w.index
	return w.write(env)
}

// SetEffect writes the common effect parameter block. The Index field of e is
// overwritten with the device-assigned one.
func (w *Wheel) SetEffect(e pid.Effect) error {
	if err := w.checkIndex(); err != nil {
		return err
	}
	e.Index = w.index
	return w.write(e)
}

// DefaultEffect returns the effect parameters the demo flow uses: an
// infinite-duration constant force at full gain, direction along X.
func DefaultEffect() pid.Effect {
	return pid.Effect{
		EffectType:      pid.EffectTypeConstantForce,
		Duration:        0xffff,
		Gain:            0xff,
		TriggerButton:   0xff,
		DirectionEnable: true,
		DirectionX:      0x2328, // centi-degrees
	}
}

// Start begins playback of the allocated effect.
func (w *Wheel) Start() error {
	if err := w.checkIndex(); err != nil {
		return err
	}
	return w.write(pid.EffectOperation{Index: w.index, Start: true})
}

// StartSolo begins playback after stopping all other effects.
func (w *Wheel) StartSolo() error {
	if err := w.checkIndex(); err != nil {
		return err
	}
	return w.write(pid.EffectOperation{Index: w.index, StartSolo: true})
}

// Stop halts playback of the allocated effect.
func (w *Wheel) Stop() error {
	if err := w.checkIndex(); err != nil {
		return err
	}
	return w.write(pid.EffectOperation{Index: w.index, Stop: true})
}

// Pool reads the device's effect memory description. The transport must
// support feature reports.
func (w *Wheel) Pool() (pid.Pool, error) {
	adv, ok := w.dev.(hid.Advanced)
	if !ok {
		return pid.Pool{}, fmt.Errorf("read pool: %w", hid.ErrNotSupported)
	}

	buf, err := adv.ReadFeature(pid.PoolReportID)
	if err != nil {
		return pid.Pool{}, fmt.Errorf("read pool: %w", err)
	}

	return pid.DecodePool(buf)
}

// EncodeReportToString renders a report buffer as dash-separated hex for
// logging.
func EncodeReportToString(b []byte) string {
	hexDigits := hex.EncodeToString(b)
	var builder strings.Builder
	for i, r := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
