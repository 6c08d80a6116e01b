// Package ffbusb opens a force feedback device through karalabe/usb as a
// fallback when no HID layer is usable. Only interrupt OUT traffic works
// through this path: feature reports need control transfers the library does
// not expose, so effect allocation must happen over a real HID transport.
package ffbusb

import (
	"fmt"

	"github.com/karalabe/usb"

	"github.com/seagrayinc/gopid/pkg/hid"
)

// Device wraps a raw USB handle behind the hid.Device surface.
type Device struct {
	dev usb.Device
}

var _ hid.Device = (*Device)(nil)

// Open finds and opens the first device matching vendorID/productID.
func Open(vendorID, productID uint16) (*Device, error) {
	infos, err := usb.Enumerate(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("device not found (VID:0x%04X PID:0x%04X)", vendorID, productID)
	}

	dev, err := infos[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}

	return &Device{dev: dev}, nil
}

// Write sends one output report over the interrupt OUT endpoint. p includes
// the report ID at p[0].
func (d *Device) Write(p []byte) (int, error) {
	n, err := d.dev.Write(p)
	if err != nil {
		return n, fmt.Errorf("usb write: %w", err)
	}
	return n, nil
}

// Read reads one input report from the interrupt IN endpoint.
func (d *Device) Read(p []byte) (int, error) {
	n, err := d.dev.Read(p)
	if err != nil {
		return n, fmt.Errorf("usb read: %w", err)
	}
	return n, nil
}

func (d *Device) Close() error {
	return d.dev.Close()
}
