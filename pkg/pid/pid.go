// Package pid implements the force feedback report formats defined by the
// Device Class Definition for Physical Interface Devices (PID) Version 1.0
// from usb.org.
//
// Every report is a fixed-layout byte buffer whose first byte is the report
// ID. Multi-byte fields are little-endian. Encoding and decoding are pure
// functions and safe for concurrent use; transport I/O and report ordering
// are the caller's concern.
//
// Report IDs below match the descriptor of the device the demo flow was
// written against (a MOZA R9 wheel base). Other PID devices may number their
// reports differently; check the report descriptor before reuse.
package pid

import (
	"errors"
	"fmt"
)

const (
	SetEffectReportID        byte = 0x01
	SetEnvelopeReportID      byte = 0x02
	SetConstantForceReportID byte = 0x05
	EffectOperationReportID  byte = 0x0a
	DeviceControlReportID    byte = 0x0c
	DeviceGainReportID       byte = 0x0d
	CreateNewEffectReportID  byte = 0x11
	BlockLoadReportID        byte = 0x12
	PoolReportID             byte = 0x13
)

// ReportLengths maps each report ID to its encoded wire length in bytes,
// report ID included. EffectOperation reports may carry one extra byte for a
// nonzero loop count.
var ReportLengths = map[byte]int{
	SetEffectReportID:        22,
	SetEnvelopeReportID:      14,
	SetConstantForceReportID: 4,
	EffectOperationReportID:  3,
	DeviceControlReportID:    2,
	DeviceGainReportID:       2,
	CreateNewEffectReportID:  2,
	BlockLoadReportID:        5,
	PoolReportID:             5,
}

// ErrShortBuffer is returned by decode functions when the input holds fewer
// bytes than the report's minimum length.
var ErrShortBuffer = errors.New("buffer shorter than report length")

// InvalidFieldError reports a field whose value cannot appear in a
// well-formed report, such as an undefined flag bit.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func checkReport(b []byte, id byte) error {
	if min := ReportLengths[id]; len(b) < min {
		return fmt.Errorf("report 0x%02x: got %d bytes, want %d: %w", id, len(b), min, ErrShortBuffer)
	}
	if b[0] != id {
		return &InvalidFieldError{
			Field:  "reportID",
			Reason: fmt.Sprintf("got 0x%02x, want 0x%02x", b[0], id),
		}
	}
	return nil
}
