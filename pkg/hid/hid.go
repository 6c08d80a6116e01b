package hid

import "errors"

// ErrNotSupported is returned by transports that cannot perform a requested
// report operation, such as feature transfers over a raw interrupt endpoint.
var ErrNotSupported = errors.New("operation not supported by this transport")

// Device represents an opened HID device capable of report I/O. Buffers
// passed to Write carry the report ID in their first byte.
type Device interface {
	Write([]byte) (int, error) // send output report
	Read([]byte) (int, error)  // read input report
	Close() error
}

// Advanced exposes feature report transfers and descriptor-derived report
// lengths. Transports may support only the base Device interface; callers
// needing feature reports should type-assert and handle the miss.
type Advanced interface {
	// WriteFeature sends a feature report; data[0] is the report ID.
	WriteFeature(data []byte) error
	// ReadFeature requests a feature report by ID. The returned buffer
	// includes the leading report ID byte.
	ReadFeature(reportID byte) ([]byte, error)
	ReportLens() (inLen, outLen, featLen int)
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
	OpenVIDPID(vendorID, productID uint16) (Device, error)
}

// NewManager returns the OS-specific HID manager.
func NewManager() (Manager, error) {
	return newManager()
}
