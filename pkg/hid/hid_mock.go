package hid

import "fmt"

// MockDevice is an in-memory Device and Advanced implementation for tests.
// Output and feature writes are recorded in order; feature reads are served
// from scripted buffers keyed by report ID.
type MockDevice struct {
	Writes        [][]byte
	FeatureWrites [][]byte
	FeatureReads  map[byte][]byte
	InputReports  [][]byte
	Closed        bool
}

func NewMockDevice() *MockDevice {
	return &MockDevice{
		FeatureReads: make(map[byte][]byte),
	}
}

func (m *MockDevice) Write(p []byte) (int, error) {
	m.Writes = append(m.Writes, append([]byte(nil), p...))
	return len(p), nil
}

func (m *MockDevice) Read(p []byte) (int, error) {
	if len(m.InputReports) == 0 {
		return 0, fmt.Errorf("no input reports queued")
	}
	r := m.InputReports[0]
	m.InputReports = m.InputReports[1:]
	return copy(p, r), nil
}

func (m *MockDevice) WriteFeature(data []byte) error {
	m.FeatureWrites = append(m.FeatureWrites, append([]byte(nil), data...))
	return nil
}

func (m *MockDevice) ReadFeature(reportID byte) ([]byte, error) {
	r, ok := m.FeatureReads[reportID]
	if !ok {
		return nil, fmt.Errorf("no feature report scripted for id 0x%02x", reportID)
	}
	return append([]byte(nil), r...), nil
}

func (m *MockDevice) ReportLens() (int, int, int) {
	return 64, 64, 64
}

func (m *MockDevice) Close() error {
	m.Closed = true
	return nil
}
