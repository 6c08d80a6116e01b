package pid

// DeviceGain scales the magnitude of all playing effects. 0xff applies 100%
// of the configured force.
type DeviceGain struct {
	Gain byte
}

func (r DeviceGain) Encode() []byte {
	return []byte{DeviceGainReportID, r.Gain}
}

func DecodeDeviceGain(b []byte) (DeviceGain, error) {
	if err := checkReport(b, DeviceGainReportID); err != nil {
		return DeviceGain{}, err
	}

	return DeviceGain{Gain: b[1]}, nil
}
