package pid

// DeviceControlFlags are the actuator and effect management bits of the PID
// Device Control report, one bit per control usage.
type DeviceControlFlags byte

const (
	EnableActuators  DeviceControlFlags = 1 << 0
	DisableActuators DeviceControlFlags = 1 << 1
	StopAllEffects   DeviceControlFlags = 1 << 2
	DeviceReset      DeviceControlFlags = 1 << 3 // clears paused state, enables actuators, frees all effects
	DevicePause      DeviceControlFlags = 1 << 4
	DeviceContinue   DeviceControlFlags = 1 << 5

	deviceControlFlagMask = EnableActuators | DisableActuators | StopAllEffects |
		DeviceReset | DevicePause | DeviceContinue
)

type DeviceControl struct {
	Flags DeviceControlFlags
}

func (r DeviceControl) Encode() []byte {
	return []byte{DeviceControlReportID, byte(r.Flags & deviceControlFlagMask)}
}

func DecodeDeviceControl(b []byte) (DeviceControl, error) {
	if err := checkReport(b, DeviceControlReportID); err != nil {
		return DeviceControl{}, err
	}
	if b[1]&^byte(deviceControlFlagMask) != 0 {
		return DeviceControl{}, &InvalidFieldError{Field: "flags", Reason: "undefined control bits set"}
	}

	return DeviceControl{Flags: DeviceControlFlags(b[1])}, nil
}
