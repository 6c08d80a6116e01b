package pid

import "encoding/binary"

const (
	poolDeviceManagedBit = 1 << 0
	poolSharedBlocksBit  = 1 << 1

	poolFlagMask = poolDeviceManagedBit | poolSharedBlocksBit
)

// Pool describes the device's effect memory, read as a feature report.
type Pool struct {
	RAMPoolSize            uint16
	SimultaneousEffectsMax byte
	DeviceManagedPool      bool
	SharedParameterBlocks  bool
}

func (r Pool) Encode() []byte {
	b := make([]byte, ReportLengths[PoolReportID])
	b[0] = PoolReportID
	binary.LittleEndian.PutUint16(b[1:3], r.RAMPoolSize)
	b[3] = r.SimultaneousEffectsMax
	if r.DeviceManagedPool {
		b[4] |= poolDeviceManagedBit
	}
	if r.SharedParameterBlocks {
		b[4] |= poolSharedBlocksBit
	}
	return b
}

func DecodePool(b []byte) (Pool, error) {
	if err := checkReport(b, PoolReportID); err != nil {
		return Pool{}, err
	}
	if b[4]&^byte(poolFlagMask) != 0 {
		return Pool{}, &InvalidFieldError{Field: "poolFlags", Reason: "padding bits set"}
	}

	return Pool{
		RAMPoolSize:            binary.LittleEndian.Uint16(b[1:3]),
		SimultaneousEffectsMax: b[3],
		DeviceManagedPool:      b[4]&poolDeviceManagedBit != 0,
		SharedParameterBlocks:  b[4]&poolSharedBlocksBit != 0,
	}, nil
}
