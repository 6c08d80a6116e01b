package pid

import "encoding/binary"

// Block load status values, from the PID Block Load Status usage.
const (
	loadStatusSuccess byte = 0x01
	loadStatusFull    byte = 0x02
	loadStatusError   byte = 0x03
)

// BlockLoadOutcome classifies the device's answer to a CreateNewEffect
// request.
type BlockLoadOutcome int

const (
	BlockLoadSuccess BlockLoadOutcome = iota
	BlockLoadEffectDenied
	BlockLoadFull
	BlockLoadError
	BlockLoadUnknown
)

func (o BlockLoadOutcome) String() string {
	switch o {
	case BlockLoadSuccess:
		return "success"
	case BlockLoadEffectDenied:
		return "effect denied"
	case BlockLoadFull:
		return "memory full"
	case BlockLoadError:
		return "error"
	}
	return "unknown"
}

// BlockLoad is the device's response to CreateNewEffect, read as a feature
// report. Index is the device-assigned effect slot (0 means the effect could
// not be allocated) and must be carried in every later report that targets
// the effect.
type BlockLoad struct {
	Index            byte
	LoadStatus       byte
	RAMPoolAvailable uint16
}

// Outcome classifies the load status. An index of zero always means the
// allocation was denied, whatever the status byte claims.
func (r BlockLoad) Outcome() BlockLoadOutcome {
	if r.Index == 0 {
		return BlockLoadEffectDenied
	}

	switch r.LoadStatus {
	case loadStatusSuccess:
		return BlockLoadSuccess
	case loadStatusFull:
		return BlockLoadFull
	case loadStatusError:
		return BlockLoadError
	}
	return BlockLoadUnknown
}

func (r BlockLoad) Encode() []byte {
	b := make([]byte, ReportLengths[BlockLoadReportID])
	b[0] = BlockLoadReportID
	b[1] = r.Index
	b[2] = r.LoadStatus
	binary.LittleEndian.PutUint16(b[3:5], r.RAMPoolAvailable)
	return b
}

func DecodeBlockLoad(b []byte) (BlockLoad, error) {
	if err := checkReport(b, BlockLoadReportID); err != nil {
		return BlockLoad{}, err
	}

	return BlockLoad{
		Index:            b[1],
		LoadStatus:       b[2],
		RAMPoolAvailable: binary.LittleEndian.Uint16(b[3:5]),
	}, nil
}
