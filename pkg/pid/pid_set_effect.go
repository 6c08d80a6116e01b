package pid

import "encoding/binary"

// Axis enable byte bit positions (offset 13). The three enable bits sit in
// the low bits with 5 bits of padding above them.
const (
	effectAxisEnableXBit     = 1 << 0
	effectAxisEnableYBit     = 1 << 1
	effectDirectionEnableBit = 1 << 2

	effectEnableMask = effectAxisEnableXBit | effectAxisEnableYBit | effectDirectionEnableBit
)

// Effect carries the common parameter block shared by every effect type.
// Directions are in centi-degrees.
type Effect struct {
	Index                    byte
	EffectType               byte
	Duration                 uint16
	TriggerRepeatInterval    uint16
	SamplePeriod             uint16
	StartDelay               uint16
	Gain                     byte
	TriggerButton            byte
	AxisEnableX              bool
	AxisEnableY              bool
	DirectionEnable          bool
	DirectionX               uint16
	DirectionY               uint16
	TypeSpecificBlockOffset1 uint16
	TypeSpecificBlockOffset2 uint16
}

func (r Effect) Encode() []byte {
	b := make([]byte, ReportLengths[SetEffectReportID])
	b[0] = SetEffectReportID
	b[1] = r.Index
	b[2] = r.EffectType
	binary.LittleEndian.PutUint16(b[3:5], r.Duration)
	binary.LittleEndian.PutUint16(b[5:7], r.TriggerRepeatInterval)
	binary.LittleEndian.PutUint16(b[7:9], r.SamplePeriod)
	binary.LittleEndian.PutUint16(b[9:11], r.StartDelay)
	b[11] = r.Gain
	b[12] = r.TriggerButton
	if r.AxisEnableX {
		b[13] |= effectAxisEnableXBit
	}
	if r.AxisEnableY {
		b[13] |= effectAxisEnableYBit
	}
	if r.DirectionEnable {
		b[13] |= effectDirectionEnableBit
	}
	binary.LittleEndian.PutUint16(b[14:16], r.DirectionX)
	binary.LittleEndian.PutUint16(b[16:18], r.DirectionY)
	binary.LittleEndian.PutUint16(b[18:20], r.TypeSpecificBlockOffset1)
	binary.LittleEndian.PutUint16(b[20:22], r.TypeSpecificBlockOffset2)
	return b
}

func DecodeEffect(b []byte) (Effect, error) {
	if err := checkReport(b, SetEffectReportID); err != nil {
		return Effect{}, err
	}
	if b[13]&^byte(effectEnableMask) != 0 {
		return Effect{}, &InvalidFieldError{Field: "enables", Reason: "padding bits set"}
	}

	return Effect{
		Index:                    b[1],
		EffectType:               b[2],
		Duration:                 binary.LittleEndian.Uint16(b[3:5]),
		TriggerRepeatInterval:    binary.LittleEndian.Uint16(b[5:7]),
		SamplePeriod:             binary.LittleEndian.Uint16(b[7:9]),
		StartDelay:               binary.LittleEndian.Uint16(b[9:11]),
		Gain:                     b[11],
		TriggerButton:            b[12],
		AxisEnableX:              b[13]&effectAxisEnableXBit != 0,
		AxisEnableY:              b[13]&effectAxisEnableYBit != 0,
		DirectionEnable:          b[13]&effectDirectionEnableBit != 0,
		DirectionX:               binary.LittleEndian.Uint16(b[14:16]),
		DirectionY:               binary.LittleEndian.Uint16(b[16:18]),
		TypeSpecificBlockOffset1: binary.LittleEndian.Uint16(b[18:20]),
		TypeSpecificBlockOffset2: binary.LittleEndian.Uint16(b[20:22]),
	}, nil
}
