package pid

import "encoding/binary"

// Envelope shapes an effect's magnitude over time: ramp to AttackLevel over
// AttackTime, fade to FadeLevel over FadeTime. Times are in milliseconds.
type Envelope struct {
	Index       byte
	AttackLevel uint16
	FadeLevel   uint16
	AttackTime  uint32
	FadeTime    uint32
}

func (r Envelope) Encode() []byte {
	b := make([]byte, ReportLengths[SetEnvelopeReportID])
	b[0] = SetEnvelopeReportID
	b[1] = r.Index
	binary.LittleEndian.PutUint16(b[2:4], r.AttackLevel)
	binary.LittleEndian.PutUint16(b[4:6], r.FadeLevel)
	binary.LittleEndian.PutUint32(b[6:10], r.AttackTime)
	binary.LittleEndian.PutUint32(b[10:14], r.FadeTime)
	return b
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if err := checkReport(b, SetEnvelopeReportID); err != nil {
		return Envelope{}, err
	}

	return Envelope{
		Index:       b[1],
		AttackLevel: binary.LittleEndian.Uint16(b[2:4]),
		FadeLevel:   binary.LittleEndian.Uint16(b[4:6]),
		AttackTime:  binary.LittleEndian.Uint32(b[6:10]),
		FadeTime:    binary.LittleEndian.Uint32(b[10:14]),
	}, nil
}
