package pid

import "encoding/binary"

// ConstantForce sets the signed magnitude of an allocated constant force
// effect. The device scales it by the current device gain.
type ConstantForce struct {
	Index     byte
	Magnitude int16
}

func (r ConstantForce) Encode() []byte {
	b := make([]byte, ReportLengths[SetConstantForceReportID])
	b[0] = SetConstantForceReportID
	b[1] = r.Index
	binary.LittleEndian.PutUint16(b[2:4], uint16(r.Magnitude))
	return b
}

func DecodeConstantForce(b []byte) (ConstantForce, error) {
	if err := checkReport(b, SetConstantForceReportID); err != nil {
		return ConstantForce{}, err
	}

	return ConstantForce{
		Index:     b[1],
		Magnitude: int16(binary.LittleEndian.Uint16(b[2:4])),
	}, nil
}
