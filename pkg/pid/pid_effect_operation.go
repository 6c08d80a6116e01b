package pid

// Operation byte bit positions (offset 2).
const (
	opStartBit     = 1 << 0
	opStartSoloBit = 1 << 1
	opStopBit      = 1 << 2

	opMask = opStartBit | opStartSoloBit | opStopBit
)

// EffectOperation starts or stops a loaded effect. The protocol expects at
// most one of Start, StartSolo and Stop to be asserted per report; the codec
// encodes whatever it is given and leaves that contract to the caller.
// StartSolo stops all other effects before starting this one.
type EffectOperation struct {
	Index     byte
	Start     bool
	StartSolo bool
	Stop      bool
	LoopCount byte
}

// Encode emits the 3-byte form and appends the loop count byte only when it
// is nonzero.
func (r EffectOperation) Encode() []byte {
	var op byte
	if r.Start {
		op |= opStartBit
	}
	if r.StartSolo {
		op |= opStartSoloBit
	}
	if r.Stop {
		op |= opStopBit
	}

	b := []byte{EffectOperationReportID, r.Index, op}
	if r.LoopCount != 0 {
		b = append(b, r.LoopCount)
	}
	return b
}

func DecodeEffectOperation(b []byte) (EffectOperation, error) {
	if err := checkReport(b, EffectOperationReportID); err != nil {
		return EffectOperation{}, err
	}
	if b[2]&^byte(opMask) != 0 {
		return EffectOperation{}, &InvalidFieldError{Field: "operation", Reason: "padding bits set"}
	}

	r := EffectOperation{
		Index:     b[1],
		Start:     b[2]&opStartBit != 0,
		StartSolo: b[2]&opStartSoloBit != 0,
		Stop:      b[2]&opStopBit != 0,
	}
	if len(b) > 3 {
		r.LoopCount = b[3]
	}
	return r, nil
}
