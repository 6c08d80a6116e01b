package pid

// EffectTypeConstantForce is the ET Constant Force selector on the device the
// demo targets. Effect type values follow descriptor order, so they vary
// between devices.
const EffectTypeConstantForce byte = 0x01

// CreateNewEffect asks the device to allocate a parameter block for one
// effect of the given type. It is exchanged as a feature report; the device
// answers through the BlockLoad report.
type CreateNewEffect struct {
	EffectType byte
}

func (r CreateNewEffect) Encode() []byte {
	return []byte{CreateNewEffectReportID, r.EffectType}
}

func DecodeCreateNewEffect(b []byte) (CreateNewEffect, error) {
	if err := checkReport(b, CreateNewEffectReportID); err != nil {
		return CreateNewEffect{}, err
	}

	return CreateNewEffect{EffectType: b[1]}, nil
}
