package pid

import "fmt"

type decoderFunc func([]byte) (any, error)

// wrappedDecoder is a helper to convert a typed decode function into a generic decoderFunc.
func wrappedDecoder[T any](f func([]byte) (T, error)) decoderFunc {
	return func(b []byte) (any, error) {
		return f(b)
	}
}

var decoderMap = map[byte]decoderFunc{
	SetEffectReportID:        wrappedDecoder(DecodeEffect),
	SetEnvelopeReportID:      wrappedDecoder(DecodeEnvelope),
	SetConstantForceReportID: wrappedDecoder(DecodeConstantForce),
	EffectOperationReportID:  wrappedDecoder(DecodeEffectOperation),
	DeviceControlReportID:    wrappedDecoder(DecodeDeviceControl),
	DeviceGainReportID:       wrappedDecoder(DecodeDeviceGain),
	CreateNewEffectReportID:  wrappedDecoder(DecodeCreateNewEffect),
	BlockLoadReportID:        wrappedDecoder(DecodeBlockLoad),
	PoolReportID:             wrappedDecoder(DecodePool),
}

// Decode dispatches on the leading report ID byte and returns the typed
// report value for it.
func Decode(b []byte) (any, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("empty report: %w", ErrShortBuffer)
	}

	dec, ok := decoderMap[b[0]]
	if !ok {
		return nil, &InvalidFieldError{
			Field:  "reportID",
			Reason: fmt.Sprintf("unknown report id 0x%02x", b[0]),
		}
	}

	return dec(b)
}
