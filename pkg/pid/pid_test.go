package pid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeVectors(t *testing.T) {
	type testCase struct {
		name     string
		report   interface{ Encode() []byte }
		expected []byte
	}

	cases := []testCase{
		{
			name:     "device control reset",
			report:   DeviceControl{Flags: DeviceReset},
			expected: []byte{0x0c, 0b00001000},
		},
		{
			name:     "device control stop all",
			report:   DeviceControl{Flags: StopAllEffects},
			expected: []byte{0x0c, 0b00000100},
		},
		{
			name:     "device gain full force",
			report:   DeviceGain{Gain: 255},
			expected: []byte{0x0d, 0xff},
		},
		{
			name:     "create constant force effect",
			report:   CreateNewEffect{EffectType: EffectTypeConstantForce},
			expected: []byte{0x11, 0x01},
		},
		{
			name:     "constant force positive",
			report:   ConstantForce{Index: 1, Magnitude: 1500},
			expected: []byte{0x05, 0x01, 0xdc, 0x05},
		},
		{
			name:     "constant force negative two's complement",
			report:   ConstantForce{Index: 1, Magnitude: -1500},
			expected: []byte{0x05, 0x01, 0x24, 0xfa},
		},
		{
			name:     "effect operation start",
			report:   EffectOperation{Index: 5, Start: true},
			expected: []byte{0x0a, 0x05, 0b00000001},
		},
		{
			name:     "effect operation stop",
			report:   EffectOperation{Index: 5, Stop: true},
			expected: []byte{0x0a, 0x05, 0b00000100},
		},
		{
			name:     "effect operation with loop count",
			report:   EffectOperation{Index: 2, StartSolo: true, LoopCount: 3},
			expected: []byte{0x0a, 0x02, 0b00000010, 0x03},
		},
		{
			name:   "envelope",
			report: Envelope{Index: 1, AttackLevel: 0x1234, FadeLevel: 0x5678, AttackTime: 0x9abcdef0, FadeTime: 0x01020304},
			expected: []byte{
				0x02, 0x01,
				0x34, 0x12,
				0x78, 0x56,
				0xf0, 0xde, 0xbc, 0x9a,
				0x04, 0x03, 0x02, 0x01,
			},
		},
		{
			name: "effect with demo parameters",
			report: Effect{
				Index:           1,
				EffectType:      EffectTypeConstantForce,
				Duration:        0xffff,
				Gain:            0xff,
				TriggerButton:   0xff,
				DirectionEnable: true,
				DirectionX:      0x2328,
			},
			expected: []byte{
				0x01, 0x01, 0x01,
				0xff, 0xff,
				0x00, 0x00,
				0x00, 0x00,
				0x00, 0x00,
				0xff, 0xff,
				0b00000100,
				0x28, 0x23,
				0x00, 0x00,
				0x00, 0x00,
				0x00, 0x00,
			},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.report.Encode())

			// Encoding must be deterministic.
			assert.Equal(t, tt.report.Encode(), tt.report.Encode())
		})
	}
}

func TestEncodedLengths(t *testing.T) {
	reports := map[byte]interface{ Encode() []byte }{
		SetEffectReportID:        Effect{},
		SetEnvelopeReportID:      Envelope{},
		SetConstantForceReportID: ConstantForce{},
		EffectOperationReportID:  EffectOperation{},
		DeviceControlReportID:    DeviceControl{},
		DeviceGainReportID:       DeviceGain{},
		CreateNewEffectReportID:  CreateNewEffect{},
		BlockLoadReportID:        BlockLoad{},
		PoolReportID:             Pool{},
	}

	for id, r := range reports {
		b := r.Encode()
		assert.Equal(t, ReportLengths[id], len(b), "report 0x%02x", id)
		assert.Equal(t, id, b[0], "report 0x%02x", id)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("device control exhaustive", func(t *testing.T) {
		for flags := 0; flags < 0x40; flags++ {
			in := DeviceControl{Flags: DeviceControlFlags(flags)}
			out, err := DecodeDeviceControl(in.Encode())
			assert.NoError(t, err)
			assert.Equal(t, in, out)
		}
	})

	t.Run("device gain exhaustive", func(t *testing.T) {
		for gain := 0; gain <= 0xff; gain++ {
			in := DeviceGain{Gain: byte(gain)}
			out, err := DecodeDeviceGain(in.Encode())
			assert.NoError(t, err)
			assert.Equal(t, in, out)
		}
	})

	u16s := []uint16{0, 1, 0x7fff, 0xffff}
	u32s := []uint32{0, 1, 0x7fffffff, 0xffffffff}
	i16s := []int16{-32768, -1500, -1, 0, 1, 1500, 32767}

	t.Run("constant force", func(t *testing.T) {
		for _, m := range i16s {
			in := ConstantForce{Index: 1, Magnitude: m}
			out, err := DecodeConstantForce(in.Encode())
			assert.NoError(t, err)
			assert.Equal(t, in, out)
		}
	})

	t.Run("envelope", func(t *testing.T) {
		for _, lvl := range u16s {
			for _, ms := range u32s {
				in := Envelope{Index: 3, AttackLevel: lvl, FadeLevel: ^lvl, AttackTime: ms, FadeTime: ^ms}
				out, err := DecodeEnvelope(in.Encode())
				assert.NoError(t, err)
				assert.Equal(t, in, out)
			}
		}
	})

	t.Run("effect", func(t *testing.T) {
		for _, v := range u16s {
			in := Effect{
				Index:                    2,
				EffectType:               EffectTypeConstantForce,
				Duration:                 v,
				TriggerRepeatInterval:    ^v,
				SamplePeriod:             v,
				StartDelay:               ^v,
				Gain:                     byte(v),
				TriggerButton:            byte(^v),
				AxisEnableX:              v&1 != 0,
				AxisEnableY:              v&2 != 0,
				DirectionEnable:          true,
				DirectionX:               v,
				DirectionY:               ^v,
				TypeSpecificBlockOffset1: v,
				TypeSpecificBlockOffset2: ^v,
			}
			out, err := DecodeEffect(in.Encode())
			assert.NoError(t, err)
			assert.Equal(t, in, out)
		}
	})

	t.Run("effect operation", func(t *testing.T) {
		ops := []EffectOperation{
			{Index: 1, Start: true},
			{Index: 1, StartSolo: true},
			{Index: 1, Stop: true},
			{Index: 255, Start: true, LoopCount: 255},
			{Index: 7},
		}
		for _, in := range ops {
			out, err := DecodeEffectOperation(in.Encode())
			assert.NoError(t, err)
			assert.Equal(t, in, out)
		}
	})

	t.Run("create new effect", func(t *testing.T) {
		in := CreateNewEffect{EffectType: 0x42}
		out, err := DecodeCreateNewEffect(in.Encode())
		assert.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("block load", func(t *testing.T) {
		for _, pool := range u16s {
			in := BlockLoad{Index: 9, LoadStatus: loadStatusSuccess, RAMPoolAvailable: pool}
			out, err := DecodeBlockLoad(in.Encode())
			assert.NoError(t, err)
			assert.Equal(t, in, out)
		}
	})

	t.Run("pool", func(t *testing.T) {
		in := Pool{RAMPoolSize: 0xffff, SimultaneousEffectsMax: 16, DeviceManagedPool: true}
		out, err := DecodePool(in.Encode())
		assert.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestDecodeBlockLoadOutcomes(t *testing.T) {
	type testCase struct {
		name    string
		raw     []byte
		index   byte
		ramPool uint16
		outcome BlockLoadOutcome
	}

	cases := []testCase{
		{
			name:    "effect denied when index is zero",
			raw:     []byte{0x12, 0x00, 0x00, 0x00, 0x00},
			index:   0,
			outcome: BlockLoadEffectDenied,
		},
		{
			name:    "success with pool counter",
			raw:     []byte{0x12, 0x05, 0x01, 0x10, 0x00},
			index:   5,
			ramPool: 16,
			outcome: BlockLoadSuccess,
		},
		{
			name:    "memory full",
			raw:     []byte{0x12, 0x01, 0x02, 0x00, 0x00},
			index:   1,
			outcome: BlockLoadFull,
		},
		{
			name:    "device error",
			raw:     []byte{0x12, 0x01, 0x03, 0x00, 0x00},
			index:   1,
			outcome: BlockLoadError,
		},
		{
			name:    "unknown status carried through",
			raw:     []byte{0x12, 0x01, 0x7e, 0x00, 0x00},
			index:   1,
			outcome: BlockLoadUnknown,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			bl, err := DecodeBlockLoad(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.index, bl.Index)
			assert.Equal(t, tt.ramPool, bl.RAMPoolAvailable)
			assert.Equal(t, tt.outcome, bl.Outcome())
		})
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	shorts := map[string][]byte{
		"set effect":       {0x01, 0x01, 0x01},
		"envelope":         {0x02, 0x01},
		"constant force":   {0x05, 0x01, 0xdc},
		"effect operation": {0x0a, 0x05},
		"device control":   {0x0c},
		"device gain":      {0x0d},
		"create effect":    {0x11},
		"block load":       {0x12, 0x05, 0x01},
		"pool":             {0x13, 0x00, 0x01},
	}

	for name, raw := range shorts {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(raw)
			assert.ErrorIs(t, err, ErrShortBuffer)
		})
	}

	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestDecodeInvalidField(t *testing.T) {
	var fieldErr *InvalidFieldError

	_, err := DecodeDeviceControl([]byte{0x0c, 0b01000000})
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "flags", fieldErr.Field)

	_, err = DecodeEffectOperation([]byte{0x0a, 0x05, 0b00001000})
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "operation", fieldErr.Field)

	effect := Effect{Index: 1}.Encode()
	effect[13] |= 0b10000000
	_, err = DecodeEffect(effect)
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "enables", fieldErr.Field)

	// Mismatched report ID is caught before field extraction.
	_, err = DecodeDeviceGain([]byte{0x0c, 0xff})
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "reportID", fieldErr.Field)
}

func TestDecodeDispatch(t *testing.T) {
	v, err := Decode(ConstantForce{Index: 1, Magnitude: 1500}.Encode())
	assert.NoError(t, err)
	assert.Equal(t, ConstantForce{Index: 1, Magnitude: 1500}, v)

	v, err = Decode([]byte{0x12, 0x05, 0x01, 0x10, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, BlockLoad{Index: 5, LoadStatus: 0x01, RAMPoolAvailable: 16}, v)

	_, err = Decode([]byte{0x99, 0x00})
	var fieldErr *InvalidFieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "reportID", fieldErr.Field)
}

func TestEncodeMasksUndefinedBits(t *testing.T) {
	r := DeviceControl{Flags: DeviceControlFlags(0xff)}
	assert.Equal(t, []byte{0x0c, 0b00111111}, r.Encode())
}
