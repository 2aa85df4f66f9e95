package txrecon

import (
	"math"

	"go.uber.org/zap/zapcore"
)

// RequestParams are sent to the peer when a reconciliation round is initiated.
type RequestParams struct {
	// SetSize is the size of the local set when the round was initiated.
	SetSize uint16
	// Q is the q coefficient in fixed point, 32767 stands for 1.0.
	Q uint16
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (p *RequestParams) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint16("set size", p.SetSize)
	enc.AddUint16("q", p.Q)
	return nil
}

func buildRequest(setSize int, q float64) RequestParams {
	return RequestParams{
		SetSize: uint16(min(setSize, math.MaxUint16)),
		Q:       uint16(q * qPrecision),
	}
}
