package mqcoder

import "math"

// decomposeProb splits a signed 16-bit-magnitude probability into its
// LPS probability p and MPS sense s: p = |prob0|, s = 1 iff prob0 < 0.
func decomposeProb(prob0 int32) (p uint32, s int) {
	if prob0 < 0 {
		return uint32(-prob0), 1
	}
	return uint32(prob0), 0
}

// EncodeBitProb encodes bit (0 or 1) using an explicit, pre-quantized
// probability prob0 rather than adaptive per-context state. prob0 is a
// signed 16-bit-magnitude quantity produced by Prob0ToMQ: p = |prob0| is
// the LPS probability, and s = 1 iff prob0 < 0 gives the sense of the MPS.
func (c *Coder) EncodeBitProb(bit int, prob0 int32) error {
	p, s := decomposeProb(prob0)
	if bit == s {
		return c.encodeMPS(p, nil)
	}
	return c.encodeLPS(p, nil)
}

// DecodeBitProb decodes one bit using the explicit probability prob0.
func (c *Coder) DecodeBitProb(prob0 int32) (int, error) {
	p, s := decomposeProb(prob0)
	bit, _, err := c.decodeBit(p, s)
	return bit, err
}

// mqScale is the 4/3 * 0x8000 scale factor shared by Prob0ToMQ/MQToProb0.
const mqScale = (4.0 / 3.0) * 0x8000

// Prob0ToMQ quantizes a floating-point probability-of-zero p into the
// signed 16-bit-magnitude form consumed by EncodeBitProb/DecodeBitProb.
// p is clamped to [0.0001, 0.9999] before quantization.
func Prob0ToMQ(p float32) int32 {
	if p >= 0.5 {
		if p > 0.9999 {
			p = 0.9999
		}
		return int32(math.Floor(float64(1-p) * mqScale))
	}
	if p < 0.0001 {
		p = 0.0001
	}
	return -int32(math.Floor(float64(p) * mqScale))
}

// MQToProb0 is the inverse of Prob0ToMQ: it recovers an approximate
// probability-of-zero from a quantized signed value q.
func MQToProb0(q int32) float32 {
	r := float32(3*q) / float32(4*0x8000)
	if q > 0 {
		return 1 - r
	}
	return -r
}
