package mqcoder

// decodeOutcome distinguishes the three paths DECODE can take, since only
// two of them trigger a context-state transition: the fast MPS path (A
// stays >= 0x8000, no renormalization) never updates context state, while
// both the renormalizing MPS path and the LPS path do.
type decodeOutcome int

const (
	outcomeFastMPS decodeOutcome = iota
	outcomeMPS
	outcomeLPS
)

// encodeMPS implements CODEMPS: encode the bit that matches the sense s of
// the current MPS, given the LPS probability p. transition, if non-nil, is
// invoked before renormalization whenever the coded interval actually
// renormalizes — matching the rule that context state mutates before RENORME
// runs, even though renormalization never reads context state.
func (c *Coder) encodeMPS(p uint32, transition func()) error {
	c.a -= p
	if c.a < renormThreshold {
		if c.a < p {
			// Conditional exchange: the sub-interval actually coded is the
			// one below 0x8000, but the bit coded is still the MPS value.
			c.a = p
		} else {
			c.c += p
		}
		if transition != nil {
			transition()
		}
		return c.renormEncode()
	}
	c.c += p
	return nil
}

// encodeLPS implements CODELPS: encode the bit opposite the current MPS.
func (c *Coder) encodeLPS(p uint32, transition func()) error {
	c.a -= p
	if c.a < p {
		c.c += p
	} else {
		c.a = p
	}
	if transition != nil {
		transition()
	}
	return c.renormEncode()
}

// decodeBit implements DECODE: given the LPS probability p and the sense s
// of the current MPS, determine the coded bit and whether a context
// transition (and which kind) applies.
func (c *Coder) decodeBit(p uint32, s int) (bit int, outcome decodeOutcome, err error) {
	chigh := (c.c >> 8) & 0xFFFF
	c.a -= p

	if chigh >= p {
		c.c -= p << 8
		if c.a >= renormThreshold {
			return s, outcomeFastMPS, nil
		}
		if c.a < p {
			bit = 1 - s
			outcome = outcomeLPS
		} else {
			bit = s
			outcome = outcomeMPS
		}
	} else {
		if c.a >= p {
			bit = 1 - s
			outcome = outcomeLPS
		} else {
			bit = s
			outcome = outcomeMPS
		}
		c.a = p
	}

	if err = c.renormDecode(); err != nil {
		return 0, outcome, err
	}
	return bit, outcome, nil
}
