package mqcoder

// checkContext validates a context index against the Coder's context count.
func (c *Coder) checkContext(ctx int) error {
	if len(c.states) == 0 {
		return ErrNoContexts
	}
	if ctx < 0 || ctx >= len(c.states) {
		return ErrContextOutOfRange
	}
	return nil
}

// EncodeBitContext encodes bit (0 or 1) under context ctx, driving the
// per-context adaptive probability estimator: the estimated LPS probability
// and current MPS are read from context state before coding, and the state
// machine transitions (StateTransMPS/StateTransLPS, and MPS itself when
// StateSwitch fires) are applied before renormalization runs.
func (c *Coder) EncodeBitContext(bit, ctx int) error {
	if err := c.checkContext(ctx); err != nil {
		return err
	}
	st := c.states[ctx]
	mps := c.mps[ctx]
	p := StateProb[st]

	if bit == int(mps) {
		return c.encodeMPS(p, func() {
			c.states[ctx] = StateTransMPS[st]
		})
	}
	return c.encodeLPS(p, func() {
		if StateSwitch[st] == 1 {
			c.mps[ctx] = 1 - mps
		}
		c.states[ctx] = StateTransLPS[st]
	})
}

// DecodeBitContext decodes one bit under context ctx, applying the same
// state-machine transitions as EncodeBitContext so encoder and decoder
// track each other's probability model exactly.
func (c *Coder) DecodeBitContext(ctx int) (int, error) {
	if err := c.checkContext(ctx); err != nil {
		return 0, err
	}
	st := c.states[ctx]
	mps := c.mps[ctx]
	p := StateProb[st]

	bit, outcome, err := c.decodeBit(p, int(mps))
	if err != nil {
		return 0, err
	}

	switch outcome {
	case outcomeMPS:
		c.states[ctx] = StateTransMPS[st]
	case outcomeLPS:
		if StateSwitch[st] == 1 {
			c.mps[ctx] = 1 - mps
		}
		c.states[ctx] = StateTransLPS[st]
	case outcomeFastMPS:
		// No renormalization occurred; context state does not transition.
	}
	return bit, nil
}

// ContextState returns the current (state index, MPS) pair for context ctx.
// Useful for tests and for callers that need to snapshot context state
// across segments. The package provides no way to set a context's state;
// Reset only returns every context to (0, 0).
func (c *Coder) ContextState(ctx int) (state uint8, mps uint8, err error) {
	if err := c.checkContext(ctx); err != nil {
		return 0, 0, err
	}
	return c.states[ctx], c.mps[ctx], nil
}
