package mqcoder

// Terminate flushes the remaining register state so that a conforming
// decoder can recover every encoded bit. This is the "easy" termination:
// simple and always safe, but not minimal-length (see TerminateOptimal).
func (c *Coder) Terminate() error {
	n := 27 - 15 - c.t
	c.c <<= uint(c.t)
	for n > 0 {
		if err := c.transferByte(); err != nil {
			return err
		}
		n -= c.t
		c.c <<= uint(c.t)
	}
	if err := c.transferByte(); err != nil {
		return err
	}
	if c.t == 7 {
		// The final transfer emitted a stuffed byte that carries no real
		// information; drop it.
		return c.stream.RemoveByte()
	}
	return nil
}

// termSnapshot captures the register state needed by minFlush before easy
// termination mutates it.
type termSnapshot struct {
	tr uint32
	t  int
	c  uint32
	a  uint32
	l  int
}

// TerminateOptimal performs the minimal-length flush: it runs easy
// termination to compute an upper bound, then searches for the shortest
// prefix of the flushed tail that still lets any conforming decoder recover
// the encoded interval, and truncates the stream to that length.
func (c *Coder) TerminateOptimal() error {
	snap := termSnapshot{tr: c.tr, t: c.t, c: c.c, a: c.a, l: c.l}
	l0 := c.stream.Length()

	if err := c.Terminate(); err != nil {
		return err
	}

	necessary, err := c.minFlush(snap, l0)
	if err != nil {
		return err
	}
	lopt := l0 + necessary

	if lopt >= 1 {
		b, err := c.getByte(lopt - 1)
		if err != nil {
			return err
		}
		if b == 0xFF {
			lopt--
		}
	}
	for lopt >= 2 {
		b0, err := c.getByte(lopt - 2)
		if err != nil {
			return err
		}
		b1, err := c.getByte(lopt - 1)
		if err != nil {
			return err
		}
		if b0 == 0xFF && b1 == 0x7F {
			lopt -= 2
			continue
		}
		break
	}

	return c.stream.RemoveBytes(c.stream.Length() - lopt)
}

// minFlush computes the number of bytes, counted from l0, that a decoder
// must actually see after easy termination in order to still uniquely
// recover the encoder's final subinterval. All arithmetic here runs in
// 64 bits, since Cr/Ar can exceed the 32-bit register width once Tr is
// folded in at bit position 27.
func (c *Coder) minFlush(snap termSnapshot, l0 int) (int, error) {
	cr := (uint64(snap.tr) << 27) + (uint64(snap.c) << uint(snap.t))
	ar := uint64(snap.a) << uint(snap.t)

	var rf uint64
	sf := 35
	s := 8

	streamLen := c.stream.Length()
	max := streamLen - l0
	if max > 5 {
		max = 5
	}

	midByte := byte((cr >> 32) & 0xFF)
	if l0 == 0 && midByte == 0 && snap.l == -1 {
		cr <<= 8
		ar <<= 8
	}

	necessary := 0
	for k := 1; k <= max; k++ {
		upper := rf + (uint64(1) << uint(sf)) - 1
		if upper < cr || upper >= cr+ar {
			sf -= s
			b, err := c.getByte(l0 + k - 1)
			if err != nil {
				return necessary, err
			}
			rf += uint64(b) << uint(sf)
			if b == 0xFF {
				s = 7
			} else {
				s = 8
			}
			necessary = k
		} else {
			break
		}
	}
	return necessary, nil
}
