package mqcoder

import "fmt"

// Register bit-layout masks for the 28 meaningful bits of C: 16 bits of
// code (bits 0-15), 3 spacer bits (16-18), 8 bits of partial byte
// (19-26), 1 carry bit (27). These masks are the single source of truth
// for BYTEOUT/BYTEIN-style byte transfer; keep them named for auditability
// rather than inlining the hex literals.
const (
	carryThreshold  = 0x08000000 // bit 27 set
	maskClearCarry  = 0xF8000000 // clears the carry region above the partial byte
	maskClearTop12  = 0xFFF00000 // clears bits [20,32) — used after a stuffed byte
	maskClearTop13  = 0xFFF80000 // clears bits [19,32) — used after a normal byte
	initialA        = 0x8000
	renormThreshold = 0x8000
)

// Coder is a single MQ arithmetic codec instance: the register engine
// (A, C, t, Tr, L), the attached byte stream, and — when constructed with
// contexts — the per-context adaptive state machine. A Coder is reusable
// across messages provided the caller follows the restart/reset/change
// stream sequencing documented on ChangeStream.
type Coder struct {
	a  uint32 // interval width
	c  uint32 // coding register (28 meaningful bits)
	t  int    // shifts remaining before next byte transfer
	tr uint32 // pending/most-recently-fetched byte, [0, 0xFF]
	l  int    // stream cursor; -1 during encode suppresses the first byte

	stream ByteStream

	states []uint8 // contextState[c], in [0, 46]
	mps    []uint8 // contextMPS[c], 0 or 1
}

// New creates a Coder with n adaptive contexts (n may be 0 for
// probability-only mode) backed by a fresh, empty in-memory Buffer.
func New(n int) *Coder {
	c := &Coder{}
	if n > 0 {
		c.states = make([]uint8, n)
		c.mps = make([]uint8, n)
	}
	c.stream = NewBuffer(nil)
	c.Reset()
	c.RestartEncoding()
	return c
}

// NumContexts returns the number of adaptive contexts this Coder was
// constructed with.
func (c *Coder) NumContexts() int {
	return len(c.states)
}

// Stream returns the ByteStream currently attached to this Coder.
func (c *Coder) Stream() ByteStream {
	return c.stream
}

// ChangeStream installs s as the coder's byte stream, or a fresh empty
// Buffer if s is nil.
//
// Caller sequencing is a contract, not a suggestion: after encoding a
// message the order is Terminate (or TerminateOptimal) -> ChangeStream ->
// RestartEncoding -> Reset; for decoding it is ChangeStream ->
// RestartDecoding -> Reset. Skipping RestartDecoding after swapping streams
// will silently decode garbage, since C and the read cursor would still
// reflect the previous stream.
func (c *Coder) ChangeStream(s ByteStream) {
	if s == nil {
		s = NewBuffer(nil)
	}
	c.stream = s
}

// Reset zeroes all per-context state and MPS values. It is a no-op for a
// Coder constructed with zero contexts.
func (c *Coder) Reset() {
	for i := range c.states {
		c.states[i] = 0
		c.mps[i] = 0
	}
}

// RestartEncoding sets the register to its initial encode state:
// A := 0x8000, C := 0, t := 12, Tr := 0, L := -1.
func (c *Coder) RestartEncoding() {
	c.a = initialA
	c.c = 0
	c.t = 12
	c.tr = 0
	c.l = -1
}

// RestartDecoding sets the register to its initial decode state and
// pre-fills C from the attached stream.
func (c *Coder) RestartDecoding() error {
	c.tr = 0
	c.l = 0
	c.c = 0
	if err := c.fillLSB(); err != nil {
		return err
	}
	c.c <<= uint(c.t)
	if err := c.fillLSB(); err != nil {
		return err
	}
	c.c <<= 7
	c.t -= 7
	c.a = initialA
	return nil
}

// RemainingBytes estimates the number of bytes a termination still needs
// to flush, given the current register state. The thresholds here are
// normative (tied to the 27-bit significant width of C), not tunables.
func (c *Coder) RemainingBytes() int {
	if 27-c.t <= 22 {
		return 4
	}
	return 5
}

func (c *Coder) putByte(b byte) error {
	if err := c.stream.PutByte(b); err != nil {
		return fmt.Errorf("mqcoder: stream write failed: %w", err)
	}
	return nil
}

func (c *Coder) getByte(i int) (byte, error) {
	b, err := c.stream.GetByte(i)
	if err != nil {
		return 0, fmt.Errorf("mqcoder: stream read failed: %w", err)
	}
	return b, nil
}

// transferByte moves one byte from C/Tr into the stream, propagating carry
// and applying the 0xFF bit-stuffing rule. Implements the encode-side
// BYTEOUT procedure.
func (c *Coder) transferByte() error {
	if c.tr == 0xFF {
		if err := c.putByte(byte(c.tr)); err != nil {
			return err
		}
		c.l++
		c.tr = (c.c >> 20) & 0xFF
		c.c &^= maskClearTop12
		c.t = 7
		return nil
	}

	if c.c >= carryThreshold {
		c.tr = (c.tr + 1) & 0xFF
		c.c &^= maskClearCarry
	}

	if c.l >= 0 {
		if err := c.putByte(byte(c.tr)); err != nil {
			return err
		}
	}
	c.l++

	if c.tr == 0xFF {
		c.tr = (c.c >> 20) & 0xFF
		c.c &^= maskClearTop12
		c.t = 7
	} else {
		c.tr = (c.c >> 19) & 0xFF
		c.c &^= maskClearTop13
		c.t = 8
	}
	return nil
}

// fillLSB pulls one byte into the low bits of C with symmetric stuffing
// detection. Implements the decode-side BYTEIN procedure.
func (c *Coder) fillLSB() error {
	c.t = 8

	streamLen := c.stream.Length()
	atEnd := c.l >= streamLen

	var bl byte
	if !atEnd {
		b, err := c.getByte(c.l)
		if err != nil {
			return err
		}
		bl = b
	}

	if atEnd || (c.tr == 0xFF && bl > 0x8F) {
		c.c += 0xFF
		if !atEnd {
			return ErrInvalidMarker
		}
		return nil
	}

	if c.tr == 0xFF {
		c.t = 7
	}
	c.tr = uint32(bl)
	c.l++
	c.c += c.tr << uint(8-c.t)
	return nil
}

// renormEncode is the RENORME loop: shift A and C left, decrementing t,
// until A is back in [0x8000, 0x10000), transferring a byte whenever t
// reaches zero.
func (c *Coder) renormEncode() error {
	for c.a < renormThreshold {
		c.a <<= 1
		c.c <<= 1
		c.t--
		if c.t == 0 {
			if err := c.transferByte(); err != nil {
				return err
			}
		}
	}
	return nil
}

// renormDecode is the RENORMD loop: pull a byte through fillLSB whenever t
// reaches zero, then shift A and C left until A is back in range.
func (c *Coder) renormDecode() error {
	for c.a < renormThreshold {
		if c.t == 0 {
			if err := c.fillLSB(); err != nil {
				return err
			}
		}
		c.a <<= 1
		c.c <<= 1
		c.t--
	}
	return nil
}
