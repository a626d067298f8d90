// Package mqcoder implements the MQ binary arithmetic coder as specified in
// ITU-T T.800 (JPEG 2000), Annex C.
//
// The MQ coder compresses a sequence of binary symbols into a byte stream
// and losslessly reconstructs them on decode. Two modes are supported:
//
//   - Context-adaptive: each bit carries a context index, and the Coder
//     maintains a 47-state adaptive probability estimator per context.
//   - Explicit-probability: each bit is accompanied by a pre-quantized,
//     signed probability (see Prob0ToMQ / MQToProb0).
//
// Encoding:
//
//	c := mqcoder.New(19)
//	c.RestartEncoding()
//	c.EncodeBitContext(1, 0)
//	if err := c.Terminate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding:
//
//	c := mqcoder.New(19)
//	c.ChangeStream(mqcoder.NewBuffer(encoded))
//	if err := c.RestartDecoding(); err != nil {
//	    log.Fatal(err)
//	}
//	bit, err := c.DecodeBitContext(0)
//
// This package is narrowly scoped to the entropy coder itself: it does not
// model JPEG 2000 bitplane coding, EBCOT, code-block assembly, rate
// allocation, or any image-domain semantics, and it performs no file I/O
// beyond the minimal ByteStream interface a caller supplies or the in-memory
// Buffer this package provides.
package mqcoder
