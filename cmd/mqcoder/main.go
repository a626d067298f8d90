// Command mqcoder is a small front end over the mqcoder package, for
// manually exercising and benchmarking the MQ entropy coder outside of
// `go test`. It is not part of the library's public API.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ajroetker/go-mqcoder"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mqcoder encode [-contexts N] [-optimal] < bits > stream")
	fmt.Fprintln(os.Stderr, "       mqcoder decode [-contexts N] -n BITS < stream > bits")
}

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	contexts := fs.Int("contexts", 1, "number of adaptive contexts (0 selects explicit-probability mode)")
	optimal := fs.Bool("optimal", false, "use optimal termination instead of easy termination")
	fs.Parse(args)

	bits, err := readBits(os.Stdin)
	if err != nil {
		log.Fatalf("mqcoder: reading bits: %v", err)
	}

	c := mqcoder.New(*contexts)
	for _, bit := range bits {
		if *contexts > 0 {
			if err := c.EncodeBitContext(bit, 0); err != nil {
				log.Fatalf("mqcoder: encode: %v", err)
			}
			continue
		}
		if err := c.EncodeBitProb(bit, mqcoder.Prob0ToMQ(0.5)); err != nil {
			log.Fatalf("mqcoder: encode: %v", err)
		}
	}

	if *optimal {
		if err := c.TerminateOptimal(); err != nil {
			log.Fatalf("mqcoder: terminate: %v", err)
		}
	} else {
		if err := c.Terminate(); err != nil {
			log.Fatalf("mqcoder: terminate: %v", err)
		}
	}

	buf, ok := c.Stream().(*mqcoder.Buffer)
	if !ok {
		log.Fatalf("mqcoder: unexpected stream type")
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		log.Fatalf("mqcoder: writing stream: %v", err)
	}
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	contexts := fs.Int("contexts", 1, "number of adaptive contexts (0 selects explicit-probability mode)")
	n := fs.Int("n", 0, "number of bits to decode")
	fs.Parse(args)

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("mqcoder: reading stream: %v", err)
	}

	c := mqcoder.New(*contexts)
	c.ChangeStream(mqcoder.NewBuffer(data))
	if err := c.RestartDecoding(); err != nil {
		log.Fatalf("mqcoder: restart decoding: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for i := 0; i < *n; i++ {
		var bit int
		if *contexts > 0 {
			bit, err = c.DecodeBitContext(0)
		} else {
			bit, err = c.DecodeBitProb(mqcoder.Prob0ToMQ(0.5))
		}
		if err != nil {
			log.Fatalf("mqcoder: decode bit %d: %v", i, err)
		}
		fmt.Fprintf(w, "%d\n", bit)
	}
}

// readBits reads whitespace-separated '0'/'1' characters from r.
func readBits(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	sc.Split(bufio.ScanRunes)

	var bits []int
	for sc.Scan() {
		switch sc.Text() {
		case "0":
			bits = append(bits, 0)
		case "1":
			bits = append(bits, 1)
		default:
			// Skip whitespace/newlines and anything else.
		}
	}
	return bits, sc.Err()
}
