// Command bandpass-wav filters a WAV file through a constant-skirt-gain
// band-pass biquad.
//
// Usage:
//
//	bandpass-wav -freq 1000 -q 2 input.wav output.wav
//
// The output keeps the input's sample rate, bit depth, and channel
// count; each channel runs through its own filter instance.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	defaultFreqHz = 1000.0
	defaultQ      = 1.0

	// Samples per chunk read from the decoder.
	chunkSize = 65536

	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	freq := flag.Float64("freq", defaultFreqHz, "Band-pass center frequency in Hz")
	q := flag.Float64("q", defaultQ, "Quality factor (higher = narrower pass-band)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintln(os.Stderr, "usage: bandpass-wav [-freq hz] [-q factor] input.wav output.wav")
		os.Exit(2)
	}

	if *freq <= 0 || *q <= 0 {
		return fmt.Errorf("freq and q must be positive (got freq=%v, q=%v)", *freq, *q)
	}

	in, err := openWAVInput(args[0], *verbose)
	if err != nil {
		return err
	}
	defer in.Close()

	outputFile, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outputFile.Close()

	enc := wav.NewEncoder(outputFile, in.rate, in.bitDepth, in.channels, 1)

	filters := createChannelFilters(in.channels, *freq, *q, float64(in.rate))

	scale, err := pcmScale(in.bitDepth)
	if err != nil {
		return err
	}

	buf := &audio.IntBuffer{
		Format: in.format,
		Data:   make([]int, chunkSize*in.channels),
	}

	var total int64
	for {
		n, err := in.decoder.PCMBuffer(buf)
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read PCM data: %w", err)
		}
		if n == 0 {
			break
		}

		filterChunk(filters, buf.Data[:n], in.channels, scale)

		chunk := &audio.IntBuffer{
			Format:         in.format,
			Data:           buf.Data[:n],
			SourceBitDepth: in.bitDepth,
		}
		if err := enc.Write(chunk); err != nil {
			return fmt.Errorf("failed to write PCM data: %w", err)
		}

		total += int64(n / in.channels)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	if *verbose {
		log.Printf("Filtered %d frames at %.0f Hz (Q=%.2f)", total, *freq, *q)
	}

	return nil
}
