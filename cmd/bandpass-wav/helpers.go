package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cwbudde/algo-bandpass/dsp/filter/bandpass"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavInput holds validated input file information.
type wavInput struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInput, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, decoder.BitDepth)
	}

	return &wavInput{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}, nil
}

// Close closes the input file.
func (w *wavInput) Close() error {
	return w.file.Close()
}

// createChannelFilters creates one band-pass filter per channel, all
// with the same design parameters.
func createChannelFilters(channels int, freq, q, sampleRate float64) []*bandpass.Filter {
	filters := make([]*bandpass.Filter, channels)
	for ch := range channels {
		filters[ch] = bandpass.New(freq, q, sampleRate)
	}
	return filters
}

// pcmScale returns the full-scale divisor for a PCM bit depth.
func pcmScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// filterChunk runs interleaved int PCM samples through the per-channel
// filters in-place, scaling to [-1, 1) floats and back with clipping.
func filterChunk(filters []*bandpass.Filter, data []int, channels int, scale float64) {
	for i, v := range data {
		f := filters[i%channels]
		y := f.ProcessSample(float64(v) / scale)
		data[i] = clipToPCM(y*scale, scale)
	}
}

// clipToPCM rounds and clamps a sample to the signed integer range
// [-scale, scale-1].
func clipToPCM(v, scale float64) int {
	if v >= scale-1 {
		return int(scale) - 1
	}
	if v <= -scale {
		return -int(scale)
	}
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
