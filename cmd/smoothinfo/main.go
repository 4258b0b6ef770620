// Command smoothinfo prints frequency-domain properties of the pointer
// smoothing filters.
//
// Usage:
//
//	smoothinfo [flags]
//
// Examples:
//
//	smoothinfo
//	smoothinfo -windows 4,8,16 -alphas 0.1,0.3
//	smoothinfo -fps 120 -tremor 8
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/measure/response"
)

type row struct {
	filter     string
	param      string
	resp       response.Response
	groupDelay float64 // frames
	noiseGain  float64
}

func main() {
	fps := flag.Float64("fps", 60, "pointer sample rate in Hz")
	fftSize := flag.Int("fft", 4096, "FFT size used to sample the magnitude response")
	windows := flag.String("windows", "2,5,10,20", "comma-separated moving average window sizes")
	alphas := flag.String("alphas", "0.05,0.1,0.2,0.5", "comma-separated exponential smoothing factors")
	tremor := flag.Float64("tremor", 10, "tremor frequency in Hz for the attenuation column")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: smoothinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints cutoff, delay and noise gain of the smoothing filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -windows 4,8,16 -alphas 0.1,0.3\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -fps 120 -tremor 8\n")
	}
	flag.Parse()

	if *fps <= 0 {
		fmt.Fprintf(os.Stderr, "error: fps must be positive\n")
		os.Exit(1)
	}

	rows, err := buildRows(*windows, *alphas, *fftSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := printTable(os.Stdout, rows, *fps, *tremor); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func buildRows(windows, alphas string, fftSize int) ([]row, error) {
	ws, err := parseInts(windows)
	if err != nil {
		return nil, fmt.Errorf("windows: %w", err)
	}
	as, err := parseFloats(alphas)
	if err != nil {
		return nil, fmt.Errorf("alphas: %w", err)
	}
	if len(ws)+len(as) == 0 {
		return nil, fmt.Errorf("no filters selected")
	}

	rows := make([]row, 0, len(ws)+len(as))
	for _, w := range ws {
		r, err := response.MovingAverage(w, fftSize)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row{
			filter:     "moving-average",
			param:      fmt.Sprintf("N=%d", w),
			resp:       r,
			groupDelay: response.MovingAverageGroupDelay(w),
			noiseGain:  response.MovingAverageNoiseGain(w),
		})
	}
	for _, a := range as {
		r, err := response.Exponential(a, fftSize)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row{
			filter:     "exponential",
			param:      fmt.Sprintf("a=%.3f", a),
			resp:       r,
			groupDelay: response.ExponentialGroupDelay(a),
			noiseGain:  response.ExponentialNoiseGain(a),
		})
	}
	return rows, nil
}

func printTable(w io.Writer, rows []row, fps, tremorHz float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Filter\tParam\tCutoff 3dB [Hz]\tDelay [frames]\tDelay [ms]\tNoise Gain\tAtten @ %.1f Hz [dB]\n", tremorHz)
	fmt.Fprintf(tw, "------\t-----\t---------------\t--------------\t----------\t----------\t------------------\n")

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.2f\t%.1f\t%.4f\t%.2f\n",
			r.filter,
			r.param,
			r.resp.Cutoff3dB()*fps,
			r.groupDelay,
			r.groupDelay/fps*1000,
			r.noiseGain,
			r.resp.AttenuationDB(tremorHz/fps),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range splitList(s) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, f := range splitList(s) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
