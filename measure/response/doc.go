// Package response characterizes the pointer smoothing filters in the
// frequency domain.
//
// The magnitude response of a filter is obtained from the FFT of its
// impulse response:
//
//   - Moving average of N samples: h[n] = 1/N for n < N
//   - Exponential smoothing with factor a: h[n] = a*(1-a)^n
//
// From it the package derives the -3 dB cutoff. Group delay and white-noise
// gain have closed forms and are provided directly. [DominantFrequency]
// estimates the strongest periodic component of a coordinate channel, such
// as simulated tremor.
//
// Frequencies are normalized to cycles per sample unless stated otherwise.
// Multiply by the frame rate to get Hz.
//
// # Usage
//
//	r, err := response.MovingAverage(10, 1024)
//	fc := r.Cutoff3dB() * 60 // Hz at 60 fps
package response
