// Package plot renders smoother traces to standalone SVG files.
//
// Two figures are produced: a 3D view of every variant's trace with time as
// the depth axis, and a grid of gaussian kernel density heatmaps showing
// where each variant spent its time.
package plot
