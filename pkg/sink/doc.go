// Package sink writes quantized frame sequences as animated GIFs.
//
// # Overview
//
// A "sink" takes the paletted frames produced by [quantize.Quantize] and
// serializes them. Every frame carries its own palette (a local color table),
// its reserved transparent index, and its display duration in centiseconds.
//
//	data, err := sink.RenderGIF(frames,
//	    sink.WithOptimize(true),
//	    sink.WithLoopCount(0),
//	)
//
// # Disposal
//
// Frames are written with restore-to-background disposal, so the canvas is
// cleared to transparent before each frame is drawn. Each frame is therefore
// a complete picture and may be cropped to the bounding box of its opaque
// pixels without changing what a viewer shows. [WithOptimize] enables that
// crop.
//
// # Inspection
//
// [InspectGIF] decodes an artifact back into a [Summary], which the CLI's
// inspect command prints and the tests use for round-trip checks.
//
// [quantize.Quantize]: github.com/matzehuels/logogif/pkg/quantize.Quantize
package sink
