// Package pkg provides the libraries behind logogif, a renderer for
// animated logo GIFs.
//
// # Overview
//
// A logo animation types a label in one character at a time, settles it,
// fades in secondary lines, sweeps a highlight across the text and holds
// the final frame. The packages split that work into stages:
//
//  1. [fonts] - Locate, parse and size TrueType faces
//  2. [logo] - Layout, visual states, the frame timeline and rasterization
//  3. [quantize] - Reduce RGBA frames to palettes with one transparent index
//  4. [sink] - Encode and inspect animated GIFs
//  5. [pipeline] - Options, configuration files and the cached Runner
//
// Supporting packages are [cache], [errors], [observability] and
// [buildinfo].
//
// # Architecture
//
//	Options (TOML / flags)
//	         ↓
//	    [fonts] faces
//	         ↓
//	    [logo] layout + timeline → RGBA frames
//	         ↓
//	    [quantize] palette frames
//	         ↓
//	    [sink] GIF bytes
//
// # Quick Start
//
//	opts := pipeline.Defaults()
//	opts.Label = "acme"
//
//	runner := pipeline.NewRunner(nil, nil, log.Default())
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile(opts.Output, result.GIF, 0644)
package pkg
