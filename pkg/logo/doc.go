// Package logo generates the frame sequence of a looping logo animation.
//
// # Overview
//
// A logo animation types a label in one character at a time, settles,
// optionally reveals a subtitle and an accent line, sweeps a highlight
// across the label and holds before looping. An optional flag glyph can sit
// to the left of the label with a shine that travels across its columns.
//
// The package is split along the data flow:
//
//   - [ComputeLayout]: canvas size and fixed element positions, computed once
//     from measured glyph metrics
//   - [Renderer]: draws one [VisualState] onto a fresh transparent canvas
//   - [DefaultTimeline] and [Expand]: turn a declarative []Phase into the
//     ordered []Step that drives the renderer
//   - [BuildSequence]: renders every step into a [Frame], enforcing that all
//     frames share the layout's dimensions
//
// Text rasterization is delegated to the [Face] contract so the package does
// not depend on any font file format.
//
// # Building a Sequence
//
//	m := logo.Measure(faces, texts)
//	l := logo.ComputeLayout(m, style, features)
//	r := logo.NewRenderer(l, style, texts, faces)
//	steps := logo.Expand(logo.DefaultTimeline(timing, features), r.Len(), style.Flag.Cols())
//	frames, err := logo.BuildSequence(ctx, r, steps)
//
// All durations are expressed in hundredths of a second.
package logo
