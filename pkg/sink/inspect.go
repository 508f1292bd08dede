package sink

import (
	"image"
	"io"

	gif "github.com/NathanBaulch/gifx"

	apperrors "github.com/matzehuels/logogif/pkg/errors"
)

// Summary describes a decoded GIF.
type Summary struct {
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Frames    int               `json:"frames"`
	Delays    []int             `json:"delays"`
	Disposal  []byte            `json:"disposal"`
	Bounds    []image.Rectangle `json:"bounds"`
	LoopCount int               `json:"loop_count"`
}

// Duration is the total display time in centiseconds.
func (s Summary) Duration() int {
	total := 0
	for _, d := range s.Delays {
		total += d
	}
	return total
}

// Loops reports whether the animation repeats forever.
func (s Summary) Loops() bool {
	return s.LoopCount == 0
}

// InspectGIF decodes a GIF from r and summarizes it.
func InspectGIF(r io.Reader) (Summary, error) {
	g, err := gif.NewDecoder(r).Decode()
	if err != nil {
		return Summary{}, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode gif")
	}

	s := Summary{
		Width:     g.Config.Width,
		Height:    g.Config.Height,
		Frames:    len(g.Image),
		Delays:    g.Delay,
		Disposal:  g.Disposal,
		Bounds:    make([]image.Rectangle, len(g.Image)),
		LoopCount: g.LoopCount,
	}
	for i, img := range g.Image {
		s.Bounds[i] = img.Bounds()
	}
	return s, nil
}
