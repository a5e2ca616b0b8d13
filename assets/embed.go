package assets

import (
	_ "embed"
	"fmt"
)

// SamplePNG contains the raw PNG bytes of the landscape shown when neither an
// image path nor a screen grab is requested.
//
//go:embed sample.png
var SamplePNG []byte

// SampleName is the display name of the embedded sample image.
const SampleName = "sample.png"

// Sample returns the embedded sample image bytes.
func Sample() ([]byte, error) {
	if len(SamplePNG) == 0 {
		return nil, fmt.Errorf("embedded %s is empty", SampleName)
	}
	return SamplePNG, nil
}
