/*
Copyright 2026 the Storebook Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fixtures

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
)

// ErrInvalidColour is raised when an image colour isn't #rrggbb.
var ErrInvalidColour = errors.New("invalid colour")

// imageSize is the edge length of rendered images.
const imageSize = 16

// RenderImage draws a solid PNG in the given #rrggbb colour, the fixtures
// only describe images by colour.
func RenderImage(c string) ([]byte, error) {
	rgb, err := hex.DecodeString(strings.TrimPrefix(c, "#"))
	if err != nil || len(rgb) != 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColour, c)
	}

	img := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))

	fill := color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}

	for y := range imageSize {
		for x := range imageSize {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer

	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
