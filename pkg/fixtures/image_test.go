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

package fixtures_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storebook/api-tests/pkg/fixtures"
)

func TestRenderImage(t *testing.T) {
	t.Parallel()

	data, err := fixtures.RenderImage("#5b8fb9")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, []uint32{0x5b, 0x8f, 0xb9}, []uint32{r >> 8, g >> 8, b >> 8})

	_, err = fixtures.RenderImage("blue")
	require.ErrorIs(t, err, fixtures.ErrInvalidColour)
}
