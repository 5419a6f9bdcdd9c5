package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"voxmesh/internal/world"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// HeightmapImage renders the generator's surface heights over the extent as a
// grey image, one pixel per column, scaled up by scale. Heights are mapped
// against the world height (extent.HeightChunks * ChunkSize).
func HeightmapImage(g *world.Generator, extent world.Extent, scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}
	w := extent.X * world.ChunkSize
	h := extent.Z * world.ChunkSize
	top := extent.HeightChunks * world.ChunkSize
	if top < 1 {
		top = 1
	}

	src := image.NewGray(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for z := 0; z < h; z++ {
			height := g.TargetHeight(x, z)
			if height > top {
				height = top
			}
			src.SetGray(x, z, color.Gray{Y: uint8(height * 255 / top)})
		}
	}
	if scale == 1 {
		return src
	}

	dst := image.NewGray(image.Rect(0, 0, w*scale, h*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// WriteHeightmapPNG encodes HeightmapImage as PNG.
func WriteHeightmapPNG(out io.Writer, g *world.Generator, extent world.Extent, scale int) error {
	if err := png.Encode(out, HeightmapImage(g, extent, scale)); err != nil {
		return errors.Wrap(err, "encode heightmap")
	}
	return nil
}
