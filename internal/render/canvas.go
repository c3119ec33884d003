package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/mipmapgen/internal/assets"
	"github.com/rook-computer/mipmapgen/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a quarter circle each.
const kappa = 0.5522847498

const textDPI = 72

// Canvas is a square offscreen raster with the fill primitives the icon
// painters need. Fills replace the covered pixels instead of blending, so a
// translucent fill leaves translucent pixels behind.
type Canvas struct {
	img  *image.RGBA
	mask *image.Alpha
	ras  vector.Rasterizer
}

func NewCanvas(size int) *Canvas {
	return &Canvas{img: image.NewRGBA(layout.Square(size))}
}

// Image returns the backing raster. The canvas keeps drawing into it.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() int { return c.img.Bounds().Dx() }

// Fill paints the whole canvas.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect paints rect, clipped to the canvas.
func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	rect = layout.Normalize(rect).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// FillEllipse paints the ellipse inscribed in bounds.
func (c *Canvas) FillEllipse(bounds image.Rectangle, col color.Color) {
	bounds = layout.Normalize(bounds)
	if bounds.Empty() {
		return
	}
	cx := float32(bounds.Min.X+bounds.Max.X) / 2
	cy := float32(bounds.Min.Y+bounds.Max.Y) / 2
	rx := float32(bounds.Dx()) / 2
	ry := float32(bounds.Dy()) / 2
	kx, ky := rx*kappa, ry*kappa
	c.fill(col, func(r *vector.Rasterizer) {
		r.MoveTo(cx+rx, cy)
		r.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		r.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		r.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		r.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
		r.ClosePath()
	})
}

// FillPolygon paints the closed polygon through points. Vertices address
// pixel centers.
func (c *Canvas) FillPolygon(points []image.Point, col color.Color) {
	if len(points) < 3 {
		return
	}
	c.fill(col, func(r *vector.Rasterizer) {
		r.MoveTo(pixelCenter(points[0]))
		for _, p := range points[1:] {
			r.LineTo(pixelCenter(p))
		}
		r.ClosePath()
	})
}

// FillRoundedRect paints bounds with corners rounded by radius. The radius is
// clamped to half the shorter side.
func (c *Canvas) FillRoundedRect(bounds image.Rectangle, radius int, col color.Color) {
	bounds = layout.Normalize(bounds)
	if bounds.Empty() {
		return
	}
	x0, y0 := float32(bounds.Min.X), float32(bounds.Min.Y)
	x1, y1 := float32(bounds.Max.X), float32(bounds.Max.Y)
	rad := float32(radius)
	if maxRad := float32(min(bounds.Dx(), bounds.Dy())) / 2; rad > maxRad {
		rad = maxRad
	}
	if rad < 0 {
		rad = 0
	}
	k := rad * kappa
	c.fill(col, func(r *vector.Rasterizer) {
		r.MoveTo(x0+rad, y0)
		r.LineTo(x1-rad, y0)
		r.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
		r.LineTo(x1, y1-rad)
		r.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
		r.LineTo(x0+rad, y1)
		r.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
		r.LineTo(x0, y0+rad)
		r.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
		r.ClosePath()
	})
}

// FillCube paints the cube faces in front, top, side order.
func (c *Canvas) FillCube(cube Cube, front, top, side color.Color) {
	c.FillPolygon(cube.Front(), front)
	c.FillPolygon(cube.Top(), top)
	c.FillPolygon(cube.Side(), side)
}

// DrawImageInRect scales img into rect with nearest-neighbour sampling.
func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle) {
	if img == nil || rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, rect, img, img.Bounds(), xdraw.Src, nil)
}

// DrawTextCentered draws text horizontally centered with its baseline at
// baselineY. It falls back to the fixed 7x13 face when the TrueType path fails.
func (c *Canvas) DrawTextCentered(text string, baselineY int, sizePt float64, col color.Color) {
	if text == "" {
		return
	}
	src := image.NewUniform(col)
	ttf, err := assets.Font()
	if err == nil {
		err = c.drawTrueType(ttf, text, baselineY, sizePt, src)
	}
	if err == nil {
		return
	}
	drawer := &font.Drawer{Dst: c.img, Src: src, Face: basicfont.Face7x13}
	x := (c.Size() - drawer.MeasureString(text).Ceil()) / 2
	drawer.Dot = fixed.P(x, baselineY)
	drawer.DrawString(text)
}

func (c *Canvas) drawTrueType(ttf *truetype.Font, text string, baselineY int, sizePt float64, src image.Image) error {
	face := truetype.NewFace(ttf, &truetype.Options{Size: sizePt, DPI: textDPI, Hinting: font.HintingNone})
	width := font.MeasureString(face, text).Ceil()
	_ = face.Close()

	fc := freetype.NewContext()
	fc.SetDPI(textDPI)
	fc.SetFont(ttf)
	fc.SetFontSize(sizePt)
	fc.SetHinting(font.HintingNone)
	fc.SetClip(c.img.Bounds())
	fc.SetDst(c.img)
	fc.SetSrc(src)
	_, err := fc.DrawString(text, freetype.Pt((c.Size()-width)/2, baselineY))
	return err
}

// fill rasterizes path into a coverage mask and moves every covered pixel
// toward col by its coverage. Fully covered pixels end up exactly col.
func (c *Canvas) fill(col color.Color, path func(r *vector.Rasterizer)) {
	b := c.img.Bounds()
	if b.Empty() {
		return
	}
	c.ras.Reset(b.Dx(), b.Dy())
	path(&c.ras)

	if c.mask == nil || c.mask.Bounds() != b {
		c.mask = image.NewAlpha(b)
	} else {
		clear(c.mask.Pix)
	}
	c.ras.Draw(c.mask, b, image.Opaque, image.Point{})

	sr, sg, sb, sa := col.RGBA()
	src := [4]uint32{sr, sg, sb, sa}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			m := uint32(c.mask.Pix[y*c.mask.Stride+x]) * 0x101
			if m == 0 {
				continue
			}
			off := y*c.img.Stride + x*4
			for ch := 0; ch < 4; ch++ {
				d := uint32(c.img.Pix[off+ch]) * 0x101
				c.img.Pix[off+ch] = uint8((d*(0xffff-m) + src[ch]*m) / 0xffff >> 8)
			}
		}
	}
}

func pixelCenter(p image.Point) (float32, float32) {
	return float32(p.X) + 0.5, float32(p.Y) + 0.5
}
