package dataset

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// DecodeImage は画像を読み込み、グレースケールに変換して行優先で平坦化し、各画素を 255 で割った値を返します。
func DecodeImage(path string, opts ...Option) ([]float64, error) {
	o := newOptions(opts)
	return decodeImage(path, &o)
}

func decodeImage(path string, o *options) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, cause: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, cause: err}
	}
	return Flatten(toGray(src, o)), nil
}

// Flatten は img の画素を行優先で並べ、[0, 1] に正規化します。
func Flatten(img *image.Gray) []float64 {
	b := img.Bounds()
	x := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for _, p := range row {
			x = append(x, float64(p)/255.0)
		}
	}
	return x
}

func toGray(src image.Image, o *options) *image.Gray {
	gray := luminance(src)
	if !o.resize() {
		return gray
	}
	// 透明度を落とした後のグレースケール画像を拡大縮小します。
	dst := image.NewGray(image.Rect(0, 0, o.width, o.height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), gray, gray.Bounds(), draw.Src, nil)
	return dst
}

// luminance は src を 8bit の輝度画像にします。アルファは無視し、色の成分だけを使います。
func luminance(src image.Image) *image.Gray {
	if gray, ok := src.(*image.Gray); ok {
		return gray
	}

	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst.Pix[dst.PixOffset(x-b.Min.X, y-b.Min.Y)] = luma(c.R, c.G, c.B)
		}
	}
	return dst
}

// ITU-R BT.601 の係数を 16bit 固定小数点で掛けます。
func luma(r, g, b uint8) uint8 {
	return uint8((19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16)
}
