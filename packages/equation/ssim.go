package equation

import (
	"image"
	"image/color"
)

const (
	ssimWindow = 8
	ssimC1     = 0.01 * 0.01
	ssimC2     = 0.03 * 0.03
)

// SSIM is the default Comparer: the mean structural similarity index over
// 8x8 windows of the two images in grayscale. The smaller image is padded
// with white so renders of different sizes stay comparable.
func SSIM(a, b image.Image) (float64, error) {
	w := max(a.Bounds().Dx(), b.Bounds().Dx())
	h := max(a.Bounds().Dy(), b.Bounds().Dy())
	if w == 0 || h == 0 {
		return 1, nil
	}
	ga := grayscale(a, w, h)
	gb := grayscale(b, w, h)

	var total float64
	windows := 0
	for y := 0; y < h; y += ssimWindow {
		for x := 0; x < w; x += ssimWindow {
			total += windowSSIM(ga, gb, w, x, y, min(x+ssimWindow, w), min(y+ssimWindow, h))
			windows++
		}
	}
	return total / float64(windows), nil
}

// grayscale returns luminance in [0, 1], row-major, on a white w x h canvas.
func grayscale(img image.Image, w, h int) []float64 {
	px := make([]float64, w*h)
	for i := range px {
		px[i] = 1
	}
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			px[y*w+x] = float64(g.Y) / 0xffff
		}
	}
	return px
}

func windowSSIM(a, b []float64, stride, x0, y0, x1, y1 int) float64 {
	n := float64((x1 - x0) * (y1 - y0))
	var sumA, sumB float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sumA += a[y*stride+x]
			sumB += b[y*stride+x]
		}
	}
	meanA, meanB := sumA/n, sumB/n

	var varA, varB, cov float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			da := a[y*stride+x] - meanA
			db := b[y*stride+x] - meanB
			varA += da * da
			varB += db * db
			cov += da * db
		}
	}
	varA, varB, cov = varA/n, varB/n, cov/n

	return ((2*meanA*meanB + ssimC1) * (2*cov + ssimC2)) /
		((meanA*meanA + meanB*meanB + ssimC1) * (varA + varB + ssimC2))
}
