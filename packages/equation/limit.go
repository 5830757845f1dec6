package equation

import (
	"context"
	"image"

	"golang.org/x/time/rate"
)

// Throttle bounds how often and how many renders run at once. perSecond
// limits render starts (zero means unlimited) and maxConcurrent caps the
// renders in flight (zero means unlimited).
func Throttle(render Renderer, perSecond float64, maxConcurrent int) Renderer {
	if perSecond <= 0 && maxConcurrent <= 0 {
		return render
	}

	var limiter *rate.Limiter
	if perSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
	var sem chan struct{}
	if maxConcurrent > 0 {
		sem = make(chan struct{}, maxConcurrent)
	}

	return func(expr string) (image.Image, error) {
		if sem != nil {
			sem <- struct{}{}
			defer func() { <-sem }()
		}
		if limiter != nil {
			if err := limiter.Wait(context.Background()); err != nil {
				return nil, err
			}
		}
		return render(expr)
	}
}
