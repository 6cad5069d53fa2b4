package mock

import "github.com/fwojciec/shoplens"

var _ shoplens.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector is a mock implementation of shoplens.PlatformDetector.
type PlatformDetector struct {
	DetectFn func(html string) shoplens.Platform
}

func (d *PlatformDetector) Detect(html string) shoplens.Platform {
	return d.DetectFn(html)
}
