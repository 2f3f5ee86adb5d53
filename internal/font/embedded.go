package font

import (
	"sync"

	"github.com/go-fonts/latin-modern/lmsans10regular"
)

var (
	defaultOnce sync.Once
	defaultFont *OpenType
	defaultErr  error
)

// Default returns the embedded Latin Modern Sans face.
func Default() (*OpenType, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultErr = ParseOpenType(lmsans10regular.TTF)
	})
	return defaultFont, defaultErr
}
