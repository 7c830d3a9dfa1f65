package skills

import (
	"fmt"

	"github.com/pkg/browser"
)

// Browser opens links in the desktop's default browser.
type Browser struct {
	openURL func(url string) error
}

func (b Browser) Open(url string) error {
	open := b.openURL
	if open == nil {
		open = browser.OpenURL
	}
	if err := open(url); err != nil {
		return fmt.Errorf("open %s in browser: %w", url, err)
	}
	return nil
}
