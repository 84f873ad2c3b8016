//go:build !ebiten

package app

import (
	"errors"

	"lifepad/internal/config"
)

// Run reports that the GUI requires the ebiten build tag. The headless
// subcommands work without it.
func Run(config.Config) error {
	return errors.New("lifepad run requires building with the 'ebiten' tag (go build -tags ebiten)")
}
