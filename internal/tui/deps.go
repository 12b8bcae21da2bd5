package tui

import (
	"go.uber.org/zap"

	"github.com/gbistila/bidupgradestest/pkg/present"
)

// Deps are the collaborators the terminal UI needs.
type Deps struct {
	Presenter *present.Presenter
	Clipboard present.Clipboard
	Logger    *zap.Logger
}
