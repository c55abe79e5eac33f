package codepage

import "sync"

// Console is the host API for reading and switching the console code pages.
// Both values are process-wide OS state.
type Console interface {
	InputCP() (CodePage, error)
	OutputCP() (CodePage, error)
	SetInputCP(cp CodePage) error
	SetOutputCP(cp CodePage) error
}

var (
	systemOnce    sync.Once
	systemConsole Console
)

// System returns the console of the host process, or nil when the platform
// has no notion of a console code page
func System() Console {
	systemOnce.Do(func() {
		systemConsole = newSystemConsole()
	})
	return systemConsole
}
