//go:build windows

package codepage

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleCP       = kernel32.NewProc("GetConsoleCP")
	procGetConsoleOutputCP = kernel32.NewProc("GetConsoleOutputCP")
)

type windowsConsole struct{}

func newSystemConsole() Console {
	return windowsConsole{}
}

func (windowsConsole) InputCP() (CodePage, error) {
	return getCP(procGetConsoleCP)
}

func (windowsConsole) OutputCP() (CodePage, error) {
	return getCP(procGetConsoleOutputCP)
}

func (windowsConsole) SetInputCP(cp CodePage) error {
	if err := windows.SetConsoleCP(uint32(cp)); err != nil {
		return fmt.Errorf("SetConsoleCP(%d): %w", uint32(cp), err)
	}
	return nil
}

func (windowsConsole) SetOutputCP(cp CodePage) error {
	if err := windows.SetConsoleOutputCP(uint32(cp)); err != nil {
		return fmt.Errorf("SetConsoleOutputCP(%d): %w", uint32(cp), err)
	}
	return nil
}

// getCP calls one of the kernel32 getters, which report 0 when no console is attached
func getCP(proc *windows.LazyProc) (CodePage, error) {
	if err := proc.Find(); err != nil {
		return 0, err
	}
	r, _, callErr := proc.Call()
	if r == 0 {
		return 0, fmt.Errorf("%s: no console attached: %v", proc.Name, callErr)
	}
	return CodePage(r), nil
}
