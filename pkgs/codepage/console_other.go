//go:build !windows

package codepage

// terminals outside Windows take their encoding from the locale, there is nothing to switch
func newSystemConsole() Console {
	return nil
}
