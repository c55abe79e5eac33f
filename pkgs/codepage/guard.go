package codepage

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Guard keeps the console switched to a code page until Release is called
type Guard interface {
	// Release restores the code pages that were active before acquisition. Calls after the first one do nothing.
	Release()
}

// active is set while a consoleGuard owns the console code pages
var active atomic.Bool

// Acquire switches the console of this process to target, see AcquireFrom
func Acquire(target CodePage) Guard {
	return AcquireFrom(System(), target)
}

// AcquireFrom remembers the input and output code pages of console and switches both to target.
//
// A nil console means the platform has no console code page; the returned guard is then a no-op.
// Failures to read or switch a code page are logged at debug level and otherwise ignored,
// e.g. when stdout is redirected and there is no console attached at all.
//
// Only one guard may own the console at a time. Acquiring while another guard is live
// returns a no-op guard and leaves the live one untouched.
func AcquireFrom(console Console, target CodePage) Guard {
	if console == nil {
		return noopGuard{}
	}
	if !active.CompareAndSwap(false, true) {
		logrus.Warnf("Console code page is already held by another guard, not switching to %s", target)
		return noopGuard{}
	}

	g := &consoleGuard{console: console, target: target}
	g.acquire()
	return g
}

// With runs fn with the console switched to target, restoring it on every exit path
func With(target CodePage, fn func() error) error {
	return WithConsole(System(), target, fn)
}

// WithConsole is With for a given console
func WithConsole(console Console, target CodePage, fn func() error) error {
	guard := AcquireFrom(console, target)
	defer guard.Release()

	return fn()
}

type consoleGuard struct {
	console Console
	target  CodePage

	savedInput    CodePage
	savedOutput   CodePage
	restoreInput  bool
	restoreOutput bool

	releaseOnce sync.Once
}

func (g *consoleGuard) acquire() {
	if cp, err := g.console.InputCP(); err != nil {
		logrus.Debugf("Cannot read console input code page, leaving it as is: %s", err)
	} else {
		g.savedInput = cp
		g.restoreInput = true
		if err := g.console.SetInputCP(g.target); err != nil {
			logrus.Debugf("Cannot switch console input code page to %s: %s", g.target, err)
		}
	}

	if cp, err := g.console.OutputCP(); err != nil {
		logrus.Debugf("Cannot read console output code page, leaving it as is: %s", err)
	} else {
		g.savedOutput = cp
		g.restoreOutput = true
		if err := g.console.SetOutputCP(g.target); err != nil {
			logrus.Debugf("Cannot switch console output code page to %s: %s", g.target, err)
		}
	}

	logrus.Debugf("Console code page switched to %s (was input=%s, output=%s)", g.target, g.savedInput, g.savedOutput)
}

func (g *consoleGuard) Release() {
	g.releaseOnce.Do(func() {
		defer active.Store(false)

		if g.restoreInput {
			if err := g.console.SetInputCP(g.savedInput); err != nil {
				logrus.Debugf("Cannot restore console input code page %s: %s", g.savedInput, err)
			}
		}
		if g.restoreOutput {
			if err := g.console.SetOutputCP(g.savedOutput); err != nil {
				logrus.Debugf("Cannot restore console output code page %s: %s", g.savedOutput, err)
			}
		}
		logrus.Debug("Console code page restored")
	})
}

// noopGuard is handed out where there is nothing to switch
type noopGuard struct{}

func (noopGuard) Release() {}
