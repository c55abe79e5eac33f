package codepage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeConsole emulates the host console code pages and records every call made to it
type fakeConsole struct {
	input  CodePage
	output CodePage

	failRead bool
	failSet  bool

	calls []string
}

var errNoConsole = errors.New("no console attached")

func (f *fakeConsole) InputCP() (CodePage, error) {
	f.calls = append(f.calls, "InputCP")
	if f.failRead {
		return 0, errNoConsole
	}
	return f.input, nil
}

func (f *fakeConsole) OutputCP() (CodePage, error) {
	f.calls = append(f.calls, "OutputCP")
	if f.failRead {
		return 0, errNoConsole
	}
	return f.output, nil
}

func (f *fakeConsole) SetInputCP(cp CodePage) error {
	f.calls = append(f.calls, "SetInputCP")
	if f.failSet {
		return errNoConsole
	}
	f.input = cp
	return nil
}

func (f *fakeConsole) SetOutputCP(cp CodePage) error {
	f.calls = append(f.calls, "SetOutputCP")
	if f.failSet {
		return errNoConsole
	}
	f.output = cp
	return nil
}

func TestAcquireFrom_SwitchesAndRestores(t *testing.T) {
	targets := []CodePage{UTF8, Windows1252, IBM437, CodePage(1234)}

	for _, target := range targets {
		console := &fakeConsole{input: IBM850, output: IBM437}

		guard := AcquireFrom(console, target)
		assert.Equal(t, target, console.input, "input code page not switched")
		assert.Equal(t, target, console.output, "output code page not switched")

		guard.Release()
		assert.Equal(t, IBM850, console.input, "input code page not restored")
		assert.Equal(t, IBM437, console.output, "output code page not restored")
	}
}

func TestAcquireFrom_RestoresRegardlessOfChangesInBetween(t *testing.T) {
	console := &fakeConsole{input: Windows1250, output: Windows1251}

	guard := AcquireFrom(console, UTF8)
	console.input = ShiftJIS
	console.output = GBK
	guard.Release()

	assert.Equal(t, Windows1250, console.input)
	assert.Equal(t, Windows1251, console.output)
}

func TestAcquireFrom_NilConsoleIsNoop(t *testing.T) {
	guard := AcquireFrom(nil, UTF8)
	assert.IsType(t, noopGuard{}, guard)
	guard.Release()
	assert.False(t, active.Load(), "no-op guard must not take ownership")
}

func TestRelease_OnlyOnce(t *testing.T) {
	console := &fakeConsole{input: IBM850, output: IBM850}

	guard := AcquireFrom(console, UTF8)
	guard.Release()
	callsAfterFirst := len(console.calls)

	console.input = Big5
	guard.Release()

	assert.Equal(t, callsAfterFirst, len(console.calls), "second release must not touch the console")
	assert.Equal(t, Big5, console.input)
}

func TestAcquireFrom_ReadFailureIsSwallowed(t *testing.T) {
	console := &fakeConsole{input: IBM850, output: IBM850, failRead: true}

	guard := AcquireFrom(console, UTF8)
	guard.Release()

	assert.Equal(t, []string{"InputCP", "OutputCP"}, console.calls, "nothing may be set when nothing could be saved")
	assert.Equal(t, IBM850, console.input)
	assert.Equal(t, IBM850, console.output)
	assert.False(t, active.Load())
}

func TestAcquireFrom_SetFailureIsSwallowed(t *testing.T) {
	console := &fakeConsole{input: IBM850, output: IBM437, failSet: true}

	guard := AcquireFrom(console, UTF8)
	guard.Release()

	assert.Equal(t, IBM850, console.input)
	assert.Equal(t, IBM437, console.output)
	assert.False(t, active.Load())
}

func TestAcquireFrom_SecondGuardIsNoop(t *testing.T) {
	console := &fakeConsole{input: IBM850, output: IBM850}

	first := AcquireFrom(console, UTF8)
	second := AcquireFrom(console, Windows1252)
	assert.IsType(t, noopGuard{}, second)
	assert.Equal(t, UTF8, console.output, "second guard must not switch the console")

	second.Release()
	assert.Equal(t, UTF8, console.output, "no-op release must not restore")

	first.Release()
	assert.Equal(t, IBM850, console.input)
	assert.Equal(t, IBM850, console.output)

	// ownership is free again
	third := AcquireFrom(console, Windows1252)
	assert.Equal(t, Windows1252, console.output)
	third.Release()
	assert.Equal(t, IBM850, console.output)
}

func TestWithConsole_ReleasesOnError(t *testing.T) {
	console := &fakeConsole{input: IBM866, output: IBM866}
	expected := errors.New("boom")

	err := WithConsole(console, UTF8, func() error {
		assert.Equal(t, UTF8, console.output)
		return expected
	})

	assert.Equal(t, expected, err, "error of the scope must be returned unchanged")
	assert.Equal(t, IBM866, console.input)
	assert.Equal(t, IBM866, console.output)
}

func TestWithConsole_ReleasesOnPanic(t *testing.T) {
	console := &fakeConsole{input: IBM866, output: IBM866}

	assert.Panics(t, func() {
		_ = WithConsole(console, UTF8, func() error {
			panic("unexpected")
		})
	})

	assert.Equal(t, IBM866, console.input)
	assert.Equal(t, IBM866, console.output)
	assert.False(t, active.Load())
}

func TestWithConsole_NilConsoleRunsScope(t *testing.T) {
	ran := false
	err := WithConsole(nil, UTF8, func() error {
		ran = true
		return nil
	})
	assert.Nil(t, err)
	assert.True(t, ran)
}
