//go:build !windows

package codepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystem_NoConsoleConcept(t *testing.T) {
	assert.Nil(t, System())

	guard := Acquire(UTF8)
	assert.IsType(t, noopGuard{}, guard)
	guard.Release()
	assert.False(t, active.Load())
}
