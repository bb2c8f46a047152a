package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerRunWithoutTTY(t *testing.T) {
	var out bytes.Buffer
	s := NewSpinnerWithOutput(&out, false)

	called := false
	err := s.Run("Generating Smart Contract Project", func() error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, out.String(), "Generating Smart Contract Project")
}

func TestSpinnerRunReturnsError(t *testing.T) {
	var out bytes.Buffer
	s := NewSpinnerWithOutput(&out, false)

	err := s.Run("working", func() error { return errors.New("boom") })
	assert.EqualError(t, err, "boom")
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := NewSpinnerWithOutput(&bytes.Buffer{}, true)
	assert.NotPanics(t, s.Stop)
}

func TestSpinnerModel(t *testing.T) {
	m := newSpinnerModel("Generating")
	assert.Contains(t, m.View(), "Generating")

	updated, cmd := m.Update(msgQuit{})
	assert.NotNil(t, cmd)
	assert.Empty(t, updated.View())
}
