package gm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstrument(t *testing.T) {
	assert.Equal(t, "Acoustic Grand Piano", Instrument(0))
	assert.Equal(t, "Violin", Instrument(40))
	assert.Equal(t, "Trumpet", Instrument(56))
	assert.Equal(t, "Gunshot", Instrument(127))
	assert.Equal(t, "Unknown (128)", Instrument(128))
}

func TestTablesComplete(t *testing.T) {
	for p, name := range instruments {
		assert.NotEmpty(t, name, "program %d", p)
	}
	assert.Len(t, percussion, 81-35+1)
	assert.Len(t, Programs(), 128)
}

func TestFamily(t *testing.T) {
	assert.Equal(t, "Piano", Family(7))
	assert.Equal(t, "Chromatic Percussion", Family(8))
	assert.Equal(t, "Strings", Family(40))
	assert.Equal(t, "Sound Effects", Family(127))
	assert.Equal(t, "Unknown (200)", Family(200))
}

func TestPercussion(t *testing.T) {
	assert.Equal(t, "Acoustic Bass Drum", Percussion(35))
	assert.Equal(t, "Acoustic Snare", Percussion(38))
	assert.Equal(t, "Closed Hi-Hat", Percussion(42))
	assert.Equal(t, "Open Triangle", Percussion(81))
	assert.Equal(t, "", Percussion(34))
	assert.Equal(t, "", Percussion(82))
}
