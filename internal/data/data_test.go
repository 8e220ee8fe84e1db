package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionByID(t *testing.T) {
	a, ok := ActionByID(16005)
	assert.True(t, ok)
	assert.Equal(t, SaberDance, a)

	_, ok = ActionByID(1)
	assert.False(t, ok)
}

func TestActionByName_Folds(t *testing.T) {
	for _, name := range []string{"Arm's Length", "arms length", "ARMS-LENGTH"} {
		a, ok := ActionByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, ArmsLength.ID, a.ID, name)
	}

	_, ok := ActionByName("Limit Break")
	assert.False(t, ok)
}

func TestActionName(t *testing.T) {
	assert.Equal(t, "The Forbidden Chakra", ActionName(3547))
	assert.Equal(t, "", ActionName(-1))
}

func TestStatusByID(t *testing.T) {
	s, ok := StatusByID(1847)
	assert.True(t, ok)
	assert.Equal(t, "Esprit", s.Name)
}

func TestJobByKey(t *testing.T) {
	j, ok := JobByKey("dnc")
	assert.True(t, ok)
	assert.Equal(t, Dancer, j)

	_, ok = JobByKey("BLU")
	assert.False(t, ok)
}
