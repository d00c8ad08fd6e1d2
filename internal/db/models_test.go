package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleEqual(t *testing.T) {
	a := &Console{ID: 1, Name: "SNES"}
	b := &Console{ID: 1, Name: "renamed"}
	c := &Console{ID: 2, Name: "SNES"}

	assert.True(t, a.Equal(b), "same id is the same entity regardless of other fields")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestEqualUnpersisted(t *testing.T) {
	a := &Game{Name: "Zelda"}
	b := &Game{Name: "Zelda"}

	assert.False(t, a.Equal(b), "two unpersisted records are never equal")
	assert.False(t, a.Equal(a), "an unpersisted record is not even equal to itself")
	assert.False(t, a.Equal(&Game{ID: 1, Name: "Zelda"}))
}

func TestItemEqual(t *testing.T) {
	owner := uint64(7)
	a := &Item{ID: 3, OwnerID: &owner}
	b := &Item{ID: 3}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, (&Item{}).Equal(&Item{}))
}

func TestUserEqual(t *testing.T) {
	a := &User{ID: 5, Login: "first"}
	b := &User{ID: 5, Login: "second"}

	assert.True(t, a.Equal(b))
	assert.False(t, (&User{Login: "first"}).Equal(&User{Login: "first"}))
}
