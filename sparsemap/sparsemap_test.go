package sparsemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetOrder(t *testing.T) {
	m := New[string]()
	m.Set(5, "five")
	m.Set(1, "one")
	m.Set(3, "three")

	require.Equal(t, 3, m.Size())
	assert.Equal(t, []int{1, 3, 5}, m.Indices())

	v, ok := m.Get(3)
	require.True(t, ok)
	assert.Equal(t, "three", v)

	_, ok = m.Get(2)
	assert.False(t, ok)
}

func TestSetOverwriteKeepsOrder(t *testing.T) {
	m := New[int]()
	m.Set(1, 10)
	m.Set(2, 20)
	m.Set(1, 100)

	assert.Equal(t, []int{1, 2}, m.Indices())
	v, _ := m.Get(1)
	assert.Equal(t, 100, v)
}

func TestErase(t *testing.T) {
	m := New[int]()
	m.Set(1, 1)
	m.Set(2, 2)
	m.Set(3, 3)

	assert.True(t, m.Erase(2))
	assert.False(t, m.Erase(2))
	assert.Equal(t, []int{1, 3}, m.Indices())
	assert.Equal(t, 2, m.Size())
}

func TestFrontBackIndex(t *testing.T) {
	m := New[int]()
	_, ok := m.FrontIndex()
	assert.False(t, ok)

	m.Set(7, 0)
	m.Set(2, 0)
	m.Set(9, 0)

	front, ok := m.FrontIndex()
	require.True(t, ok)
	assert.Equal(t, 2, front)

	back, ok := m.BackIndex()
	require.True(t, ok)
	assert.Equal(t, 9, back)
}

func TestForEachAscending(t *testing.T) {
	m := New[int]()
	for _, i := range []int{5, 1, 4, 2, 3} {
		m.Set(i, i*10)
	}
	var seen []int
	m.ForEach(func(index int, value int) {
		seen = append(seen, index)
		assert.Equal(t, index*10, value)
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
}

func TestEmpty(t *testing.T) {
	m := New[int]()
	assert.True(t, m.Empty())
	m.Set(0, 1)
	assert.False(t, m.Empty())
	m.Erase(0)
	assert.True(t, m.Empty())
}
