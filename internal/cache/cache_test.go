package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)

	c.Set(EntityBreed, []string{"Golden Retriever"})

	v, ok := c.Get(EntityBreed)
	assert.True(t, ok)
	assert.Equal(t, []string{"Golden Retriever"}, v)
}

func TestCache_MissOnOtherEntityType(t *testing.T) {
	c := New(time.Minute)

	c.Set(EntityBreed, "breeds")

	_, ok := c.Get(EntityService)
	assert.False(t, ok)
}

func TestCache_Invalidate(t *testing.T) {
	c := New(time.Minute)

	c.Set(EntityBreed, "breeds")
	c.Set(EntityService, "services")
	c.Invalidate(EntityBreed)

	_, ok := c.Get(EntityBreed)
	assert.False(t, ok)

	// Other entity types are untouched.
	_, ok = c.Get(EntityService)
	assert.True(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := New(10 * time.Millisecond)

	c.Set(EntityGroomer, "groomers")
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(EntityGroomer)
	assert.False(t, ok)
}
