package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGetFactory(t *testing.T) {
	UnregisterAll()
	defer UnregisterAll()

	factory := &fakeFactory{}
	Register("jenkins", factory)

	got, err := GetFactory("jenkins")
	require.NoError(t, err)
	assert.Same(t, factory, got.(*fakeFactory))
}

func TestGetFactoryNotFound(t *testing.T) {
	UnregisterAll()
	defer UnregisterAll()

	_, err := GetFactory("hudson")
	assert.Error(t, err)
}

func TestRegisterNilPanics(t *testing.T) {
	UnregisterAll()
	defer UnregisterAll()

	assert.Panics(t, func() {
		Register("jenkins", nil)
	})
}

func TestRegisterDuplicatePanics(t *testing.T) {
	UnregisterAll()
	defer UnregisterAll()

	Register("jenkins", &fakeFactory{})

	assert.Panics(t, func() {
		Register("jenkins", &fakeFactory{})
	})
}

func TestListFactories(t *testing.T) {
	UnregisterAll()
	defer UnregisterAll()

	Register("jenkins", &fakeFactory{})
	Register("hudson", &fakeFactory{})

	names := ListFactories()
	assert.ElementsMatch(t, []string{"jenkins", "hudson"}, names)
}
