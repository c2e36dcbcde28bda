package boot_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/appboot/boot"
)

type fakeWindowing struct{ Name string }

// Bind
func TestLocator_BindAndGet(t *testing.T) {
	t.Parallel()

	l := boot.NewLocator()
	key := boot.ServiceKey("windowing")
	svc := &fakeWindowing{Name: "X11"}

	require.NoError(t, l.Bind(key, svc))
	assert.True(t, l.Has(key))

	raw, ok := l.GetAny(key)
	require.True(t, ok)
	assert.Same(t, svc, raw)

	got, ok := boot.GetAs[*fakeWindowing](l, key)
	require.True(t, ok)
	assert.Same(t, svc, got)
}

func TestLocator_BindErrors(t *testing.T) {
	t.Parallel()

	l := boot.NewLocator()
	key := boot.ServiceKey("windowing")

	assert.ErrorIs(t, l.Bind(key, nil), boot.ErrNilService)
	assert.False(t, l.Has(key))

	require.NoError(t, l.Bind(key, "first"))
	err := l.Bind(key, "second")

	var dup *boot.DuplicateServiceError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, key, dup.Key)
	assert.Equal(t, `boot: duplicate service key "windowing"`, err.Error())

	got, _ := boot.GetAs[string](l, key)
	assert.Equal(t, "first", got)
}

// Typed retrieval
func TestLocator_TryGetAs(t *testing.T) {
	t.Parallel()

	l := boot.NewLocator()
	require.NoError(t, l.Bind("title", "demo"))

	got, err := boot.TryGetAs[string](l, "title")
	require.NoError(t, err)
	assert.Equal(t, "demo", got)

	_, err = boot.TryGetAs[string](l, "missing")
	var missing *boot.MissingServiceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, boot.ServiceKey("missing"), missing.Key)
	assert.Equal(t, `boot: service "missing" missing`, err.Error())

	_, err = boot.TryGetAs[int](l, "title")
	var wrong *boot.WrongTypeServiceError
	require.ErrorAs(t, err, &wrong)
	assert.Equal(t, "string", wrong.GotType)
	assert.Equal(t, `boot: service "title" has wrong type (string)`, err.Error())

	_, ok := boot.GetAs[int](l, "title")
	assert.False(t, ok)
}

func TestLocator_MustGetAs(t *testing.T) {
	t.Parallel()

	l := boot.NewLocator()
	require.NoError(t, l.Bind("n", 42))

	assert.Equal(t, 42, boot.MustGetAs[int](l, "n"))
	assert.Panics(t, func() { boot.MustGetAs[int](l, "nope") })
	assert.Panics(t, func() { boot.MustGetAs[string](l, "n") })
}

func TestLocator_KeysSortedAndNilSafe(t *testing.T) {
	t.Parallel()

	l := boot.NewLocator()
	require.NoError(t, l.Bind("b", 1))
	require.NoError(t, l.Bind("a", 2))
	assert.Equal(t, []boot.ServiceKey{"a", "b"}, l.Keys())

	var nilLocator *boot.Locator
	assert.ErrorIs(t, nilLocator.Bind("a", 1), boot.ErrNilLocator)
	assert.False(t, nilLocator.Has("a"))
	assert.Nil(t, nilLocator.Keys())
	_, err := boot.TryGetAs[int](nilLocator, "a")
	assert.Error(t, err)
}
