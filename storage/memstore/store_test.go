package memstore_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/darasa/darasa-go/storage/memstore"
)

func TestStore(t *testing.T) {
	s := memstore.New()

	assert.NoError(t, s.Set("token", "tok-1"))
	val, ok, err := s.Get("token")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", val)
	assert.Equal(t, 1, s.Len())

	assert.NoError(t, s.Delete("token", "user"))
	assert.Equal(t, 0, s.Len())
}

func TestStore_FailWrites(t *testing.T) {
	s := memstore.New()
	boom := errors.New("disk full")
	s.FailWrites = boom

	assert.Equal(t, boom, s.Set("token", "tok-1"))
	assert.Equal(t, boom, s.Delete("token"))
	assert.Equal(t, 0, s.Len())
}
