package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Person struct {
	UID  string
	Name string
	Age  int
}

var (
	person = Person{UID: "123", Name: "Eva", Age: 42}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := newInMemoryStore[Person](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = ps.Put(c, person.UID, person)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		p, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, person, p)
	})

	t.Run("List", func(t *testing.T) {
		persons, err := ps.List(c)
		assert.NoError(t, err)
		assert.Len(t, persons, 1)
	})

	t.Run("Query with equality filter", func(t *testing.T) {
		err = ps.Put(c, "456", Person{UID: "456", Name: "Marc", Age: 51})
		assert.NoError(t, err)

		persons, err := ps.Query(c, []Filter{{Field: "Name", Compare: "=", Value: "Marc"}}, "")
		assert.NoError(t, err)
		assert.Len(t, persons, 1)
		assert.Equal(t, "456", persons[0].UID)

		persons, err = ps.Query(c, []Filter{{Field: "Name", Compare: "=", Value: "Nobody"}}, "")
		assert.NoError(t, err)
		assert.Empty(t, persons)
	})

	t.Run("Delete", func(t *testing.T) {
		err = ps.Delete(c, person.UID)
		assert.NoError(t, err)

		_, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Transaction rollback on error", func(t *testing.T) {
		err = ps.RunInTransaction(c, func(c context.Context) error {
			return assert.AnError
		})
		assert.Error(t, err)
	})
}
