package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "bucket_manager",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
		assert.Nil(t, db)
	})
}

func TestDialectorFor(t *testing.T) {
	d, err := dialectorFor(Config{Driver: "mysql", Host: "db", Port: 3306, User: "u", Password: "p@ss", Name: "x"}, 5)
	assert.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = dialectorFor(Config{Driver: "sqlite", Name: ":memory:"}, 5)
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}
