package database

import (
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
)

// The postgres dialect must be registered by this package; the default
// dialect emits ? placeholders that Postgres rejects.
func TestPostgresDialectRegistered(t *testing.T) {
	query, args, err := goqu.Dialect("postgres").
		From("weather_alerts").
		Select("id", "title").
		Where(goqu.Ex{"id": "abc"}).
		Prepared(true).
		ToSQL()

	assert.NoError(t, err)
	assert.Contains(t, query, "$1")
	assert.NotContains(t, query, "?")
	assert.Equal(t, []interface{}{"abc"}, args)
}
