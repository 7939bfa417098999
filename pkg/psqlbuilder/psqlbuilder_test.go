package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("payload").
		From("parking_collections").
		Where(squirrel.Eq{"name": "parking_slots"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT payload FROM parking_collections WHERE name = $1", query)
	assert.Equal(t, []interface{}{"parking_slots"}, args)
}

func TestInsert_DollarPlaceholders(t *testing.T) {
	query, args, err := Insert("parking_collections").
		Columns("name", "payload").
		Values("parking_zones", "[]").
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO parking_collections (name,payload) VALUES ($1,$2)", query)
	assert.Equal(t, []interface{}{"parking_zones", "[]"}, args)
}
