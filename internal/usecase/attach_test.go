package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ownerID string
	owner   string
}

func TestDistinctKeys(t *testing.T) {
	records := []record{
		{ownerID: "a"},
		{ownerID: "b"},
		{ownerID: "a"},
		{ownerID: "c"},
		{ownerID: "b"},
	}

	keys := distinctKeys(records, func(r *record) string { return r.ownerID })
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestDistinctKeysEmpty(t *testing.T) {
	keys := distinctKeys(nil, func(r *record) string { return r.ownerID })
	assert.Empty(t, keys)
}

func TestAttachByKey(t *testing.T) {
	records := []record{
		{ownerID: "a"},
		{ownerID: "missing"},
	}
	byKey := map[string]string{"a": "Dr. A"}

	attachByKey(records,
		func(r *record) string { return r.ownerID },
		byKey,
		func(k string) string { return "Unknown (" + k + ")" },
		func(r *record, name string) { r.owner = name },
	)

	assert.Equal(t, "Dr. A", records[0].owner)
	assert.Equal(t, "Unknown (missing)", records[1].owner)
}
