package zotero_test

import (
	"testing"

	"github.com/je4/zotdata/pkg/zotero"
	"github.com/stretchr/testify/assert"
)

func TestNewKey(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := zotero.NewKey()
		assert.Len(t, key, zotero.KeyLength)
		assert.True(t, zotero.ValidKey(key), key)
		seen[key] = true
	}
	assert.Greater(t, len(seen), 90)
}

func TestValidKey(t *testing.T) {
	assert.True(t, zotero.ValidKey("HPXL75GC"))
	assert.False(t, zotero.ValidKey("HPXL75G0"))
	assert.False(t, zotero.ValidKey("hpxl75gc"))
	assert.False(t, zotero.ValidKey("HPXL75G"))
	assert.False(t, zotero.ValidKey("HPXL75GCC"))
	assert.False(t, zotero.ValidKey(""))
}
