package numparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "datasize", DataSize.String())
	assert.Equal(t, "temperature", Temperature.String())
	assert.Equal(t, "unknown", Category(99).String())
}

func TestUnitsReturnsCopy(t *testing.T) {
	us := Units(Time)
	assert.Equal(t, []string{"ns", "us", "ms", "s", "m", "h"}, us)

	us[0] = "mangled"
	assert.Equal(t, []string{"ns", "us", "ms", "s", "m", "h"}, Units(Time))
}

func TestCategoriesCoverAllWhitelists(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, len(unitWhitelist))
	for _, cat := range cats {
		assert.NotEmpty(t, Units(cat), cat.String())
	}
}

func TestNoneAcceptsNoSuffix(t *testing.T) {
	assert.Empty(t, Units(None))

	var unit string
	_, err := Uint64("64KB", &unit, None)
	assert.Error(t, err)
}
