package guideline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 6)
	all[0].Tips[0] = "changed"
	assert.Equal(t, "Complete each phase before moving to the next", All()[0].Tips[0])
}

func TestByImportance(t *testing.T) {
	assert.Len(t, ByImportance(Critical), 4)
	assert.Len(t, ByImportance(Recommended), 2)
	assert.Empty(t, ByImportance(Optional))
}
