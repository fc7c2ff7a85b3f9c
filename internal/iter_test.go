package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := maps.All(map[string]string{"A": "1"})
	b := maps.All(map[string]string{"B": "2", "C": "3"})

	all := maps.Collect(IterSeq2Concat(a, b))
	assert.Equal(map[string]string{"A": "1", "B": "2", "C": "3"}, all)

	count := 0
	for range IterSeq2Concat(a, b) {
		count++
		break
	}
	assert.Equal(1, count)

	assert.Empty(maps.Collect(IterSeq2Concat[string, string]()))
}
