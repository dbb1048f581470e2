package post

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hientensai/blogapi/internal/platform/constants"
)

/*
TestPublishedFilter pins the visibility predicate to the canonical status
constant so the two cannot drift apart.
*/
func TestPublishedFilter(t *testing.T) {
	assert.Equal(t, "p.status = '"+constants.StatusPublish+"'", publishedFilter)
}
