package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeCommand_DocumentsListingParameters(t *testing.T) {
	for _, param := range []string{"?sort=year", "?q=", "?tech="} {
		assert.Contains(t, serveCmd.Long, param)
	}
	assert.Contains(t, serveCmd.Long, "/api/{works|projects}/{slug}     one entry (?render=html)")
}
