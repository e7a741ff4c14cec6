package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentValidates(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "HODOS 360 Demo API", doc.Info.Title)
	for _, path := range []string{
		"/healthz", "/api/catalog", "/api/actions",
		"/api/actions/{name}", "/api/actions/{name}/events",
		"/api/share", "/share/{token}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s", path)
	}
}
