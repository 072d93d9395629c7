package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc_JSONValidoYRegistrado(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	assert.Contains(t, doc["paths"], "/api/carrito")

	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestSwaggerJSON_MismasRutas(t *testing.T) {
	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	var file, tmpl map[string]any
	require.NoError(t, json.Unmarshal(raw, &file))
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &tmpl))

	assert.Equal(t, len(file["paths"].(map[string]any)), len(tmpl["paths"].(map[string]any)))
}
