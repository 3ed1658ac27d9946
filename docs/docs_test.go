package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDoc_DescribesDeleteBehavior(t *testing.T) {
	var doc struct {
		Definitions map[string]struct {
			Properties map[string]struct {
				Description string   `json:"description"`
				Enum        []string `json:"enum"`
			} `json:"properties"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	action, ok := doc.Definitions["handler.ActOnItemRequest"].Properties["action"]
	require.True(t, ok)
	assert.Contains(t, action.Description, "FORCE_UNEQUIP_ON_DELETE")
	assert.ElementsMatch(t, []string{"consume", "delete", "equip", "unequip"}, action.Enum)
}
