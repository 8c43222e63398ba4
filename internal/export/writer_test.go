package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealcraft/mealcraft/internal/model"
)

func TestWriteShoppingList(t *testing.T) {
	items := []*model.IngredientLine{
		model.NewIngredientLine("Milk", 0.5, "carton"),
		model.NewIngredientLine("Eggs", 12, "count"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteShoppingList(&buf, items))

	assert.Equal(t, "Milk\t0.5\tcarton\nEggs\t12\tcount\n", buf.String())
}

func TestWriteShoppingList_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteShoppingList(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopping.txt")
	items := []*model.IngredientLine{
		model.NewIngredientLine("Bread", 1, "loaf"),
	}

	require.NoError(t, ExportFile(path, items))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Bread\t1\tloaf\n", string(content))
}
