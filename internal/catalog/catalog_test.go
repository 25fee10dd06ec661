package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/foodgallery/internal/gallery"
)

func TestBundledCatalogHasFiveCards(t *testing.T) {
	t.Parallel()
	c, err := Bundled()
	require.NoError(t, err)
	require.Len(t, c.Entries, 5)
	require.Equal(t, "Butter Chicken with Naan", c.Entries[0].DishName)
	require.Equal(t, "610", c.Entries[4].Calories)

	cards := c.Cards()
	require.Len(t, cards, 5)
	require.Equal(t, gallery.AssetImage("food3.jpg"), cards[2].Image)
	require.Equal(t, "Sushi", cards[2].DishName)
	seen := map[string]bool{}
	for _, card := range cards {
		require.NotEmpty(t, card.ID)
		require.False(t, seen[card.ID])
		seen[card.ID] = true
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[card]]
asset = "rolex.jpg"
dish_name = "Rolex"
calories = "520"
ingredients = "Chapati, Egg, Cabbage, Tomato"
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Entries, 1)
	require.Equal(t, "Rolex", c.Entries[0].DishName)
}

func TestLoadEmptyPathUsesBundled(t *testing.T) {
	t.Parallel()
	c, err := Load("  ")
	require.NoError(t, err)
	require.Len(t, c.Entries, 5)
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`
[[card]]
asset = "pilau.jpg"
dish_name = "Pilau"
calories = "lots"
ingredients = "Rice"
`))
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Contains(t, ve.Path, "calories")

	_, err = Parse([]byte(`
[[card]]
asset = "posho.jpg"
calories = "300"
ingredients = "Maize"
`))
	require.True(t, errors.As(err, &ve))
}

func TestParseRejectsBadTOML(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`[[card]`))
	require.Error(t, err)
}
