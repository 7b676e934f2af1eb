package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_SectionOrderIsStable(t *testing.T) {
	tax := Default()
	var names []string
	for _, s := range tax.Sections {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"Language", "Standard Library", "System", "Type Methods"}, names)
}

func TestDefault_CategoriesAreUniqueAcrossSections(t *testing.T) {
	seen := map[string]string{}
	for _, s := range Default().Sections {
		for _, c := range s.Categories {
			require.NotContains(t, seen, c, "category %q in both %q and %q", c, seen[c], s.Name)
			seen[c] = s.Name
		}
	}
}

func TestDefault_DeclaresDefaultCategory(t *testing.T) {
	require.True(t, Default().Declares(DefaultCategory))
}

func TestCategories_FlattensInDisplayOrder(t *testing.T) {
	tax := Taxonomy{Sections: []Section{
		{Name: "A", Categories: []string{"a1", "a2"}},
		{Name: "B", Categories: []string{"b1"}},
	}}
	require.Equal(t, []string{"a1", "a2", "b1"}, tax.Categories())
}

func TestDeclares_UnknownCategory_False(t *testing.T) {
	require.False(t, Default().Declares("Telepathy"))
}
