package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pstrings "dsld/pkg/platform/strings"
)

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `50\% \_x\\`, likeEscaper.Replace(`50% _x\`))
}

func TestFoldSQL(t *testing.T) {
	assert.Equal(t, "translate(lower(d.nombres), 'áàâäãéèêëíìîïóòôöõúùûüñç', 'aaaaaeeeeiiiiooooouuuunc')",
		foldSQL("d.nombres"))
}

func TestFoldSQLCoversSearchFold(t *testing.T) {
	for _, r := range "áàâäãéèêëíìîïóòôöõúùûüñç" {
		assert.Contains(t, foldSQL("c"), string(r))
		assert.NotContains(t, pstrings.Fold(string(r)), string(r))
	}
}
