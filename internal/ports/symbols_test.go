package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolKind_KnownNames(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "class", KindClass.String())
	assert.Equal(t, "function", KindFunction.String())
	assert.Equal(t, "enum member", KindEnumMember.String())
	assert.Equal(t, "type parameter", KindTypeParameter.String())
}

func TestSymbolKind_EveryCodeHasAName(t *testing.T) {
	for k := KindFile; k <= KindTypeParameter; k++ {
		assert.NotContains(t, k.String(), "kind(", "kind %d should have a name", int(k))
	}
}

func TestSymbolKind_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, "kind(0)", SymbolKind(0).String())
	assert.Equal(t, "kind(27)", SymbolKind(27).String())
	assert.Equal(t, "kind(-3)", SymbolKind(-3).String())
}

func TestLocation_PathStripsFileScheme(t *testing.T) {
	loc := Location{URI: "file:///repo/models.py", Line: 10, Column: 5}
	assert.Equal(t, "/repo/models.py", loc.Path())

	// Non-URI identifiers pass through untouched.
	assert.Equal(t, "models.py", Location{URI: "models.py"}.Path())
}
