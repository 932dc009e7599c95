package ports

import "fmt"

// SymbolKind classifies a symbol using the LSP numeric code space (1-26).
// Values outside that range are preserved but render as "kind(N)".
type SymbolKind int

const (
	KindFile SymbolKind = iota + 1
	KindModule
	KindNamespace
	KindPackage
	KindClass
	KindMethod
	KindProperty
	KindField
	KindConstructor
	KindEnum
	KindInterface
	KindFunction
	KindVariable
	KindConstant
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindObject
	KindKey
	KindNull
	KindEnumMember
	KindStruct
	KindEvent
	KindOperator
	KindTypeParameter
)

var kindNames = [...]string{
	"file", "module", "namespace", "package", "class", "method", "property",
	"field", "constructor", "enum", "interface", "function", "variable",
	"constant", "string", "number", "boolean", "array", "object", "key",
	"null", "enum member", "struct", "event", "operator", "type parameter",
}

func (k SymbolKind) String() string {
	if k < KindFile || k > KindTypeParameter {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k-1]
}

// SymbolInformation is one workspace-symbols match. Location is the
// normalized 1-based position of the symbol's declaration.
type SymbolInformation struct {
	Name      string
	Kind      SymbolKind
	Container string
	Location  Location
}

// DocumentSymbol is one entry of a file outline. The tool reports these
// hierarchically; Children preserves that nesting. Location is the
// normalized 1-based position of the symbol's name.
type DocumentSymbol struct {
	Name     string
	Detail   string
	Kind     SymbolKind
	Location Location
	Children []DocumentSymbol
}
