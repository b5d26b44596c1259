package tac

// Symbol is a variable binding visible in some scope.
type Symbol struct {
	Name    string
	Type    Type
	Mutable bool
}

// SymbolTable is a stack of lexical scopes. Scope 0 is the program's root
// scope; it is pushed on construction and never popped.
type SymbolTable struct {
	scopes []map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]*Symbol{make(map[string]*Symbol)},
	}
}

// PushScope enters a new innermost scope.
func (st *SymbolTable) PushScope() {
	st.scopes = append(st.scopes, make(map[string]*Symbol))
}

// PopScope discards the innermost scope and all of its bindings.
func (st *SymbolTable) PopScope() {
	if len(st.scopes) <= 1 {
		panic("PopScope called on the root scope")
	}
	st.scopes[len(st.scopes)-1] = nil
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// Depth returns the number of scopes on the stack, including the root.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// Declare binds name in the innermost scope. An outer binding of the same
// name is shadowed until the scope is popped; a binding in the same scope is
// replaced.
func (st *SymbolTable) Declare(name string, typ Type, mutable bool) *Symbol {
	symbol := &Symbol{Name: name, Type: typ, Mutable: mutable}
	st.scopes[len(st.scopes)-1][name] = symbol
	return symbol
}

// Lookup resolves name from the innermost scope outwards. It returns nil if
// no enclosing scope binds name.
func (st *SymbolTable) Lookup(name string) *Symbol {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if symbol, ok := st.scopes[i][name]; ok {
			return symbol
		}
	}
	return nil
}
