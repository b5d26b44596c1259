package tac

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestNewSymbolTable(t *testing.T) {
	st := NewSymbolTable()
	be.True(t, st != nil)
	be.Equal(t, st.Depth(), 1)
	be.True(t, st.Lookup("x") == nil)
}

func TestDeclareAndLookup(t *testing.T) {
	st := NewSymbolTable()

	symbol := st.Declare("x", TypeI64, true)
	be.Equal(t, *symbol, Symbol{Name: "x", Type: TypeI64, Mutable: true})

	found := st.Lookup("x")
	be.True(t, found == symbol)
	be.True(t, st.Lookup("y") == nil)
}

func TestRedeclareInSameScopeReplaces(t *testing.T) {
	st := NewSymbolTable()
	st.Declare("x", TypeI32, false)
	st.Declare("x", TypeBool, true)

	symbol := st.Lookup("x")
	be.Equal(t, symbol.Type, TypeBool)
	be.True(t, symbol.Mutable)
}

func TestShadowingAndPop(t *testing.T) {
	st := NewSymbolTable()
	outer := st.Declare("x", TypeI32, true)

	st.PushScope()
	be.Equal(t, st.Depth(), 2)
	inner := st.Declare("x", TypeI64, false)
	st.Declare("y", TypeBool, false)
	be.True(t, st.Lookup("x") == inner)

	st.PushScope()
	// Outer bindings stay visible from nested scopes.
	be.True(t, st.Lookup("x") == inner)
	be.Equal(t, st.Lookup("y").Type, TypeBool)
	st.PopScope()

	st.PopScope()
	be.Equal(t, st.Depth(), 1)
	be.True(t, st.Lookup("x") == outer)
	be.True(t, st.Lookup("y") == nil)
}

func TestPopRootScopePanics(t *testing.T) {
	st := NewSymbolTable()

	defer func() {
		r := recover()
		be.True(t, r != nil)
		be.Equal(t, r.(string), "PopScope called on the root scope")
	}()

	st.PopScope()
}
