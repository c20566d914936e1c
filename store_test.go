package stylecast

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInsertAndLookup(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	base := MustRule(Selector{Base: "button"}, map[string]string{"border-radius": "4px"})
	class := MustRule(Selector{Base: "button", Class: "start-button"}, map[string]string{"background-color": "#2196F3"})

	require.NoError(t, store.Insert(base))
	require.NoError(t, store.Insert(class))
	assert.Equal(t, 2, store.Len())

	got, ok := store.Lookup(Selector{Base: "button", Class: "start-button"})
	require.True(t, ok)
	v, _ := got.Get(PropBackgroundColor)
	assert.Equal(t, "#2196f3", v.String())

	// Exact shape only: no partial matching at this layer.
	_, ok = store.Lookup(Selector{Base: "button", Class: "start-button", State: StateHover})
	assert.False(t, ok)
	_, ok = store.Lookup(Selector{Base: "button", Class: "other"})
	assert.False(t, ok)
}

func TestStoreDuplicateSelectorRejected(t *testing.T) {
	sel := Selector{Base: "button", Class: "navigation-button", State: StateHover}
	first := MustRule(sel, map[string]string{"background-color": "#546E7A"})
	second := MustRule(sel, map[string]string{"background-color": "#000000"})

	store, err := NewStore(first)
	require.NoError(t, err)

	err = store.Insert(second)
	var dup *DuplicateSelectorError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, sel, dup.Selector)

	// Never silently overwritten: the first rule survives.
	got, ok := store.Lookup(sel)
	require.True(t, ok)
	v, _ := got.Get(PropBackgroundColor)
	assert.Equal(t, "#546e7a", v.String())
}

func TestNewRuleValidation(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
		raw  map[string]string
	}{
		{
			name: "unknown property",
			sel:  Selector{Base: "button"},
			raw:  map[string]string{"not-a-real-property": "1"},
		},
		{
			name: "malformed value",
			sel:  Selector{Base: "button"},
			raw:  map[string]string{"opacity": "very"},
		},
		{
			name: "good property with a bad sibling",
			sel:  Selector{Base: "button"},
			raw:  map[string]string{"border-radius": "4px", "background-color": "nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRule(tt.sel, tt.raw)
			var ipe *InvalidPropertyError
			require.ErrorAs(t, err, &ipe)
		})
	}
}

func TestNewRuleAllOrNothing(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	_, err = NewRule(Selector{Base: "button"}, map[string]string{
		"border-radius":       "4px",
		"not-a-real-property": "x",
	})
	require.Error(t, err)

	// The failed rule never reached the store.
	assert.Zero(t, store.Len())
	_, ok := store.Lookup(Selector{Base: "button"})
	assert.False(t, ok)
}

func TestStoreSelectorsSorted(t *testing.T) {
	store, err := NewStore(
		MustRule(Selector{Base: "button", Class: "start-button"}, nil),
		MustRule(Selector{Base: "button"}, nil),
		MustRule(Selector{Base: "button", Class: "start-button", State: StateHover}, nil),
	)
	require.NoError(t, err)

	sels := store.Selectors()
	require.Len(t, sels, 3)
	assert.Equal(t, "button", sels[0].String())
	assert.Equal(t, "button.start-button", sels[1].String())
	assert.Equal(t, "button.start-button:hover", sels[2].String())
}

func TestEngineSwap(t *testing.T) {
	before, err := LoadString(`button { background-color: #111111; }`)
	require.NoError(t, err)
	after, err := LoadString(`button { background-color: #222222; }`)
	require.NoError(t, err)

	engine := NewEngine(before)
	d := WidgetDescriptor{BaseType: "button"}

	style, err := engine.Resolve(d)
	require.NoError(t, err)
	v, _ := style.Get(PropBackgroundColor)
	assert.Equal(t, "#111111", v.String())

	engine.Swap(after)
	style, err = engine.Resolve(d)
	require.NoError(t, err)
	v, _ = style.Get(PropBackgroundColor)
	assert.Equal(t, "#222222", v.String())
}

func TestEngineConcurrentResolve(t *testing.T) {
	store, err := LoadFile("testdata/annotator.qss")
	require.NoError(t, err)
	replacement, err := LoadString(`button { background-color: #000000; }`)
	require.NoError(t, err)

	engine := NewEngine(store)
	d := WidgetDescriptor{BaseType: "button", StyleClass: "start-button"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				style, err := engine.Resolve(d)
				if err != nil {
					t.Error(err)
					return
				}
				v, ok := style.Get(PropBackgroundColor)
				if !ok {
					t.Error("background-color missing")
					return
				}
				// Either snapshot is fine; a torn mix is not.
				if s := v.String(); s != "#2196f3" && s != "#000000" {
					t.Errorf("unexpected background %q", s)
					return
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		engine.Swap(replacement)
		engine.Swap(store)
	}
	wg.Wait()
}
