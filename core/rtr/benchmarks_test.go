package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmvc/core/rtr"
	"github.com/rohanthewiz/rmvc/core/rtr/testdata"
)

func loadTable(tb testing.TB) (*rtr.RouteTable[string], []testdata.Route) {
	tb.Helper()

	routes, err := testdata.Routes("testdata/api.txt")
	if err != nil {
		tb.Fatal(err)
	}

	table := rtr.NewRouteTable[string]()
	for _, route := range routes {
		table.Add(rtr.NewHandlerKey(route.Path, route.Method), route.Method+" "+route.Path)
	}
	return table, routes
}

func TestRouteFile(t *testing.T) {
	table, routes := loadTable(t)
	assert.Equal(t, table.Len(), len(routes))

	for _, route := range routes {
		h, ok := table.Lookup(rtr.NewHandlerKey(route.Path, route.Method))
		assert.True(t, ok)
		assert.Equal(t, h, route.Method+" "+route.Path)
	}
}

func BenchmarkAPI(b *testing.B) {
	table, _ := loadTable(b)

	b.Run("Root", func(b *testing.B) {
		key := rtr.NewHandlerKey("/", "GET")
		for i := 0; i < b.N; i++ {
			table.Lookup(key)
		}
	})

	b.Run("Depth4", func(b *testing.B) {
		key := rtr.NewHandlerKey("/api/project/issues/closed", "GET")
		for i := 0; i < b.N; i++ {
			table.Lookup(key)
		}
	})

	b.Run("Miss", func(b *testing.B) {
		key := rtr.NewHandlerKey("/api/unknown", "GET")
		for i := 0; i < b.N; i++ {
			table.Lookup(key)
		}
	})
}
