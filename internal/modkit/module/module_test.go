package module

import (
	"testing"

	phttp "storefront/internal/platform/net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Lookup interface{ Find(id string) string }

type finder struct{}

func (finder) Find(id string) string { return "found " + id }

type bundle struct {
	Lookup Lookup
	hidden Lookup
}

type stub struct{ ports any }

func (stub) MountRoutes(phttp.Router) {}
func (s stub) Ports() any             { return s.ports }
func (stub) Name() string             { return "stub" }

func TestPortsOf(t *testing.T) {
	t.Parallel()

	l, ok := PortsOf[Lookup](stub{ports: finder{}})
	require.True(t, ok)
	assert.Equal(t, "found 1", l.Find("1"))

	l, ok = PortsOf[Lookup](stub{ports: bundle{Lookup: finder{}}})
	require.True(t, ok)
	assert.Equal(t, "found 2", l.Find("2"))

	_, ok = PortsOf[Lookup](stub{ports: bundle{hidden: finder{}}})
	assert.False(t, ok)

	l, ok = PortsOf[Lookup](stub{ports: &bundle{Lookup: finder{}}})
	require.True(t, ok)
	assert.Equal(t, "found 3", l.Find("3"))

	_, ok = PortsOf[Lookup](stub{ports: (*bundle)(nil)})
	assert.False(t, ok)

	_, ok = PortsOf[Lookup](stub{ports: bundle{}})
	assert.False(t, ok)

	_, ok = PortsOf[Lookup](stub{})
	assert.False(t, ok)

	assert.PanicsWithValue(t, "module: stub has no port of type module.Lookup", func() {
		MustPortsOf[Lookup](stub{})
	})
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("products", bundle{Lookup: finder{}})
	b, ok := PortsAs[bundle]("products")
	require.True(t, ok)
	assert.Equal(t, "found x", b.Lookup.Find("x"))

	_, ok = PortsAs[string]("products")
	assert.False(t, ok)
	_, ok = PortsAs[bundle]("orders")
	assert.False(t, ok)

	Register("categories", nil)
	assert.Equal(t, []string{"categories", "products"}, Names())
}
