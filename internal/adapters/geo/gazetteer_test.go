package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gitgeo/internal/adapters/geo"
	"go.trai.ch/gitgeo/internal/core/domain"
)

func TestNewResolverFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("custom data", func(t *testing.T) {
		t.Parallel()

		r, err := geo.NewResolverFromYAMLForTest([]byte(`
countries:
  - name: Atlantis
    codes: [ATL]
    aliases: [the lost city]
regions:
  - {name: Poseidonia, code: PO, country: Atlantis}
cities:
  Ys: Atlantis
`))
		require.NoError(t, err)

		for _, loc := range []string{"Atlantis", "ATL", "The Lost City", "Somewhere, PO", "Poseidonia", "Ys"} {
			assert.Equal(t, "Atlantis", r.ResolveCountry(domain.DeclaredLocation(loc)), loc)
		}
		assert.Equal(t, domain.UnknownCountry, r.ResolveCountry(domain.DeclaredLocation("atl")))
	})

	t.Run("iso codes only match whole segments", func(t *testing.T) {
		t.Parallel()

		r, err := geo.NewResolverFromYAMLForTest([]byte(`
countries:
  - name: Atlantis
    iso: AX
  - name: Lemuria
    iso: LM
regions:
  - {name: Mu, code: AX, country: Lemuria}
cities:
  Ys: Atlantis
`))
		require.NoError(t, err)

		assert.Equal(t, "Atlantis", r.ResolveCountry(domain.DeclaredLocation("Somewhere, Ys, AX")))
		assert.Equal(t, "Lemuria", r.ResolveCountry(domain.DeclaredLocation("Somewhere, AX")))
		assert.Equal(t, "Lemuria", r.ResolveCountry(domain.DeclaredLocation("Somewhere, LM")))
		assert.Equal(t, domain.UnknownCountry, r.ResolveCountry(domain.DeclaredLocation("Somewhere LM")))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := geo.NewResolverFromYAMLForTest([]byte("countries: [\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrGazetteerLoadFailed.Error())
	})

	t.Run("country without name", func(t *testing.T) {
		t.Parallel()

		_, err := geo.NewResolverFromYAMLForTest([]byte("countries:\n  - aliases: [x]\n"))
		require.Error(t, err)
	})
}
