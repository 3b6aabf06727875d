package catalog_test

import (
	"testing"

	"github.com/m-mizutani/ecotravel/pkg/catalog"
	"github.com/m-mizutani/gt"
)

func TestLoad(t *testing.T) {
	destinations, err := catalog.Load()
	gt.NoError(t, err)
	gt.A(t, destinations).Length(4)

	names := map[string]catalog.Destination{}
	for _, d := range destinations {
		names[d.Name] = d
	}

	kyoto, ok := names["Kyoto"]
	gt.True(t, ok)
	gt.Equal(t, kyoto.Country, "Japan")
	gt.A(t, kyoto.Events).Longer(0)
	gt.A(t, kyoto.Tags).Longer(0)
	gt.S(t, kyoto.Description).Contains("cultural heart")
}
