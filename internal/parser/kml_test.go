package parser

import (
	"testing"

	"github.com/sounny/geoaiagents/internal/geo"

	"github.com/stretchr/testify/assert"
)

const kmlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Minneapolis</name>
      <Point>
        <coordinates>-93.265,44.9778,0</coordinates>
      </Point>
    </Placemark>
    <Placemark>
      <name>Sydney</name>
      <Point>
        <coordinates>151.207,-33.868</coordinates>
      </Point>
    </Placemark>
  </Document>
</kml>`

func TestKMLPoints(t *testing.T) {
	t.Run("placemark points", func(t *testing.T) {
		got := KMLPoints(kmlDoc)
		assert.Equal(t, []geo.Point{
			{Lat: 44.9778, Lon: -93.265},
			{Lat: -33.868, Lon: 151.207},
		}, got)
	})

	t.Run("line string tuples", func(t *testing.T) {
		got := KMLPoints(`<kml xmlns="http://www.opengis.net/kml/2.2"><Placemark><LineString>
			<coordinates>
				0,0 1,1 2,2
			</coordinates>
		</LineString></Placemark></kml>`)
		assert.Len(t, got, 3)
	})

	t.Run("bad tuples skipped individually", func(t *testing.T) {
		got := KMLPoints(`<kml xmlns="http://www.opengis.net/kml/2.2"><Placemark><Point>
			<coordinates>-93.265,abc 10,20 151.207</coordinates>
		</Point></Placemark></kml>`)
		assert.Equal(t, []geo.Point{{Lat: 20, Lon: 10}}, got)
	})

	t.Run("out of range tuples skipped", func(t *testing.T) {
		got := KMLPoints(`<kml xmlns="http://www.opengis.net/kml/2.2"><Placemark><Point>
			<coordinates>200,45 10,20</coordinates>
		</Point></Placemark></kml>`)
		assert.Equal(t, []geo.Point{{Lat: 20, Lon: 10}}, got)
	})

	t.Run("non namespaced document yields nothing", func(t *testing.T) {
		assert.Empty(t, KMLPoints(`<kml><Placemark><Point><coordinates>1,2</coordinates></Point></Placemark></kml>`))
	})

	t.Run("malformed xml", func(t *testing.T) {
		assert.Empty(t, KMLPoints(`<kml xmlns="http://www.opengis.net/kml/2.2"><Placemark>`))
		assert.Empty(t, KMLPoints(`not xml at all <<<`))
	})
}
