package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodShipCfg = `# test vessel
length_m = 120
width_m  = 20
max_weight_tonnes = 15000
lightship_weight_tonnes = 5000
lightship_kg_m = 6
`

func TestParseShip_Complete(t *testing.T) {
	ship, err := ParseShip(strings.NewReader(goodShipCfg))
	require.NoError(t, err)

	assert.Equal(t, 120.0, ship.Length)
	assert.Equal(t, 20.0, ship.Width)
	assert.Equal(t, 15_000_000.0, ship.MaxWeight, "tonnes converted to kilograms")
	assert.Equal(t, 5_000_000.0, ship.LightshipWeight)
	assert.Equal(t, 6.0, ship.LightshipKG)
}

func TestParseShip_MissingFieldFails(t *testing.T) {
	cfg := "length_m = 120\nwidth_m = 20\n"
	_, err := ParseShip(strings.NewReader(cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestParseShip_InvalidNumberFails(t *testing.T) {
	cfg := strings.Replace(goodShipCfg, "120", "twelve", 1)
	_, err := ParseShip(strings.NewReader(cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestParseShip_OutOfRangeFails(t *testing.T) {
	cfg := strings.Replace(goodShipCfg, "120", "0.001", 1)
	_, err := ParseShip(strings.NewReader(cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestParseShip_IgnoresCommentsAndUnknownKeys(t *testing.T) {
	cfg := goodShipCfg + "# trailing comment\nfuel_tonnes = 900\n"
	ship, err := ParseShip(strings.NewReader(cfg))
	require.NoError(t, err)
	assert.Equal(t, 120.0, ship.Length)
}
