package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/hotelres/internal/config"
	"github.com/avstrong/hotelres/internal/reservation"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOTELRES_LOG_LEVEL", "error")

	var out bytes.Buffer

	cmd := NewRootCmd(config.NewViper())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCheapestCmd(t *testing.T) {
	out, err := run(t, "cheapest", "Rewards: 26Mar2009(thur), 27Mar2009(fri), 28Mar2009(sat)")
	require.NoError(t, err)
	assert.Equal(t, "Forest Inn\n", out)

	out, err = run(t, "cheapest", "Regular:", "16Mar2009(mon),", "17Mar2009(tue)")
	require.NoError(t, err)
	assert.Equal(t, "Lake Inn\n", out)
}

func TestCheapestCmdParseError(t *testing.T) {
	_, err := run(t, "cheapest", "Unknown: 17Mar2009(tues)")
	assert.ErrorIs(t, err, reservation.ErrInvalidCustomerType)

	_, err = run(t, "cheapest")
	assert.Error(t, err)
}

func TestQuotesCmd(t *testing.T) {
	out, err := run(t, "quotes", "regular: 20Mar2009(fri), 21Mar2009(sat), 22Mar2009(sun)")
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[1]), "Falls Inn")
	assert.Contains(t, string(lines[1]), "280")
	assert.Contains(t, string(lines[2]), "Lake Inn")
	assert.Contains(t, string(lines[3]), "Forest Inn")
}

func TestListCmd(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Lake Inn")
	assert.Contains(t, out, "2009-12-23..2010-01-03")
	assert.Contains(t, out, "2009-07-01..2009-09-30")
}

func TestListCmdWithoutSeed(t *testing.T) {
	t.Setenv("HOTELRES_CATALOG_SEED", "false")

	_, err := run(t, "quotes", "Regular: 16Mar2009(mon)")
	assert.ErrorIs(t, err, reservation.ErrNoHotels)
}
