package apps_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/scrollpack/apps"
	"github.com/plus3/scrollpack/config"
	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/panel"
	"github.com/plus3/scrollpack/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, cfg config.Config) (*apps.Set, *panel.Buffer) {
	t.Helper()
	buf := panel.NewBuffer()
	set, err := apps.Build(context.Background(), cfg, buf, apps.Options{
		Rand:    rand.New(rand.NewPCG(9, 9)),
		Offline: true,
	})
	require.NoError(t, err)
	return set, buf
}

func TestBuild(t *testing.T) {
	set, _ := build(t, config.Default())

	names := make([]string, len(set.Apps))
	for i, app := range set.Apps {
		names[i] = app.Name()
	}
	assert.Equal(t, []string{"weather", "tetris", "quotes"}, names)
	assert.NotNil(t, set.Tetris)
	assert.NotNil(t, set.Quotes)
	assert.NotNil(t, set.Weather)

	cfg := config.Default()
	cfg.Apps = []string{"tetris"}
	set, _ = build(t, cfg)
	assert.Len(t, set.Apps, 1)
	assert.Nil(t, set.Quotes)

	cfg.Apps = []string{"pong"}
	_, err := apps.Build(context.Background(), cfg, panel.NewBuffer(), apps.Options{Offline: true})
	assert.Error(t, err)

	cfg.Apps = nil
	_, err = apps.Build(context.Background(), cfg, panel.NewBuffer(), apps.Options{Offline: true})
	assert.Error(t, err)
}

// clicker double-clicks X once every cycle ticks and leaves the buttons
// alone otherwise.
type clicker struct {
	n     int
	cycle int
}

func (c *clicker) Sample() input.Buttons {
	defer func() { c.n++ }()
	switch c.n % c.cycle {
	case 1, 3:
		return input.Buttons{X: true}
	}
	return input.Buttons{}
}

func TestSwitchingThroughApps(t *testing.T) {
	cfg := config.Default()
	cfg.Quotes.File = "testdata/none.txt"
	set, buf := build(t, cfg)

	s := launcher.NewScheduler(buf, &clicker{cycle: 50})
	set.Register(s)

	seen := []string{}
	for i := 0; i < 200; i++ {
		s.Once(20 * time.Millisecond)
		app, _ := s.Active()
		if len(seen) == 0 || seen[len(seen)-1] != app.Name() {
			seen = append(seen, app.Name())
		}
	}
	assert.Equal(t, []string{"weather", "tetris", "quotes", "weather", "tetris"}, seen)

	stats := s.Stats()
	assert.Equal(t, int64(4), stats.Switches)
	for _, app := range stats.Apps {
		assert.Positive(t, app.InitCount, app.Name)
		assert.Positive(t, app.UpdateCount, app.Name)
	}

	snap := set.Tetris.Snapshot()
	assert.Equal(t, tetris.Play, snap.State)
}
