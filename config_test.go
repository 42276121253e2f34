package rxp

import (
	"bytes"
	"testing"
	"time"

	"github.com/coregx/rxp/variable"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"default", func(*Config) {}, ""},
		{"auto engine", func(c *Config) { c.Engine = EngineAuto }, ""},
		{"timeout", func(c *Config) { c.MatchTimeout = time.Second }, ""},
		{"unknown engine", func(c *Config) { c.Engine = Engine(9) }, "Engine"},
		{"negative timeout", func(c *Config) { c.MatchTimeout = -time.Second }, "MatchTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)

			err := config.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalidConfig)
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			require.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestEngineString(t *testing.T) {
	require.Equal(t, "backtrack", EngineBacktrack.String())
	require.Equal(t, "linear", EngineLinear.String())
	require.Equal(t, "auto", EngineAuto.String())
	require.Equal(t, "unknown", Engine(9).String())
}

func TestNewBuilder(t *testing.T) {
	_, err := NewBuilder(Config{Engine: Engine(9)})
	require.ErrorIs(t, err, ErrInvalidConfig)

	// zero values are filled in
	b, err := NewBuilder(Config{})
	require.NoError(t, err)
	require.NotNil(t, b.Config().Names)
	require.NotNil(t, b.Config().Logger)
	require.NoError(t, b.Init("a").IsVariable().Err())
}

func TestBuilderNames(t *testing.T) {
	config := DefaultConfig()
	config.Names = &variable.Sequence{Prefix: "n"}
	b, err := NewBuilder(config)
	require.NoError(t, err)

	first := b.Init("a").IsVariable()
	second := b.Init("b").IsVariable()
	require.Equal(t, `(?<na>(?:a)\k<na>)`, first.Text())
	require.Equal(t, `(?<nb>(?:b)\k<nb>)`, second.Text())

	// the builder's namer follows the unit through later operations
	third := b.Init("c").Or("d").IsCaptured().IsVariable()
	require.Equal(t, `(?<nc>((?:(?:c)|(?:d)))\k<nc>)`, third.Text())
}

func TestBuilderEngine(t *testing.T) {
	config := DefaultConfig()
	config.Engine = EngineLinear
	b, err := NewBuilder(config)
	require.NoError(t, err)

	re, err := b.Init("abc").Construct()
	require.NoError(t, err)
	require.Equal(t, EngineLinear, re.Engine())

	// ConstructWithConfig overrides the builder
	re, err = b.Init("abc").ConstructWithConfig(DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, EngineBacktrack, re.Engine())

	_, err = b.Init("abc").ConstructWithConfig(Config{MatchTimeout: -1})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConstructLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	config := DefaultConfig()
	config.Engine = EngineAuto
	config.Logger = &logger
	b, err := NewBuilder(config)
	require.NoError(t, err)

	v := b.Init("x").IsVariable("v")
	_, err = b.Init(v, v).Construct("g")
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "linear engine rejected pattern")
	require.Contains(t, out, `"message":"constructed pattern"`)
	require.Contains(t, out, `"engine":"backtrack"`)
	require.Contains(t, out, `"flags":"g"`)
	require.Contains(t, out, `"variables":1`)
}

func TestConstructQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	config := DefaultConfig()
	config.Logger = &logger
	b, err := NewBuilder(config)
	require.NoError(t, err)

	_, err = b.Init("x").Construct()
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestMatchTimeout(t *testing.T) {
	config := DefaultConfig()
	config.MatchTimeout = 250 * time.Millisecond

	re, err := Init("a").ConstructWithConfig(config)
	require.NoError(t, err)
	require.Equal(t, config.MatchTimeout, re.Backtracking().MatchTimeout)
	require.True(t, re.MatchString("cat"))
}
