package internal

import (
	"testing"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/tmp/badger")
	t.Setenv("BLUGE_FILEPATH", "/tmp/bluge")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CENSORED_WORDS", "badger, snake,,mushroom ")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("LIMIT_MESSAGES", "20")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("0.0.0.0:8080", config.Address())
	req.Equal(24*time.Hour, config.AuthTokenDuration)
	req.Equal([]string{"badger", "snake", "mushroom"}, config.Words())
	req.Equal([]string{"http://localhost:3000"}, config.Origins())
	req.NotNil(config.LimitMessages)
	req.Equal(20, *config.LimitMessages)

	char, err := config.CharacterRune()
	req.NoError(err)
	req.Equal('*', char)
}

func TestConfig_CharacterRune(t *testing.T) {
	req := require.New(t)
	_, err := Config{CharReplacement: "**"}.CharacterRune()
	req.Error(err)
	_, err = Config{CharReplacement: ""}.CharacterRune()
	req.Error(err)
}
