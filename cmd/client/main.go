package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamchat/client"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerURL     string        `envconfig:"TEAMCHAT_SERVER_URL" default:"http://localhost:8080"`
	Token         string        `envconfig:"TEAMCHAT_TOKEN"`
	Identifier    string        `envconfig:"TEAMCHAT_IDENTIFIER"`
	Password      string        `envconfig:"TEAMCHAT_PASSWORD"`
	VerifyTimeout time.Duration `envconfig:"TEAMCHAT_VERIFY_TIMEOUT" default:"5s"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"INFO"`
	Colours       bool          `envconfig:"TEAMCHAT_COLOURS" default:"true"`
}

// printNavigator prints the route the client lands on.
type printNavigator struct {
	colours bool
}

func (n printNavigator) Navigate(path string) {
	line := fmt.Sprintf("  ====== navigate %s ======", path)
	if n.colours {
		line = color.New(color.BgBlack, color.FgGreen).Render(line)
	}
	fmt.Println(line)
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run resumes a session: with a stored token it verifies it, otherwise it logs
// in first when credentials are configured.
func run() (int, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.NewAPI(config.ServerURL, &http.Client{Timeout: config.VerifyTimeout}, log)
	session := client.NewSession(config.Token)

	if session.Token() == "" && config.Identifier != "" {
		result, err := api.Login(ctx, config.Identifier, config.Password)
		if err != nil {
			return exitRuntime, fmt.Errorf("login failed: %w", err)
		}
		session.SetToken(result.Token)
		log.Info("Logged in", "email", result.Email)
	}

	resumer := client.NewResumer(session, api, printNavigator{colours: config.Colours}, config.VerifyTimeout, log)
	target := resumer.Resume(ctx)

	email, username := session.Identity()
	log.Info("Landed", "target", target.Kind, "path", target.Path(), "email", email, "username", username)
	return exitOK, nil
}
