package client

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-qes-vault/internal/adapter"
	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/crypto"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/service"
	"github.com/MKhiriev/go-qes-vault/models"
)

// PasswordEnv names the environment variable consulted when --password is
// not given.
const PasswordEnv = "QES_PASSWORD"

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	cipher    service.CipherService

	newAdapter func(cfg config.ClientAdapter) (adapter.ServerAdapter, error)
	copyText   func(text string) error
	getenv     func(key string) string

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp builds the CLI over an in-process layered cipher. Remote commands
// create their HTTP adapter lazily, so offline use never needs a server.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	cipher := crypto.NewLayeredCipher(crypto.NewAESCBCPrimitive())

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		cipher:    service.NewCipherService(cipher, config.App{DefaultLayers: cfg.App.DefaultLayers}, logger),
		newAdapter: func(adapterCfg config.ClientAdapter) (adapter.ServerAdapter, error) {
			return adapter.NewHTTPServerAdapter(adapterCfg, logger)
		},
		copyText: clipboard.WriteAll,
		getenv:   os.Getenv,
		in:       os.Stdin,
		out:      os.Stdout,
		logger:   logger,
	}
}

// Run implements [Client]. Errors are returned unprinted; the caller decides
// how to report them.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)

	return root.ExecuteContext(ctx)
}
