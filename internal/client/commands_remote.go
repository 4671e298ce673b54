package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-qes-vault/internal/adapter"
	"github.com/MKhiriev/go-qes-vault/internal/validators"
	"github.com/MKhiriev/go-qes-vault/models"
)

// remoteOptions override the adapter settings from the config.
type remoteOptions struct {
	address string
	timeout time.Duration
}

func (a *App) remoteCmd(opts *rootOptions) *cobra.Command {
	remoteOpts := &remoteOptions{}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Run operations on a qes-vault server",
	}
	cmd.PersistentFlags().StringVar(&remoteOpts.address, "address", "", "server base URL (default from config)")
	cmd.PersistentFlags().DurationVar(&remoteOpts.timeout, "timeout", 0, "request timeout (default from config)")

	cmd.AddCommand(a.remoteVersionCmd(remoteOpts))
	cmd.AddCommand(a.remoteEncryptTextCmd(opts, remoteOpts))
	cmd.AddCommand(a.remoteDecryptTextCmd(opts, remoteOpts))
	cmd.AddCommand(a.remoteCompareCmd(opts, remoteOpts))
	return cmd
}

func (a *App) serverAdapter(remoteOpts *remoteOptions) (adapter.ServerAdapter, error) {
	adapterCfg := a.cfg.Adapter
	if remoteOpts.address != "" {
		adapterCfg.HTTPAddress = remoteOpts.address
	}
	if remoteOpts.timeout > 0 {
		adapterCfg.RequestTimeout = remoteOpts.timeout
	}
	return a.newAdapter(adapterCfg)
}

func (a *App) remoteVersionCmd(remoteOpts *remoteOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.serverAdapter(remoteOpts)
			if err != nil {
				return err
			}

			version, err := server.Version(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

func (a *App) remoteEncryptTextCmd(opts *rootOptions, remoteOpts *remoteOptions) *cobra.Command {
	var layers int

	cmd := &cobra.Command{
		Use:   "encrypt-text [text]",
		Short: "Encrypt text on the server and print the envelope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.password(opts)
			if err != nil {
				return err
			}
			plaintext, err := textInput(cmd, args)
			if err != nil {
				return err
			}
			server, err := a.serverAdapter(remoteOpts)
			if err != nil {
				return err
			}

			envelope, err := server.EncryptText(cmd.Context(), models.EncryptionRequest{
				Plaintext: plaintext,
				Password:  password,
				Layers:    layers,
			})
			if err != nil {
				return err
			}
			return a.printEnvelope(cmd, opts, envelope)
		},
	}
	cmd.Flags().IntVarP(&layers, "layers", "l", 0, "number of layers (default chosen by the server)")
	return cmd
}

func (a *App) remoteDecryptTextCmd(opts *rootOptions, remoteOpts *remoteOptions) *cobra.Command {
	var assumeLayers int

	cmd := &cobra.Command{
		Use:   "decrypt-text [envelope]",
		Short: "Decrypt an envelope on the server and print the plaintext",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.password(opts)
			if err != nil {
				return err
			}
			input, err := textInput(cmd, args)
			if err != nil {
				return err
			}

			// the server resolves a missing layer count from assume_layers
			var envelope models.Envelope
			if err = json.Unmarshal([]byte(input), &envelope); err != nil {
				return fmt.Errorf("%w: %v", validators.ErrMalformedEnvelope, err)
			}

			server, err := a.serverAdapter(remoteOpts)
			if err != nil {
				return err
			}

			plaintext, err := server.DecryptText(cmd.Context(), models.DecryptionRequest{
				Envelope:     envelope,
				Password:     password,
				AssumeLayers: assumeLayers,
			})
			if err != nil {
				return err
			}
			return a.printText(cmd, opts, plaintext)
		},
	}
	cmd.Flags().IntVar(&assumeLayers, "assume-layers", 0, "layer count for envelopes that do not record one")
	return cmd
}

func (a *App) remoteCompareCmd(opts *rootOptions, remoteOpts *remoteOptions) *cobra.Command {
	var layers []int

	cmd := &cobra.Command{
		Use:   "compare [text]",
		Short: "Compare layer counts on the server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.password(opts)
			if err != nil {
				return err
			}
			plaintext, err := textInput(cmd, args)
			if err != nil {
				return err
			}
			server, err := a.serverAdapter(remoteOpts)
			if err != nil {
				return err
			}

			report, err := server.Compare(cmd.Context(), models.CompareRequest{
				Plaintext: plaintext,
				Password:  password,
				Layers:    layers,
			})
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().IntSliceVarP(&layers, "layers", "l", nil, "layer counts to compare (default 1,2)")
	return cmd
}
