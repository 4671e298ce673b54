package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-qes-vault/internal/validators"
	"github.com/MKhiriev/go-qes-vault/models"
)

func (a *App) encryptTextCmd(opts *rootOptions) *cobra.Command {
	var layers int

	cmd := &cobra.Command{
		Use:   "encrypt-text [text]",
		Short: "Encrypt text and print the envelope (reads stdin without an argument)",
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

			envelope, err := a.cipher.EncryptText(cmd.Context(), models.EncryptionRequest{
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
	cmd.Flags().IntVarP(&layers, "layers", "l", 0, "number of layers (default from config)")
	return cmd
}

func (a *App) decryptTextCmd(opts *rootOptions) *cobra.Command {
	var assumeLayers int

	cmd := &cobra.Command{
		Use:   "decrypt-text [envelope]",
		Short: "Decrypt an envelope and print the plaintext (reads stdin without an argument)",
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
			envelope, err := validators.ParseEnvelope([]byte(input), assumeLayers)
			if err != nil {
				return err
			}

			plaintext, err := a.cipher.DecryptText(cmd.Context(), models.DecryptionRequest{
				Envelope: envelope,
				Password: password,
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

func (a *App) compareCmd(opts *rootOptions) *cobra.Command {
	var layers []int

	cmd := &cobra.Command{
		Use:   "compare [text]",
		Short: "Compare encryption size, timing and entropy across layer counts",
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

			report, err := a.cipher.Compare(cmd.Context(), models.CompareRequest{
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
