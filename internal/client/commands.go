package client

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-qes-vault/internal/service"
	"github.com/MKhiriev/go-qes-vault/models"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	password string
	copy     bool
}

func (a *App) rootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "qes",
		Short:         "Layered AES encryption of text and files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.password, "password", "p", "", "encryption password (or set "+PasswordEnv+")")
	root.PersistentFlags().BoolVar(&opts.copy, "copy", false, "copy text output to the clipboard")

	root.AddCommand(a.versionCmd())
	root.AddCommand(a.encryptCmd(opts))
	root.AddCommand(a.decryptCmd(opts))
	root.AddCommand(a.batchCmd(opts))
	root.AddCommand(a.encryptTextCmd(opts))
	root.AddCommand(a.decryptTextCmd(opts))
	root.AddCommand(a.compareCmd(opts))
	root.AddCommand(a.remoteCmd(opts))

	return root
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.buildInfo)
			return err
		},
	}
}

func (a *App) password(opts *rootOptions) (string, error) {
	if opts.password != "" {
		return opts.password, nil
	}
	if password := a.getenv(PasswordEnv); password != "" {
		return password, nil
	}
	return "", ErrPasswordRequired
}

// printText writes text to the command output and, with --copy, to the
// clipboard as well.
func (a *App) printText(cmd *cobra.Command, opts *rootOptions, text string) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return err
	}
	if !opts.copy {
		return nil
	}

	if err := a.copyText(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	a.logger.Debug().Str("func", "*App.printText").Int("length", len(text)).Msg("output copied to clipboard")
	return nil
}

func (a *App) printEnvelope(cmd *cobra.Command, opts *rootOptions, envelope models.Envelope) error {
	body, err := service.MarshalEnvelope(envelope)
	if err != nil {
		return err
	}
	return a.printText(cmd, opts, strings.TrimRight(string(body), "\n"))
}

// textInput returns the single positional argument, or the whole of stdin
// when none was given. One trailing newline is dropped from stdin input.
func textInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func printReport(w io.Writer, report models.ComparisonReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "plaintext size: %d bytes\n", report.PlaintextSize)
	fmt.Fprintln(tw, "ALGORITHM\tLAYERS\tSIZE\tENCRYPT\tDECRYPT\tENTROPY")
	for _, r := range report.Results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%.4f\n",
			r.Algorithm,
			r.Layers,
			r.CiphertextSize,
			r.EncryptDuration.Round(time.Microsecond),
			r.DecryptDuration.Round(time.Microsecond),
			r.Entropy,
		)
	}
	return tw.Flush()
}
