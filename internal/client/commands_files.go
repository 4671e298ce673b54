package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-qes-vault/internal/workers"
)

func (a *App) encryptCmd(opts *rootOptions) *cobra.Command {
	var fileOpts fileOptions

	cmd := &cobra.Command{
		Use:   "encrypt <file>",
		Short: "Encrypt a file into <file>.encrypted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.password(opts)
			if err != nil {
				return err
			}

			target, err := a.encryptFile(cmd.Context(), args[0], password, fileOpts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], target)
			return err
		},
	}
	cmd.Flags().IntVarP(&fileOpts.layers, "layers", "l", 0, "number of layers (default from config)")
	cmd.Flags().StringVarP(&fileOpts.outDir, "out", "o", "", "output directory (default: next to the input)")
	cmd.Flags().BoolVarP(&fileOpts.force, "force", "f", false, "replace an existing output file")
	return cmd
}

func (a *App) decryptCmd(opts *rootOptions) *cobra.Command {
	var fileOpts fileOptions

	cmd := &cobra.Command{
		Use:   "decrypt <file.encrypted>",
		Short: "Decrypt a .encrypted file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.password(opts)
			if err != nil {
				return err
			}

			target, err := a.decryptFile(cmd.Context(), args[0], password, fileOpts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], target)
			return err
		},
	}
	cmd.Flags().IntVar(&fileOpts.assumeLayers, "assume-layers", 0, "layer count for envelopes that do not record one")
	cmd.Flags().StringVarP(&fileOpts.outDir, "out", "o", "", "output directory (default: next to the input)")
	cmd.Flags().BoolVarP(&fileOpts.force, "force", "f", false, "replace an existing output file")
	return cmd
}

// batchCmd runs one worker per file. Every file is attempted; the command
// fails if any of them failed.
func (a *App) batchCmd(opts *rootOptions) *cobra.Command {
	var (
		fileOpts    fileOptions
		decrypt     bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Encrypt or decrypt many files in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.password(opts)
			if err != nil {
				return err
			}

			process := a.encryptFile
			if decrypt {
				process = a.decryptFile
			}

			targets := make([]string, len(args))
			pool := workers.NewWorkers(concurrency, a.logger)
			for i, path := range args {
				i, path := i, path
				pool.Add(workers.NewFunc(path, func(ctx context.Context) error {
					target, err := process(ctx, path, password, fileOpts)
					targets[i] = target
					return err
				}))
			}

			results := pool.Run(cmd.Context())

			out := cmd.OutOrStdout()
			for i, result := range results {
				if result.Err != nil {
					fmt.Fprintf(out, "FAIL %s: %v\n", result.Name, result.Err)
					continue
				}
				fmt.Fprintf(out, "OK   %s -> %s\n", result.Name, targets[i])
			}

			if err = workers.JoinErrors(results); err != nil {
				return fmt.Errorf("%w: %w", ErrBatchFailed, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt .encrypted files instead of encrypting")
	cmd.Flags().IntVarP(&fileOpts.layers, "layers", "l", 0, "number of layers (default from config)")
	cmd.Flags().IntVar(&fileOpts.assumeLayers, "assume-layers", 0, "layer count for envelopes that do not record one")
	cmd.Flags().StringVarP(&fileOpts.outDir, "out", "o", "", "output directory (default: next to each input)")
	cmd.Flags().BoolVarP(&fileOpts.force, "force", "f", false, "replace existing output files")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", a.cfg.Workers.Concurrency, "files processed in parallel")
	return cmd
}
