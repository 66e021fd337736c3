package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordbook/internal/auth"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/transfer"
	"github.com/at-ishikawa/wordbook/internal/user"
	"github.com/at-ishikawa/wordbook/internal/word"
)

// FormatFlag is a transfer format name checked against the formats of one direction.
type FormatFlag struct {
	name   string
	lookup func(string) (transfer.Codec, error)
}

func newImportFormatFlag() *FormatFlag {
	return &FormatFlag{lookup: transfer.ImportCodec}
}

func newExportFormatFlag(def transfer.Format) *FormatFlag {
	return &FormatFlag{name: string(def), lookup: transfer.ExportCodec}
}

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	if _, err := f.lookup(v); err != nil {
		return err
	}
	f.name = strings.ToLower(strings.TrimSpace(v))
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return f.name
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "format"
}

var _ pflag.Value = (*FormatFlag)(nil)

// formatFromPath guesses a format from the file extension.
func formatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "yml" {
		return string(transfer.FormatYAML)
	}
	return ext
}

type transferTarget struct {
	username     string
	dictionaryID string
}

func (t *transferTarget) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&t.username, "user", "", "Username owning the dictionary")
	flags.StringVar(&t.dictionaryID, "dictionary", "", "ID of the dictionary")
}

func (t *transferTarget) markRequired(cmd *cobra.Command) {
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("dictionary")
}

// resolve returns the transfer service and the owner ID for t.
func (t *transferTarget) resolve(cmd *cobra.Command, env *environment) (*transfer.Service, string, error) {
	users := user.NewService(user.NewDBUserRepository(env.db), auth.NewBcryptHasher(env.cfg.Auth.BcryptCost))
	owner, err := users.FindByUsername(cmd.Context(), t.username)
	if err != nil {
		return nil, "", fmt.Errorf("find user %q: %w", t.username, err)
	}
	dictionaries := dictionary.NewService(dictionary.NewDBDictionaryRepository(env.db))
	return transfer.NewService(word.NewDBWordRepository(env.db), dictionaries), owner.ID, nil
}

func newImportCommand() *cobra.Command {
	var target transferTarget
	format := newImportFormatFlag()

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import words from a file into a dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format.String() == "" {
				if err := format.Set(formatFromPath(path)); err != nil {
					return fmt.Errorf("cannot infer the format of %s, set --format: %w", path, err)
				}
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", path, err)
			}

			env, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			service, ownerID, err := target.resolve(cmd, env)
			if err != nil {
				return err
			}
			result, err := service.Import(cmd.Context(), ownerID, target.dictionaryID, format.String(), data)
			if err != nil {
				return err
			}
			printImportResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	flags := cmd.Flags()
	target.addFlags(flags)
	flags.Var(format, "format", "Format of the file: json, csv, yaml or xlsx. Inferred from the extension when omitted")
	target.markRequired(cmd)
	return cmd
}

func printImportResult(w io.Writer, result *transfer.Result) {
	_, _ = color.New(color.FgGreen).Fprintf(w, "Imported %d words\n", result.Imported)
	if result.Failed == 0 {
		return
	}
	_, _ = color.New(color.FgYellow).Fprintf(w, "Skipped %d records\n", result.Failed)
	for _, msg := range result.Errors {
		_, _ = color.New(color.FgRed).Fprintf(w, "  %s\n", msg)
	}
}

func newExportCommand() *cobra.Command {
	var target transferTarget
	var output string
	format := newExportFormatFlag(transfer.FormatJSON)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the words of a dictionary to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			service, ownerID, err := target.resolve(cmd, env)
			if err != nil {
				return err
			}
			payload, err := service.Export(cmd.Context(), ownerID, target.dictionaryID, format.String())
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(payload.Body)
				return err
			}
			if output == "" {
				output = payload.Filename
			}
			if err := os.WriteFile(output, payload.Body, 0o644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", output, err)
			}
			_, _ = color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d bytes)\n", output, len(payload.Body))
			return nil
		},
	}
	flags := cmd.Flags()
	target.addFlags(flags)
	flags.Var(format, "format", "Format of the export: json, csv, yaml, xlsx, md or pdf")
	flags.StringVarP(&output, "output", "o", "", "File to write. Defaults to a name derived from the dictionary; - writes to stdout")
	target.markRequired(cmd)
	return cmd
}
