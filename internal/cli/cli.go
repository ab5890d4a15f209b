// Package cli wires the cobra command tree. Commands print through the
// shared color scheme; diagnostics go to a zerolog console logger on
// stderr. Key material is never logged, only shown on explicit request.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grendel/hilbert/pkg/ui"
)

const appTitle = "Hilbert - Deterministic Multi-Chain Key Derivation"

type app struct {
	cs  *ui.ColorScheme
	log zerolog.Logger

	mnemonic    string
	showPrivate bool
}

// Execute builds the command tree and runs it.
func Execute() error {
	a := &app{
		cs: ui.DefaultColorScheme(),
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger(),
	}

	root := &cobra.Command{
		Use:           "hilbert",
		Short:         "Derive multi-chain wallet keys and addresses from a recovery mnemonic",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.networksCmd(),
		a.deriveCmd(),
		a.addressesCmd(),
		a.signCmd(),
		a.verifyCmd(),
	)

	if err := root.Execute(); err != nil {
		a.log.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

// readMnemonic returns the phrase from the --mnemonic flag, or prompts
// on stdin so the phrase stays out of shell history.
func (a *app) readMnemonic() (string, error) {
	if a.mnemonic != "" {
		return a.mnemonic, nil
	}

	a.cs.Normal.Print("Enter recovery mnemonic: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading mnemonic: %w", err)
	}

	phrase := strings.TrimSpace(line)
	if phrase == "" {
		return "", fmt.Errorf("no mnemonic provided")
	}
	return phrase, nil
}

func (a *app) addMnemonicFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.mnemonic, "mnemonic", "m", "",
		"Recovery mnemonic (prompted on stdin when omitted)")
}
