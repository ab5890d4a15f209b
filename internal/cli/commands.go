package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grendel/hilbert/internal/wallet"
	"github.com/grendel/hilbert/pkg/networks"
	"github.com/grendel/hilbert/pkg/ui"
)

func (a *app) networksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List supported networks and their derivation parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintHeader(a.cs, appTitle)
			ui.PrintSectionHeader(a.cs, "SUPPORTED NETWORKS:")
			for _, profile := range networks.All() {
				a.cs.Param.Printf("  %-12s", profile.ID)
				a.cs.Normal.Printf("%-18s %-5s coin %-4d %-18s %s\n",
					profile.DisplayName, profile.Symbol, profile.CoinType,
					profile.Path, profile.Curve)
			}
			fmt.Println()
			return nil
		},
	}
}

func (a *app) deriveCmd() *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the private key and address for one network",
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := a.readMnemonic()
			if err != nil {
				return err
			}

			result, err := wallet.GenerateKeysForNetwork(mnemonic, networks.Network(network))
			if err != nil {
				return err
			}
			defer wallet.Zero(result.PrivateKey)

			ui.PrintHeader(a.cs, appTitle)
			ui.PrintKeyValue(a.cs, "Network", string(result.Network))
			ui.PrintKeyValue(a.cs, "Address", result.Address)
			if a.showPrivate {
				ui.PrintKeyValue(a.cs, "Private key", hex.EncodeToString(result.PrivateKey))
			}
			fmt.Println()
			return nil
		},
	}

	a.addMnemonicFlag(cmd)
	cmd.Flags().StringVarP(&network, "network", "n", string(networks.Ethereum),
		"Network id (see the networks command)")
	cmd.Flags().BoolVar(&a.showPrivate, "show-private", false,
		"Print the derived private key")
	return cmd
}

func (a *app) addressesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "Derive addresses for every supported network",
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := a.readMnemonic()
			if err != nil {
				return err
			}

			addresses, err := wallet.GenerateAllAddresses(mnemonic)
			if err != nil {
				return err
			}

			ui.PrintHeader(a.cs, appTitle)
			for _, profile := range networks.All() {
				ui.PrintKeyValue(a.cs, string(profile.ID), addresses[profile.ID])
			}
			ui.PrintFooter(a.cs, fmt.Sprintf("Derived %d addresses", len(addresses)))
			return nil
		},
	}

	a.addMnemonicFlag(cmd)
	return cmd
}

func (a *app) signCmd() *cobra.Command {
	var digestHex, keyHex string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a 32-byte digest with a secp256k1 private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := hex.DecodeString(digestHex)
			if err != nil {
				return fmt.Errorf("digest is not valid hex: %w", err)
			}
			key, err := hex.DecodeString(keyHex)
			if err != nil {
				return fmt.Errorf("key is not valid hex: %w", err)
			}
			defer wallet.Zero(key)

			sig, err := wallet.Sign(digest, key)
			if err != nil {
				return err
			}

			a.cs.Key.Println(hex.EncodeToString(sig))
			return nil
		},
	}

	cmd.Flags().StringVar(&digestHex, "digest", "", "32-byte digest, hex encoded")
	cmd.Flags().StringVar(&keyHex, "key", "", "secp256k1 private key, hex encoded")
	_ = cmd.MarkFlagRequired("digest")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	var digestHex, sigHex, pubHex string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a compact signature against a digest and public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := hex.DecodeString(digestHex)
			if err != nil {
				return fmt.Errorf("digest is not valid hex: %w", err)
			}
			sig, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("signature is not valid hex: %w", err)
			}
			pub, err := hex.DecodeString(pubHex)
			if err != nil {
				return fmt.Errorf("public key is not valid hex: %w", err)
			}

			if !wallet.Verify(sig, digest, pub) {
				a.cs.Error.Println("signature INVALID")
				return fmt.Errorf("signature does not verify")
			}
			a.cs.Success.Println("signature OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&digestHex, "digest", "", "32-byte digest, hex encoded")
	cmd.Flags().StringVar(&sigHex, "signature", "", "64-byte compact signature, hex encoded")
	cmd.Flags().StringVar(&pubHex, "pubkey", "", "serialized secp256k1 public key, hex encoded")
	_ = cmd.MarkFlagRequired("digest")
	_ = cmd.MarkFlagRequired("signature")
	_ = cmd.MarkFlagRequired("pubkey")
	return cmd
}
