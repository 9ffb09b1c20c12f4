// Command ed25519 is a small CLI around the library: key generation,
// public key derivation, signing and verification of bundle files.
package main

import (
	"os"

	"github.com/spf13/cobra"

	ed25519 "github.com/ecliptic-labs/ed25519"
)

var rootCmd = &cobra.Command{
	Use:     "ed25519",
	Short:   "Ed25519 keys and signatures",
	Version: ed25519.Version.String(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
