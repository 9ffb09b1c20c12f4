package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ed25519 "github.com/ecliptic-labs/ed25519"
	"github.com/ecliptic-labs/ed25519/logger"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "generates a random seed and prints it with its public key",
	Run:   cmdKeygen,
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}

func cmdKeygen(cmd *cobra.Command, args []string) {
	log := logger.Logger()

	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		log.Error().Err(err).Msg("reading system randomness")
		os.Exit(-1)
	}
	sk, err := ed25519.NewPrivateKey(seed)
	if err != nil {
		log.Error().Err(err).Msg("building private key")
		os.Exit(-1)
	}
	pk := sk.Public()

	fmt.Println("seed:  ", sk.Hex())
	fmt.Println("public:", pk.Hex())
}
