package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ed25519 "github.com/ecliptic-labs/ed25519"
	"github.com/ecliptic-labs/ed25519/logger"
)

var pubCmd = &cobra.Command{
	Use:   "pub [seed-hex]",
	Short: "derives the public key of a hex seed",
	Run:   cmdPub,
}

func init() {
	rootCmd.AddCommand(pubCmd)
}

func cmdPub(cmd *cobra.Command, args []string) {
	log := logger.Logger()
	if len(args) < 1 {
		fmt.Println("missing seed -- ed25519 pub -h for help")
		os.Exit(-1)
	}
	sk, err := ed25519.NewPrivateKeyFromHex(args[0])
	if err != nil {
		log.Error().Err(err).Msg("parsing seed")
		os.Exit(-1)
	}
	fmt.Println(sk.Public().Hex())
}
