package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	ed25519 "github.com/ecliptic-labs/ed25519"
	"github.com/ecliptic-labs/ed25519/encoding"
	"github.com/ecliptic-labs/ed25519/logger"
)

var signCmd = &cobra.Command{
	Use:   "sign [message-file]",
	Short: "signs a message file and writes a signature bundle next to it",
	Run:   cmdSign,
}

var fSeedHex string

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.PersistentFlags().StringVar(&fSeedHex, "key", "", "specifies the hex seed of the signing key")

	_ = signCmd.MarkPersistentFlagRequired("key")
}

func cmdSign(cmd *cobra.Command, args []string) {
	log := logger.Logger()
	if len(args) < 1 {
		fmt.Println("missing message path -- ed25519 sign -h for help")
		os.Exit(-1)
	}
	msgPath := filepath.Clean(args[0])

	sk, err := ed25519.NewPrivateKeyFromHex(fSeedHex)
	if err != nil {
		log.Error().Err(err).Msg("parsing seed")
		os.Exit(-1)
	}
	message, err := os.ReadFile(msgPath)
	if err != nil {
		log.Error().Err(err).Str("path", msgPath).Msg("reading message")
		os.Exit(-1)
	}

	start := time.Now()
	sig, err := ed25519.Sign(message, sk)
	if err != nil {
		log.Error().Err(err).Msg("signing")
		os.Exit(-1)
	}

	pk := sk.Public().Bytes()
	sigBytes := sig.Bytes()
	bundlePath := msgPath + ".sig"
	if err := encoding.Write(bundlePath, &encoding.Bundle{
		PublicKey: pk[:],
		Signature: sigBytes[:],
		Message:   message,
	}); err != nil {
		log.Error().Err(err).Str("path", bundlePath).Msg("writing bundle")
		os.Exit(-1)
	}
	log.Info().Str("bundle", bundlePath).Dur("took", time.Since(start)).Msg("signed")
}
