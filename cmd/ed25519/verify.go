package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	ed25519 "github.com/ecliptic-labs/ed25519"
	"github.com/ecliptic-labs/ed25519/encoding"
	"github.com/ecliptic-labs/ed25519/logger"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [bundle...]",
	Short: "verifies one or more signature bundles",
	Run:   cmdVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func cmdVerify(cmd *cobra.Command, args []string) {
	log := logger.Logger()
	if len(args) < 1 {
		fmt.Println("missing bundle path -- ed25519 verify -h for help")
		os.Exit(-1)
	}

	start := time.Now()
	var g errgroup.Group
	for _, arg := range args {
		path := filepath.Clean(arg)
		g.Go(func() error {
			bundle, err := encoding.Read(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			ok, err := ed25519.VerifyBytes(bundle.Signature, bundle.Message, bundle.PublicKey)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if !ok {
				return fmt.Errorf("%s: signature does not match", path)
			}
			log.Info().Str("bundle", path).Msg("ok")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("verification failed")
		os.Exit(-1)
	}
	log.Info().Int("bundles", len(args)).Dur("took", time.Since(start)).Msg("all signatures valid")
}
