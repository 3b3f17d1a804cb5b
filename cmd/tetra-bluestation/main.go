// Package main is the tetra-bluestation entrypoint: load a TOML stack
// configuration, assemble the entity set for its stack mode, and run the
// router's tick loop until interrupted.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proxiboi69/tetra-bluestation/config"
	"github.com/proxiboi69/tetra-bluestation/entities"
	"github.com/proxiboi69/tetra-bluestation/entities/cmce"
	"github.com/proxiboi69/tetra-bluestation/entities/llc"
	"github.com/proxiboi69/tetra-bluestation/entities/lmac"
	"github.com/proxiboi69/tetra-bluestation/entities/mle"
	"github.com/proxiboi69/tetra-bluestation/entities/mm"
	"github.com/proxiboi69/tetra-bluestation/entities/phy"
	"github.com/proxiboi69/tetra-bluestation/entities/sndcp"
	"github.com/proxiboi69/tetra-bluestation/entities/umac"
	"github.com/proxiboi69/tetra-bluestation/router"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:           "tetra-bluestation <config-path>",
	Short:         "Run a TETRA base-station or mobile-station protocol stack",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStack,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("tetra-bluestation %s (commit: %s)\n", version, commit)
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("tetra-bluestation: fatal error")
	}
}

func runStack(cmd *cobra.Command, args []string) error {
	shared, err := config.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	r := router.New(shared)
	registerEntities(r, shared.Config().StackMode)

	logrus.WithField("stack_mode", shared.Config().StackMode).Info("tetra-bluestation: stack assembled, starting tick loop")

	done := make(chan struct{})
	go func() {
		r.RunStack(nil)
		close(done)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
		logrus.Info("tetra-bluestation: shutdown signal received")
	case <-done:
	}
	return nil
}

// registerEntities builds the BS or MS variant of every layer and
// registers it on r, per the stack's configured mode.
func registerEntities(r *router.MessageRouter, mode config.StackMode) {
	r.RegisterEntity(lmac.New())
	r.RegisterEntity(umac.New())
	r.RegisterEntity(llc.New())
	r.RegisterEntity(mle.New())
	r.RegisterEntity(phy.New())

	var mmEntity, cmceEntity entities.TetraEntity
	switch mode {
	case config.ModeBs:
		mmEntity, cmceEntity = mm.New(), cmce.New()
	case config.ModeMs:
		mmEntity, cmceEntity = mm.NewMs(), cmce.NewMs()
	default:
		logrus.WithField("stack_mode", mode).Fatal("tetra-bluestation: unsupported stack mode")
	}
	r.RegisterEntity(mmEntity)
	r.RegisterEntity(cmceEntity)
	r.RegisterEntity(sndcp.New())
}
