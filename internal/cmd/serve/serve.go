package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmeckel/azdo-envmgr/internal/cmd/util"
	"github.com/tmeckel/azdo-envmgr/internal/web"
)

type opts struct {
	listen string
}

func NewCmd(ctx util.CmdContext) *cobra.Command {
	opts := &opts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web interface",
		Long: heredoc.Doc(`
			Serve the environment manager page. It lists pipelines, libraries and variables
			and offers forms to edit a variable, run a pipeline and clone a library.

			The server stops gracefully on SIGINT or SIGTERM.
		`),
		Example: heredoc.Doc(`
			$ envmgr serve --listen 127.0.0.1:8080
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.listen, "listen", "l", "", "Address to listen on (default from configuration, \":8080\")")

	return cmd
}

func run(cmdCtx util.CmdContext, opts *opts) error {
	cfg, err := cmdCtx.Config()
	if err != nil {
		return err
	}
	manager, err := cmdCtx.Manager()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.NewServer(cfg, manager).ListenAndServe(ctx, opts.listen)
}
