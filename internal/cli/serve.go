package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avstrong/hotelres/internal/app"
)

func ServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, l, err := setup(v)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(
				cmd.Context(),
				syscall.SIGINT,
				syscall.SIGTERM,
				syscall.SIGHUP,
			)
			defer cancel()

			return app.Run(ctx, l, conf)
		},
	}

	cmd.Flags().String("host", "", "listen host")
	cmd.Flags().String("port", "", "listen port")
	_ = v.BindPFlag("http.host", cmd.Flags().Lookup("host"))
	_ = v.BindPFlag("http.port", cmd.Flags().Lookup("port"))

	return cmd
}
