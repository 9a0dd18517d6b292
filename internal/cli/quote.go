package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avstrong/hotelres/internal/app"
)

func CheapestCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "cheapest <request>",
		Short:   "Print the cheapest hotel for a request such as \"Regular: 16Mar2009(mon), 17Mar2009(tues)\"",
		Example: `  hotelres cheapest "Rewards: 26Mar2009(thur), 27Mar2009(fri), 28Mar2009(sat)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, l, err := setup(v)
			if err != nil {
				return err
			}

			rManager, _, err := app.NewManager(cmd.Context(), l, conf)
			if err != nil {
				return err
			}

			name, err := rManager.Cheapest(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)

			return err
		},
	}
}

func QuotesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "quotes <request>",
		Short: "Print every hotel's quote for a request, best first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, l, err := setup(v)
			if err != nil {
				return err
			}

			rManager, _, err := app.NewManager(cmd.Context(), l, conf)
			if err != nil {
				return err
			}

			_, quotes, err := rManager.Quotes(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "HOTEL\tRATING\tTOTAL")

			for _, q := range quotes {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", q.Hotel, q.Rating, q.Total)
			}

			return tw.Flush()
		},
	}
}

func ListCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the hotel catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, l, err := setup(v)
			if err != nil {
				return err
			}

			rManager, _, err := app.NewManager(cmd.Context(), l, conf)
			if err != nil {
				return err
			}

			hotels, err := rManager.Hotels(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "HOTEL\tRATING\tREGULAR\tREWARDS\tBLACKOUT")

			for _, h := range hotels {
				blackout := "-"
				if h.Blackout != nil {
					blackout = fmt.Sprintf("%s..%s", h.Blackout.From.Format("2006-01-02"), h.Blackout.To.Format("2006-01-02"))
				}

				fmt.Fprintf(tw, "%s\t%d\t%d/%d\t%d/%d\t%s\n",
					h.Name, h.Rating, h.Regular.Weekday, h.Regular.Weekend, h.Rewards.Weekday, h.Rewards.Weekend, blackout)
			}

			return tw.Flush()
		},
	}
}
