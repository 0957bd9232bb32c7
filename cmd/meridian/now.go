package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/meridian-go/meridian/civil"
	"github.com/meridian-go/meridian/localtz"
)

func nowCmd() *cobra.Command {
	var format string
	var utc bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time",
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := resolveLayout(format)
			if err != nil {
				return err
			}

			var now civil.OffsetDateTime
			if utc {
				now, err = localtz.NowUTC()
			} else {
				now, err = localtz.NowLocal()
			}
			if err != nil {
				return fmt.Errorf("reading the clock: %w", err)
			}
			logrus.WithFields(logrus.Fields{
				"unix":   now.UnixTimestamp(),
				"offset": now.Offset().String(),
			}).Debug("current time")

			out, err := codec.format(now)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "rfc3339", "Output format: rfc3339, rfc2822, or a format description")
	cmd.Flags().BoolVar(&utc, "utc", false, "Print the time at UTC instead of the local offset")
	return cmd
}
