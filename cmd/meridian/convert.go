package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/meridian-go/meridian/layout"
)

func convertCmd() *cobra.Command {
	var fromFormat, toFormat, toOffset string

	cmd := &cobra.Command{
		Use:   "convert TIMESTAMP",
		Short: "Convert a timestamp between formats and UTC offsets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := resolveLayout(fromFormat)
			if err != nil {
				return err
			}
			to, err := resolveLayout(toFormat)
			if err != nil {
				return err
			}

			value, err := from.parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			logrus.WithField("unix", value.UnixTimestamp()).Debug("parsed input")

			if toOffset != "" {
				offset, err := parseOffsetFlag(toOffset)
				if err != nil {
					return err
				}
				if value, err = value.ToOffset(offset); err != nil {
					return fmt.Errorf("rebasing to %s: %w", offset, err)
				}
			}

			out, err := to.format(value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFormat, "from", "rfc3339", "Input format: rfc3339, rfc2822, or a format description")
	cmd.Flags().StringVar(&toFormat, "to", "rfc3339", "Output format: rfc3339, rfc2822, or a format description")
	cmd.Flags().StringVar(&toOffset, "offset", "", "Rebase to this UTC offset (+HH:MM) before formatting")
	return cmd
}

func checkCmd() *cobra.Command {
	var v1 bool

	cmd := &cobra.Command{
		Use:   "check DESCRIPTION",
		Short: "Check a format description for syntax errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compile := layout.Compile
			if v1 {
				compile = layout.CompileV1
			}
			if _, err := compile(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().BoolVar(&v1, "v1", false, "Use the legacy (version 1) description dialect")
	return cmd
}
