// Command meridian is a small front end over the library: it prints the
// current time, converts timestamps between formats and offsets, and checks
// format descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/meridian-go/meridian/civil"
	"github.com/meridian-go/meridian/layout"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "meridian",
		Short: "Calendar and clock arithmetic tool",
		Long: "Convert timestamps between formats and UTC offsets, print the current\n" +
			"time in a custom format, and check format descriptions for errors.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(nowCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveLayout turns a --format argument into something that can format and
// parse: the names "rfc3339" and "rfc2822" select the well-known formats,
// anything else compiles as a format description.
type timestampCodec struct {
	format func(civil.OffsetDateTime) (string, error)
	parse  func(string) (civil.OffsetDateTime, error)
}

func resolveLayout(name string) (timestampCodec, error) {
	switch name {
	case "rfc3339":
		return timestampCodec{format: layout.FormatRFC3339, parse: layout.ParseRFC3339}, nil
	case "rfc2822":
		return timestampCodec{format: layout.FormatRFC2822, parse: layout.ParseRFC2822}, nil
	}
	l, err := layout.Compile(name)
	if err != nil {
		return timestampCodec{}, fmt.Errorf("invalid format description %q: %w", name, err)
	}
	logrus.WithField("description", name).Debug("compiled format description")
	return timestampCodec{
		format: l.FormatOffsetDateTime,
		parse:  l.ParseOffsetDateTime,
	}, nil
}

// parseOffsetFlag reads a UTC offset written as +HH, +HH:MM, or +HH:MM:SS.
func parseOffsetFlag(s string) (civil.UtcOffset, error) {
	var o civil.UtcOffset
	if s == "Z" || s == "z" || s == "utc" || s == "UTC" {
		return civil.UTC, nil
	}
	if len(s) == 3 {
		s += ":00"
	}
	if err := o.UnmarshalText([]byte(s)); err != nil {
		return civil.UtcOffset{}, fmt.Errorf("invalid offset %q (want +HH:MM): %w", s, err)
	}
	return o, nil
}
