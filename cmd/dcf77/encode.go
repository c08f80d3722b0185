package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	dcf77 "github.com/complex-gh/dcf77_go"
)

// transmitterZone is the civil time broadcast by DCF77
const transmitterZone = "Europe/Berlin"

func newEncodeCmd(o *options) *cobra.Command {
	var (
		flagNames []string
		zone      string
	)
	cmd := &cobra.Command{
		Use:   "encode [RFC3339 time]",
		Short: "Encode a time into a carrier (default: now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now().Truncate(time.Minute)
			if len(args) == 1 {
				parsed, err := time.Parse(time.RFC3339, args[0])
				if err != nil {
					return fmt.Errorf("time %q: %w", args[0], err)
				}
				t = parsed
			}
			if zone != "" {
				loc, err := time.LoadLocation(zone)
				if err != nil {
					return fmt.Errorf("zone %q: %w", zone, err)
				}
				t = t.In(loc)
			}

			var flags dcf77.Flags
			for _, name := range flagNames {
				f, ok := dcf77.ParseFlag(name)
				if !ok {
					return fmt.Errorf("unknown flag %q", name)
				}
				flags |= f
			}

			frame := dcf77.FromTime(t, flags)
			c, err := dcf77.Encode(frame)
			if err != nil {
				return err
			}
			o.log.Debug().Time("time", t).Str("carrier", c.String()).Msg("encoded")

			p := newPrinter(o.cfg.Format, cmd.OutOrStdout())
			view := newFrameView(c, frame, o.lang, o.cfg.Pivot)
			if err := p.print(view, fmt.Sprintf("%s\n%s", c, c.Bits())); err != nil {
				return err
			}
			return p.close()
		},
	}
	cmd.Flags().StringSliceVar(&flagNames, "flag", nil, "status flags to set: antenna, dst-announce, dst, standard-time, leap-second")
	cmd.Flags().StringVar(&zone, "zone", transmitterZone, "convert the time into this zone first; empty keeps the given offset")
	return cmd
}
