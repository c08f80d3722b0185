package main

import (
	"bufio"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	dcf77 "github.com/complex-gh/dcf77_go"
)

func newDecodeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <carrier>",
		Short: "Decode a carrier given as 0x... or as a 59-second bit string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dcf77.ParseCarrier(strings.Join(args, ""))
			if err != nil {
				return err
			}
			frame, err := dcf77.Decode(c)
			if err != nil {
				return err
			}
			o.log.Debug().Str("carrier", c.String()).Msg("decoded")

			p := newPrinter(o.cfg.Format, cmd.OutOrStdout())
			view := newFrameView(c, frame, o.lang, o.cfg.Pivot)
			if err := p.print(view, view.Text); err != nil {
				return err
			}
			return p.close()
		},
	}
}

func newStreamCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stream",
		Short: "Decode one carrier per input line, discarding corrupted minutes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(o.cfg.Format, cmd.OutOrStdout())
			scanner := bufio.NewScanner(cmd.InOrStdin())
			var decoded, discarded int
			line := 0
			for scanner.Scan() {
				line++
				text := strings.TrimSpace(scanner.Text())
				if text == "" || strings.HasPrefix(text, "#") {
					continue
				}

				c, err := dcf77.ParseCarrier(text)
				if err != nil {
					discarded++
					o.log.Warn().Int("line", line).Err(err).Msg("unreadable carrier, minute discarded")
					continue
				}
				frame, err := dcf77.Decode(c)
				if err != nil {
					discarded++
					ev := o.log.Warn().Int("line", line).Str("carrier", c.String()).Err(err)
					var ce *dcf77.CodecError
					if errors.As(err, &ce) {
						ev = ev.Stringer("field", ce.Field)
					}
					ev.Msg("corrupted carrier, minute discarded")
					continue
				}

				decoded++
				view := newFrameView(c, frame, o.lang, o.cfg.Pivot)
				if err := p.print(view, c.String()+" "+view.Text); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			o.log.Info().Int("decoded", decoded).Int("discarded", discarded).Msg("stream finished")
			return p.close()
		},
	}
}
