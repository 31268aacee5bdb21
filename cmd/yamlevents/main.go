// Command yamlevents dumps the structural event stream for a YAML
// document, one event per line. It exists as a thin demonstration of the
// yamlevents package, not as a general-purpose YAML tool.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ctrlflow-yaml/yamlevents"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "yamlevents [file]",
		Short: "Print the structural event stream for a YAML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, args, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "render each event as a JSON object instead of plain text")
	return cmd
}

// jsonEvent is the --json rendering of an event: a plain projection of the
// fields that carry information for the kind at hand, omitting the zero
// ones cobra's flag already filtered callers away from needing.
type jsonEvent struct {
	Kind            string `json:"kind"`
	Mark            string `json:"mark"`
	Anchor          string `json:"anchor,omitempty"`
	Tag             string `json:"tag,omitempty"`
	Value           string `json:"value,omitempty"`
	ScalarStyle     string `json:"scalarStyle,omitempty"`
	CollectionStyle string `json:"collectionStyle,omitempty"`
	Implicit        bool   `json:"implicit,omitempty"`
}

func runEvents(cmd *cobra.Command, args []string, asJSON bool) error {
	src := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	p, err := yamlevents.NewParser(src)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	for {
		ev, err := p.Next()
		if err != nil {
			if yamlevents.IsEndOfStream(err) {
				return nil
			}
			return err
		}
		if asJSON {
			je := jsonEvent{
				Kind:     ev.Kind.String(),
				Mark:     ev.Start.String(),
				Anchor:   ev.Anchor,
				Tag:      ev.Tag,
				Implicit: ev.IsImplicit,
			}
			if ev.Kind == yamlevents.Scalar {
				je.Value = ev.Value
				je.ScalarStyle = ev.ScalarStyle.String()
			}
			if ev.Kind == yamlevents.SequenceStart || ev.Kind == yamlevents.MappingStart {
				je.CollectionStyle = ev.CollectionStyle.String()
			}
			if err := enc.Encode(je); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "%s %s", ev.Kind, ev.Start)
			if ev.Anchor != "" {
				fmt.Fprintf(out, " &%s", ev.Anchor)
			}
			if ev.Tag != "" {
				fmt.Fprintf(out, " <%s>", ev.Tag)
			}
			if ev.Kind == yamlevents.Scalar {
				fmt.Fprintf(out, " %q (%s)", ev.Value, ev.ScalarStyle)
			}
			fmt.Fprintln(out)
		}
	}
}
