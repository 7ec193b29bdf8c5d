package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	qmc "github.com/pborges/qmc"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type rootOptions struct {
	debug  bool
	output string
	log    *logrus.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "qmc",
		Short:         "Quine-McCluskey Boolean function minimizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch o.output {
			case outputText, outputJSON, outputYAML:
			default:
				return errors.Errorf("unknown output format %q", o.output)
			}
			o.log = logrus.New()
			o.log.SetOutput(cmd.ErrOrStderr())
			if o.debug {
				o.log.SetLevel(logrus.DebugLevel)
			}
			o.log.Debugf("log level %s", o.log.Level)
			return nil
		},
	}

	o.bindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newMinimizeCmd(o),
		newMuxCmd(o),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) bindFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.debug, "debug", false, "use debug log level")
	fs.StringVarP(&o.output, "output", "o", outputText, "output format: text, json or yaml")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), qmc.Version())
		},
	}
}

// write renders v in the selected format; text uses the provided renderer.
func (o *rootOptions) write(w io.Writer, v interface{}, text func() string) error {
	switch o.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding json")
	case outputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = w.Write(b)
		return err
	}
	s := text()
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
