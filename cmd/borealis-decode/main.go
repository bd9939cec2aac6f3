package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sofarocean/borealis-tools/pkg/borealis"
)

var (
	rootCmd = &cobra.Command{
		Use:   "borealis-decode [base64]",
		Short: "Decode Borealis acoustic telemetry payloads",
		Long: "borealis-decode converts base64-encoded Borealis sensor payloads into CSV\n" +
			"tables of sound pressure level per frequency band. With no argument it\n" +
			"reads one payload per line from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := borealis.Options{DataType: dataType, DF: df}
			if len(args) == 0 {
				return runStream(opts)
			}
			return runDecode(opts, args[0])
		},
	}

	dataType string
	df       float64
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataType, "data-type", "",
		"force the payload variant: spectrum, statistics or pgram (default: infer from line length)")
	rootCmd.PersistentFlags().Float64Var(&df, "df", 0,
		"frequency bin spacing in Hz for pgram data (default 7.629, assumes 31250 Hz sample rate)")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// runStream decodes stdin line by line in input order. A line that fails to
// decode is logged and skipped; later lines are still processed.
func runStream(opts borealis.Options) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(opts, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runDecode(opts borealis.Options, line string) error {
	result, err := borealis.DecodeLineWithOptions(line, opts)
	if err != nil {
		return err
	}
	return result.WriteCSV(os.Stdout)
}
