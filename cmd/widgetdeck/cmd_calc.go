package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/widgetdeck/internal/calc"
	"github.com/jask/widgetdeck/internal/database/repository"
)

var (
	calcTrace bool
	calcSave  bool
	tapeLimit int
)

// calcCmd runs key presses through a fresh accumulator
var calcCmd = &cobra.Command{
	Use:   "calc KEYS...",
	Short: "Feed keys to the calculator and print the display",
	Long: `Each character is one key: digits and '.', operators + - * x / (or × ÷),
'=' to evaluate, 'c' to clear and '<' for backspace. Anything else is ignored.
Put arguments that start with '-' after "--".

Examples:
  widgetdeck calc 2+3*4=
  widgetdeck calc --trace 10 / 0 =
  widgetdeck calc --save 5-8=`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

var tapeCmd = &cobra.Command{
	Use:   "tape",
	Short: "Show the most recent calculations",
	Args:  cobra.NoArgs,
	RunE:  runTape,
}

var tapeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every calculation on the tape",
	Args:  cobra.NoArgs,
	RunE:  runTapeClear,
}

func init() {
	calcCmd.Flags().BoolVar(&calcTrace, "trace", false, "Print the display after every key")
	calcCmd.Flags().BoolVar(&calcSave, "save", false, "Append completed calculations to the tape")
	tapeCmd.Flags().IntVarP(&tapeLimit, "limit", "n", 0, "Number of entries (default: calculator.tape_size)")
	tapeCmd.AddCommand(tapeClearCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	input := strings.Join(args, "")
	keys := calc.ParseKeys(input)
	acc := calc.New(
		calc.WithPrecision(cfg.Calculator.Precision),
		calc.WithMaxDigits(cfg.Calculator.MaxEntry),
		calc.WithErrorText(cfg.Calculator.ErrorText),
	)

	var done []calc.Calculation
	for i, k := range keys {
		if c, ok := acc.Press(k); ok {
			done = append(done, c)
		}
		if calcTrace {
			fmt.Fprintf(out, "%3d  %-4s %s\n", i+1, keyLabel(k), acc.Display())
		}
	}
	logger.Debug("calc", zap.String("input", input), zap.Int("keys", len(keys)), zap.String("display", acc.Display()))
	if !calcTrace {
		fmt.Fprintln(out, acc.Display())
	}

	if !calcSave || len(done) == 0 {
		return nil
	}
	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()
	tape := repository.NewTapeRepo(db)
	now := time.Now()
	for _, c := range done {
		if _, err := tape.Append(cmd.Context(), c, acc.Precision(), now); err != nil {
			return fmt.Errorf("save tape: %w", err)
		}
	}
	logger.Info("tape saved", zap.Int("entries", len(done)))
	return nil
}

func keyLabel(k calc.Key) string {
	switch k.Kind {
	case calc.KeyDigit:
		return string(k.Digit)
	case calc.KeyOperator:
		return k.Op.Symbol()
	case calc.KeyEquals:
		return "="
	case calc.KeyClear:
		return "C"
	case calc.KeyBackspace:
		return "⌫"
	}
	return "?"
}

func runTape(cmd *cobra.Command, args []string) error {
	limit := tapeLimit
	if limit <= 0 {
		limit = cfg.Calculator.TapeSize
	}
	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := repository.NewTapeRepo(db).Recent(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("load tape: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "tape is empty")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Line())
	}
	return nil
}

func runTapeClear(cmd *cobra.Command, args []string) error {
	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()
	if err := repository.NewTapeRepo(db).Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clear tape: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "tape cleared")
	return nil
}
