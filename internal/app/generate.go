package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/passgauge/internal/analyzer"
	"github.com/blackwell-systems/passgauge/internal/cracktime"
	"github.com/blackwell-systems/passgauge/internal/generator"
	"github.com/blackwell-systems/passgauge/internal/output"
	"github.com/blackwell-systems/passgauge/internal/store"
)

var (
	genLength         int
	genCount          int
	genNoUppercase    bool
	genNoLowercase    bool
	genNoNumbers      bool
	genNoSymbols      bool
	genExcludeSimilar bool
	genPronounceable  bool
	genAssess         bool
	genRecord         bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random passwords",
	Long: `Generate cryptographically random passwords. By default each password
is 16 characters drawn from all four character classes.

Pronounceable mode alternates consonants and vowels so the result can
be memorized, optionally mixing in a digit and a symbol.

Defaults can be set in the [generator] section of the config file;
flags always win over file values.`,
	Example: `  # One 16-character password from all classes
  passgauge generate

  # Five 24-character passwords without symbols
  passgauge generate --length 24 --count 5 --no-symbols

  # Avoid visually similar characters (il1Lo0O)
  passgauge generate --exclude-similar

  # Memorable consonant-vowel password
  passgauge generate --pronounceable

  # Generate and show the strength assessment
  passgauge generate --assess`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genLength, "length", 16, "Password length")
	generateCmd.Flags().IntVar(&genCount, "count", 1, "Number of passwords to generate")
	generateCmd.Flags().BoolVar(&genNoUppercase, "no-uppercase", false, "Exclude uppercase letters")
	generateCmd.Flags().BoolVar(&genNoLowercase, "no-lowercase", false, "Exclude lowercase letters")
	generateCmd.Flags().BoolVar(&genNoNumbers, "no-numbers", false, "Exclude digits")
	generateCmd.Flags().BoolVar(&genNoSymbols, "no-symbols", false, "Exclude symbols")
	generateCmd.Flags().BoolVar(&genExcludeSimilar, "exclude-similar", false, "Exclude visually similar characters (il1Lo0O)")
	generateCmd.Flags().BoolVar(&genPronounceable, "pronounceable", false, "Generate a pronounceable password")
	generateCmd.Flags().BoolVar(&genAssess, "assess", false, "Show the strength assessment of each password")
	generateCmd.Flags().BoolVar(&genRecord, "record", false, "Record score metrics in the history database")

	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genCount < 1 {
		return fmt.Errorf("invalid count: %d (must be at least 1)", genCount)
	}

	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := generator.DefaultConfig()
	fileCfg.ApplyGenerator(&cfg)

	// Flags override file values only when explicitly set.
	if cmd.Flags().Changed("length") {
		cfg.Length = genLength
	}
	if cmd.Flags().Changed("no-uppercase") {
		cfg.Uppercase = !genNoUppercase
	}
	if cmd.Flags().Changed("no-lowercase") {
		cfg.Lowercase = !genNoLowercase
	}
	if cmd.Flags().Changed("no-numbers") {
		cfg.Numbers = !genNoNumbers
	}
	if cmd.Flags().Changed("no-symbols") {
		cfg.Symbols = !genNoSymbols
	}
	if cmd.Flags().Changed("exclude-similar") {
		cfg.ExcludeSimilar = genExcludeSimilar
	}
	if cmd.Flags().Changed("pronounceable") {
		cfg.Pronounceable = genPronounceable
	}

	var st *store.Store
	if genRecord {
		st, err = openStore()
		if err != nil {
			return err
		}
		defer st.Close()
	}

	for i := 0; i < genCount; i++ {
		password, err := generator.Generate(cfg)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		if genAssess {
			a := analyzer.Assess(password)
			est := cracktime.Compute(a, password)
			if i > 0 {
				fmt.Println()
			}
			fmt.Print(output.RenderAssessment(password, a, est))
			if st != nil {
				if err := st.InsertRecord(store.NewRecord(a, "generate")); err != nil {
					return fmt.Errorf("failed to record assessment: %w", err)
				}
			}
			continue
		}

		fmt.Println(password)
		if st != nil {
			a := analyzer.Assess(password)
			if err := st.InsertRecord(store.NewRecord(a, "generate")); err != nil {
				return fmt.Errorf("failed to record assessment: %w", err)
			}
		}
	}
	return nil
}
