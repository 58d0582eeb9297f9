package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"namesake/adapters/excel"
	"namesake/adapters/postgres"
	"namesake/domain/core"
	"namesake/domain/features"
	"namesake/internal"
	"namesake/internal/analysis"
	"namesake/internal/batch"
	"namesake/internal/config"
	"namesake/internal/predict"
	"namesake/internal/testkit"
)

var logger = internal.DefaultLogger

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "namesake",
		Short: "Nominative determinism feature extraction and prediction",
	}

	rootCmd.AddCommand(
		newExtractCmd(),
		newPredictCmd(),
		newReportCmd(),
		newSeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newExtractCmd() *cobra.Command {
	var outFile string
	var save bool

	cmd := &cobra.Command{
		Use:   "extract [roster-file]",
		Short: "Extract the full feature matrix for a roster",
		Long: `Extract the complete feature vector for every entity in a roster file
(xlsx or csv) and write the matrix to an Excel workbook.

Example: namesake extract data/roster.xlsx --out reports/features.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			rosterFile := cfg.Data.RosterFile
			if len(args) > 0 {
				rosterFile = args[0]
			}
			return runExtract(cmd.Context(), cfg, rosterFile, outFile, save)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Output workbook path (default <output-dir>/features.xlsx)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist extracted features to the database")

	return cmd
}

func runExtract(ctx context.Context, cfg *config.Config, rosterFile, outFile string, save bool) error {
	entities, _, err := excel.NewRosterReader(rosterFile).ReadRoster()
	if err != nil {
		return err
	}

	requests := make([]batch.Request, len(entities))
	for i, e := range entities {
		requests[i] = batch.Request{Entity: e}
	}

	extracted, err := batch.NewBatchExtractor(cfg.Analysis.BatchConcurrency).Run(ctx, requests)
	if err != nil {
		return err
	}

	if outFile == "" {
		outFile = filepath.Join(cfg.Data.OutputDir, "features.xlsx")
	}
	if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
		return err
	}
	if err := excel.NewMatrixWriter(outFile).WriteFeatures(extracted); err != nil {
		return err
	}
	fmt.Printf("Extracted %d entities -> %s\n", len(extracted), outFile)

	if save {
		if !cfg.Database.Enabled {
			return fmt.Errorf("--save requires DATABASE_URL to be set")
		}
		db, err := postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		repo := postgres.NewFeatureRepository(db)
		runID := core.RunID(core.NewID())
		for _, e := range extracted {
			if err := repo.SaveFeatures(ctx, runID, e); err != nil {
				return err
			}
		}
		fmt.Printf("Saved run %s to database\n", runID)
	}

	return nil
}

func newPredictCmd() *cobra.Command {
	var (
		sport, team, venue, prop, position string
		playoff, primetime, home, national bool
		reach, adCount, altitude           float64
		save                               bool
	)

	cmd := &cobra.Command{
		Use:   "predict [entity-name]",
		Short: "Run the full prediction pipeline for one entity",
		Long: `Predict the nominative performance score for a single named entity.
Linguistic features are derived from the name; team, venue, and prop
labels are optional and each one adds a capped amplifier.

Example: namesake predict "Nick Chubb" --sport football --position RB --team Browns --home`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := features.EntityDescriptor{Name: args[0], Position: position}
			gameCtx := features.GameContext{
				Sport:               sport,
				TeamName:            team,
				VenueName:           venue,
				PropType:            prop,
				IsPlayoff:           playoff,
				IsPrimetime:         primetime,
				IsHomeGame:          home,
				IsNationalBroadcast: national,
				BroadcastReach:      reach,
				AdCount:             adCount,
				Altitude:            altitude,
			}

			result := predict.NewEnhancedNominativePredictor().Predict(entity, gameCtx, nil, nil)

			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))

			if save {
				return savePrediction(cmd.Context(), result)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sport, "sport", "", "Sport (football, basketball, hockey, ...)")
	cmd.Flags().StringVar(&team, "team", "", "Team label")
	cmd.Flags().StringVar(&venue, "venue", "", "Venue label")
	cmd.Flags().StringVar(&prop, "prop", "", "Prop type label")
	cmd.Flags().StringVar(&position, "position", "", "Position code (RB, QB, ...)")
	cmd.Flags().BoolVar(&playoff, "playoff", false, "Playoff game")
	cmd.Flags().BoolVar(&primetime, "primetime", false, "Primetime slot")
	cmd.Flags().BoolVar(&home, "home", false, "Home game")
	cmd.Flags().BoolVar(&national, "national", false, "National broadcast")
	cmd.Flags().Float64Var(&reach, "reach", 0, "Broadcast reach score")
	cmd.Flags().Float64Var(&adCount, "ad-count", 0, "Competing ad count")
	cmd.Flags().Float64Var(&altitude, "altitude", 0, "Venue altitude in feet")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the prediction to the database")

	return cmd
}

func savePrediction(ctx context.Context, result features.PredictionResult) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Database.Enabled {
		return fmt.Errorf("--save requires DATABASE_URL to be set")
	}
	db, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	return postgres.NewPredictionRepository(db).SavePrediction(ctx, result)
}

func newReportCmd() *cobra.Command {
	var outcomeKey string
	var maxRegressors int

	cmd := &cobra.Command{
		Use:   "report [roster-file]",
		Short: "Run the analysis battery on a roster and write a report",
		Long: `Extract features for every roster entity, screen each feature against
the outcome column with Pearson, Spearman, and Welch tests, apply FDR
correction, and write JSON, Markdown, and HTML reports.

The roster file must include an outcome column.

Example: namesake report data/roster.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			rosterFile := cfg.Data.RosterFile
			if len(args) > 0 {
				rosterFile = args[0]
			}
			return runReport(cmd.Context(), cfg, rosterFile, outcomeKey, maxRegressors)
		},
	}

	cmd.Flags().StringVar(&outcomeKey, "outcome", "outcome", "Name of the outcome column")
	cmd.Flags().IntVar(&maxRegressors, "max-regressors", 8, "Max features in the regression screen")

	return cmd
}

func runReport(ctx context.Context, cfg *config.Config, rosterFile, outcomeKey string, maxRegressors int) error {
	entities, outcomes, err := excel.NewRosterReader(rosterFile).ReadRoster()
	if err != nil {
		return err
	}
	if outcomes == nil {
		return fmt.Errorf("roster %s has no outcome column; the report needs one", rosterFile)
	}

	requests := make([]batch.Request, len(entities))
	for i, e := range entities {
		requests[i] = batch.Request{Entity: e}
	}
	extracted, err := batch.NewBatchExtractor(cfg.Analysis.BatchConcurrency).Run(ctx, requests)
	if err != nil {
		return err
	}

	matrix := analysis.NewFeatureMatrix(extracted)
	battery := analysis.NewBattery()
	screens := battery.RunAll(ctx, matrix, outcomes)
	findings := analysis.TopFindings(screens, cfg.Analysis.FDRAlpha)

	report := analysis.NewReport(outcomeKey, matrix.N, cfg.Analysis.FDRAlpha)
	report.Screens = screens
	report.Findings = findings

	// Group harshness by position when the roster carries positions.
	groups := map[string][]float64{}
	harshness := matrix.Column("harshness")
	for i, e := range extracted {
		if e.Entity.Position != "" && i < len(harshness) {
			groups[e.Entity.Position] = append(groups[e.Entity.Position], harshness[i])
		}
	}
	if len(groups) >= 2 {
		report.ANOVA = append(report.ANOVA, analysis.OneWayANOVA("harshness", groups))
	}

	regressors := uniqueFeatureKeys(findings, maxRegressors)
	if len(regressors) > 0 {
		if reg, err := analysis.OLSScreen(matrix, regressors, outcomes); err == nil {
			report.Regression = reg
		} else {
			logger.Warn("regression screen skipped: %v", err)
		}
	}

	if clusters, err := analysis.KMeans(matrix, regressorsOrDefault(regressors), cfg.Analysis.ClusterK); err == nil {
		report.Clusters = clusters
	} else {
		logger.Warn("clustering skipped: %v", err)
	}

	if err := os.MkdirAll(cfg.Data.OutputDir, 0o755); err != nil {
		return err
	}
	jsonPath, err := report.WriteJSON(cfg.Data.OutputDir, "analysis")
	if err != nil {
		return err
	}
	mdPath, err := report.WriteMarkdown(cfg.Data.OutputDir, "analysis")
	if err != nil {
		return err
	}

	fmt.Printf("Report written: %s, %s\n", jsonPath, mdPath)
	fmt.Printf("Findings surviving FDR (alpha %.2f): %d of %d screens\n",
		cfg.Analysis.FDRAlpha, len(findings), len(screens))
	return nil
}

func uniqueFeatureKeys(findings []analysis.ScreenResult, limit int) []string {
	seen := map[string]bool{}
	var keys []string
	for _, f := range findings {
		if seen[f.FeatureKey] {
			continue
		}
		seen[f.FeatureKey] = true
		keys = append(keys, f.FeatureKey)
		if len(keys) >= limit {
			break
		}
	}
	return keys
}

func regressorsOrDefault(keys []string) []string {
	if len(keys) > 0 {
		return keys
	}
	return []string{"harshness", "memorability", "uniqueness", "syllables", "vowel_ratio"}
}

func newSeedCmd() *cobra.Command {
	var count int
	var seed int64
	var edge float64

	cmd := &cobra.Command{
		Use:   "seed [output-file]",
		Short: "Generate a synthetic roster with a planted harshness signal",
		Long: `Generate a synthetic CSV roster with a known harshness-outcome
relationship, useful for exercising the analysis battery end to end.

Example: namesake seed data/roster.csv --count 300 --edge 0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gcfg := testkit.DefaultRosterConfig()
			gcfg.EntityCount = count
			gcfg.Seed = seed
			gcfg.HarshnessEdge = edge
			entities, outcomes := testkit.NewRosterGenerator(gcfg).Generate()
			return writeRosterCSV(args[0], entities, outcomes)
		},
	}

	cmd.Flags().IntVar(&count, "count", 200, "Number of entities to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic generation")
	cmd.Flags().Float64Var(&edge, "edge", 0.4, "Planted harshness-outcome slope")

	return cmd
}

func writeRosterCSV(path string, entities []features.EntityDescriptor, outcomes []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"name", "position", "syllables", "harshness", "memorability", "length",
		"vowel_ratio", "consonant_clusters", "uniqueness", "pronounceability",
		"years_in_league", "media_buzz", "market_size_mult", "is_contract_year",
		"games_played", "outcome",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, e := range entities {
		row := []string{
			e.Name,
			e.Position,
			num(e.Linguistic.Syllables),
			num(e.Linguistic.Harshness),
			num(e.Linguistic.Memorability),
			num(e.Linguistic.Length),
			num(e.Linguistic.VowelRatio),
			num(e.Linguistic.ConsonantClusters),
			num(e.Linguistic.Uniqueness),
			num(e.Linguistic.Pronounceability),
			num(e.YearsInLeague),
			num(e.MediaBuzz),
			num(e.MarketSizeMult),
			strconv.FormatBool(e.IsContractYear),
			num(e.GamesPlayed),
			num(outcomes[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	fmt.Printf("Wrote %d synthetic entities to %s\n", len(entities), path)
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
