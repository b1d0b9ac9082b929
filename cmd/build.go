package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	Long:  `Renders every page once into the output directory together with the stylesheet, the client script and the selected assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		if buildOutput != "" {
			cfg.OutputDir = buildOutput
		}
		a, err := newAssembler(cfg, log)
		if err != nil {
			return err
		}

		gen := &site.Generator{
			Assembler: a,
			Source:    a.Source,
			Assets: assets.Config{
				RootDir: cfg.AssetsDir,
				Include: cfg.Assets.Include,
				Exclude: cfg.Assets.Exclude,
			},
			OutputDir: cfg.OutputDir,
			Reporter:  progress.NewReporter(),
			Log:       log.Named("site"),
		}
		res, err := gen.Generate(cmd.Context())
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}
		if res.LoadErr != nil {
			fmt.Printf("Warning: content could not be loaded (%v); pages show their empty states\n", res.LoadErr)
		}
		fmt.Printf("Static site generated: %s (%d pages, %d assets, build %s)\n",
			cfg.OutputDir, len(res.Pages), res.Assets, res.BuildID)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}
