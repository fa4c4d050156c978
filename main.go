package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/plasmagm/airgm/internal/config"
	"github.com/plasmagm/airgm/internal/kinetics"
	"github.com/plasmagm/airgm/internal/model"
	"github.com/plasmagm/airgm/internal/utils"
)

var configFileName string

func main() {
	rootCmd := &cobra.Command{
		Use:           "airgm",
		Short:         "Global kinetics model of a pulsed humid-air plasma",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFileName, "input", "airgm", "model configuration in toml format")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Integrate every configured model and save state histories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels()
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the configured reaction list with peak-temperature rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listReactions()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// prepare loads the shared rate table once and builds one model per
// config entry, in name order.
func prepare() (names []string, models map[string]*model.GlobalModel, outputPath string, err error) {
	cfg, meta, err := config.LoadConfig(configFileName)
	if err != nil {
		return nil, nil, "", err
	}

	table := kinetics.NewRateTable()
	if cfg.RateTable != "" {
		if err := table.Load(cfg.RateTable); err != nil {
			return nil, nil, "", err
		}
		logrus.Infof("rate table %s: %d energy points", cfg.RateTable, table.NumPoints())
	}

	if cfg.OutputDir != "" && cfg.OutputDir != "." {
		if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
			return nil, nil, "", err
		}
		outputPath = cfg.OutputDir + "/"
	}

	models = make(map[string]*model.GlobalModel, len(cfg.Models))
	for modelName, parameters := range cfg.Models {
		parameters.ApplyDefaults(modelName, &meta)
		mechanism, err := config.BuildMechanism(&parameters)
		if err != nil {
			return nil, nil, "", fmt.Errorf("%s: %w", modelName, err)
		}
		m, err := model.New(parameters, mechanism, table)
		if err != nil {
			return nil, nil, "", fmt.Errorf("%s: %w", modelName, err)
		}
		models[modelName] = m
		names = append(names, modelName)
	}
	sort.Strings(names)
	return names, models, outputPath, nil
}

func runModels() error {
	startTime := time.Now()

	names, models, outputPath, err := prepare()
	if err != nil {
		return err
	}

	summary := utils.CSV{}
	for _, modelName := range names {
		logrus.Infof("model %s", modelName)
		m := models[modelName]
		if err := m.Run(outputPath, modelName); err != nil {
			return fmt.Errorf("%s: %w", modelName, err)
		}
		fastest, rate := m.FastestReaction()
		summary = append(summary, []string{
			modelName,
			strconv.FormatFloat(m.Species[17].Density(), 'g', 6, 64),
			strconv.FormatFloat(m.Species[36].Density(), 'g', 6, 64),
			strconv.FormatFloat(m.Species[39].Density(), 'g', 6, 64),
			strconv.Itoa(fastest),
			strconv.FormatFloat(rate, 'g', 6, 64),
		})
	}

	if err := utils.WriteAsCSV(summary, outputPath, "", "summary",
		[]string{"model", "n_e (m^-3)", "n_O3 (m^-3)", "n_NO2 (m^-3)", "fastest reaction", "rate"}); err != nil {
		return err
	}

	logrus.Infof("elapsed time: %v", time.Since(startTime))
	return nil
}

func listReactions() error {
	names, models, _, err := prepare()
	if err != nil {
		return err
	}

	for _, modelName := range names {
		m := models[modelName]
		m.SetElectronTemperatureEv(m.Parameters.ElectronTemperature)
		if err := m.SetReactionRates(); err != nil {
			return fmt.Errorf("%s: %w", modelName, err)
		}

		fmt.Println(modelName)
		fmt.Println("No.,Rate,r1,r2,r3,r4,--->,p1,p2,p3,p4")
		for _, row := range m.ReactionRows() {
			fmt.Println(strings.Join(row, ","))
		}
	}
	return nil
}
