package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/skills"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/store"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/trends"
)

var seedTrendsFile string

var seedTrendsCmd = &cobra.Command{
	Use:   "seed-trends",
	Short: "Load market-trend snapshots into the document store",
	Long: `Reads a JSON file of precomputed trend snapshots and upserts them into
the trends collection. Snapshots carrying a skill are keyed by the
canonical skill token, snapshots carrying a roleId by the role ID.`,
	RunE: runSeedTrends,
}

func init() {
	seedTrendsCmd.Flags().StringVar(&seedTrendsFile, "file", "", "Path to the snapshots JSON file (required)")
	_ = seedTrendsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(seedTrendsCmd)
}

func runSeedTrends(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	data, err := os.ReadFile(seedTrendsFile)
	if err != nil {
		return fmt.Errorf("failed to read snapshots file: %w", err)
	}

	var snapshots []trends.Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return fmt.Errorf("failed to parse snapshots file: %w", err)
	}

	ctx := cmd.Context()
	st, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	canon := skills.Default()
	saved := 0
	for i := range snapshots {
		snapshot := &snapshots[i]

		var key string
		switch {
		case snapshot.Skill != "":
			snapshot.Skill = canon.Canonicalize(snapshot.Skill)
			key = trends.SkillKey(snapshot.Skill)
		case snapshot.RoleID != "":
			key = trends.RoleKey(snapshot.RoleID)
		default:
			return fmt.Errorf("snapshot %d has neither skill nor roleId", i)
		}

		if err := st.SaveTrend(ctx, key, snapshot); err != nil {
			return err
		}
		saved++
	}

	fmt.Printf("Saved %d trend snapshots\n", saved)
	return nil
}
