package main

import (
	"github.com/okian/scout/internal/adapters/export"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/logger"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every graded season to a single JSON document",
	Long: `Export writes scouting_data.json (indented) and scouting_data.min.json to the
output directory, plus scouting_data.json.gz with --compress.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output-dir", "o", "", "Destination directory (default from config output_dir)")
	exportCmd.Flags().Bool("compress", false, "Also write a gzip copy (default from config compress)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	dir := cfg.OutputDir
	if cmd.Flags().Changed("output-dir") {
		dir, _ = cmd.Flags().GetString("output-dir")
	}
	compress := cfg.Compress
	if cmd.Flags().Changed("compress") {
		compress, _ = cmd.Flags().GetBool("compress")
	}

	ctx := cmd.Context()
	svc, err := startService(ctx)
	if err != nil {
		return err
	}
	defer svc.Stop()

	var players map[string]model.PlayerInfo
	if ds := svc.Dataset(); ds != nil {
		players = ds.Players
	}
	doc, err := export.Build(svc.Results(), players, export.Options{RunID: svc.RunID()})
	if err != nil {
		return err
	}
	paths, err := export.Write(dir, doc, compress)
	if err != nil {
		return err
	}

	logger.Get().Info(ctx, "export written",
		logger.String("run_id", doc.Metadata.RunID),
		logger.String("digest", doc.Metadata.Digest),
		logger.Int("batters", len(doc.Batters.Index)),
		logger.Int("pitchers", len(doc.Pitchers.Index)),
	)
	formatter := newFormatter(cmd)
	for _, p := range paths {
		formatter.Info("wrote %s", p)
	}
	return nil
}
