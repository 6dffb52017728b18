package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/palettekit/ase"
)

var (
	manifestPath string
	outputPath   string
	logLevel     string
	rootCmd      *cobra.Command
	logger       hclog.Logger
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "asec",
		Short: "Inspect, build and convert Adobe Swatch Exchange files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = hclog.New(&hclog.LoggerOptions{
				Name:  "asec",
				Level: hclog.LevelFromString(logLevel),
			})
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")

	infoCmd := &cobra.Command{
		Use:   "info <file.ase>",
		Short: "Print the palette contained in an ASE file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	exportCmd := &cobra.Command{
		Use:   "export <file.ase>",
		Short: "Write the palette of an ASE file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output path (- for stdout)")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Create an ASE file from a JSON palette",
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to palette.json (required)")
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path for the ASE file (required)")
	if err := buildCmd.MarkFlagRequired("manifest"); err != nil {
		panic(err)
	}
	if err := buildCmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(infoCmd, exportCmd, buildCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func decodeFile(path string) ([]ase.Group, []ase.ColorBlock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	groups, colors, err := ase.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	logger.Debug("decoded palette", "path", path, "groups", len(groups), "colors", len(colors))
	return groups, colors, nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	groups, colors, err := decodeFile(args[0])
	if err != nil {
		return err
	}
	for _, g := range groups {
		fmt.Printf("group %q (%d colors)\n", g.Name, len(g.Blocks))
		for _, b := range g.Blocks {
			fmt.Printf("  %s\n", describeColor(b))
		}
	}
	for _, b := range colors {
		fmt.Println(describeColor(b))
	}
	return nil
}

func describeColor(b ase.ColorBlock) string {
	var value string
	switch c := b.Color.(type) {
	case ase.CMYK:
		value = fmt.Sprintf("cmyk(%g, %g, %g, %g)", c.C, c.M, c.Y, c.K)
	case ase.RGB:
		value = fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
	case ase.Lab:
		value = fmt.Sprintf("lab(%g, %g, %g)", c.L, c.A, c.B)
	case ase.Gray:
		value = fmt.Sprintf("gray(%g)", c.V)
	}
	return fmt.Sprintf("%q %s [%s]", b.Name, value, colorTypeName(b.Type))
}

func runExport(cmd *cobra.Command, args []string) error {
	groups, colors, err := decodeFile(args[0])
	if err != nil {
		return err
	}
	doc := toPalette(groups, colors)
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if outputPath == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outputPath, out, 0o644)
}

func runBuild(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return err
	}
	var doc paletteDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", manifestPath, err)
	}
	groups, colors, err := fromPalette(doc)
	if err != nil {
		return fmt.Errorf("palette %s: %w", manifestPath, err)
	}
	data := ase.Encode(groups, colors)
	logger.Info("built ASE file", "path", outputPath, "bytes", len(data),
		"groups", len(groups), "colors", len(colors))
	return os.WriteFile(outputPath, data, 0o644)
}
