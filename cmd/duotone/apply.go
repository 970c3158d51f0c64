package main

import (
	"log"

	"github.com/nvr-ai/go-duotone/images"
	"github.com/nvr-ai/go-duotone/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Tint a single image",
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringP("input", "i", "", "Input image file")
	applyCmd.Flags().StringP("output", "o", "", "Output image file (format from extension)")
	applyCmd.Flags().String("preview", "", "Optional path for a downscaled preview")
	applyCmd.Flags().Int("preview-max", session.DefaultPreviewMaxDimension, "Longest side of the preview")
	applyCmd.Flags().Int("quality", images.DefaultQuality, "JPEG/WebP quality (1-100)")
	applyCmd.Flags().Bool("verbose", false, "Log per-pass timings")
	addColorFlags(applyCmd)
	applyCmd.MarkFlagRequired("input")
	applyCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	previewPath, _ := cmd.Flags().GetString("preview")
	previewMax, _ := cmd.Flags().GetInt("preview-max")
	quality, _ := cmd.Flags().GetInt("quality")
	verbose, _ := cmd.Flags().GetBool("verbose")

	dark, light, err := resolveColors(cmd)
	if err != nil {
		return err
	}

	encoded, err := images.Load(inputPath)
	if err != nil {
		return err
	}
	decoded, err := images.Decode(encoded)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", inputPath)
	}

	editor := session.NewEditor(session.EditorOptions{
		PreviewMaxDimension: previewMax,
		Dark:                dark,
		Light:               light,
		Debug:               verbose,
	})
	defer editor.Close()

	preview, err := editor.Load(decoded)
	if err != nil {
		return err
	}
	if previewPath != "" {
		if err := images.Save(previewPath, preview, quality); err != nil {
			return err
		}
		log.Printf("🔍 Preview %dx%d → %s", preview.Bounds().Dx(), preview.Bounds().Dy(), previewPath)
	}

	full, err := editor.Export()
	if err != nil {
		return err
	}
	if err := images.Save(outputPath, full, quality); err != nil {
		return err
	}

	log.Printf("✅ Tinted %dx%d %s with %s → %s: %s", encoded.Width, encoded.Height, inputPath, dark, light, outputPath)
	return nil
}
