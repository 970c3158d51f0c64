package main

import (
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/nvr-ai/go-duotone/images"
	"github.com/nvr-ai/go-duotone/session"
	"github.com/nvr-ai/go-duotone/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Tint every image in a directory",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringP("dir", "d", "", "Input directory")
	batchCmd.Flags().StringP("output", "o", "", "Output directory (created if missing)")
	batchCmd.Flags().String("format", "", "Output format (jpeg, png, webp, ...); defaults to the input format")
	batchCmd.Flags().Int("max-dimension", 0, "Downscale so the longest side is at most this many pixels (0 keeps full size)")
	batchCmd.Flags().Int("quality", images.DefaultQuality, "JPEG/WebP quality (1-100)")
	batchCmd.Flags().Bool("grayscale", false, "Write grayscale instead of a duotone")
	addColorFlags(batchCmd)
	batchCmd.MarkFlagRequired("dir")
	batchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	outDir, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")
	maxDimension, _ := cmd.Flags().GetInt("max-dimension")
	quality, _ := cmd.Flags().GetInt("quality")
	grayscale, _ := cmd.Flags().GetBool("grayscale")

	outFormat := images.FormatUnknown
	if formatName != "" {
		if outFormat = images.ParseFormat(formatName); outFormat == images.FormatUnknown {
			return errors.Wrapf(images.ErrUnsupportedFormat, "--format %q", formatName)
		}
	}

	dark, light, err := resolveColors(cmd)
	if err != nil {
		return err
	}

	files, err := util.LoadDirectoryImageFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.Errorf("no images found in %s", dir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	ctx := cmd.Context()
	for _, f := range files {
		decoded, err := images.Decode(f.Image)
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v", f.Path, err)
			continue
		}

		s, err := session.New(f.Name, decoded, maxDimension)
		if err != nil {
			return err
		}

		var tinted *image.NRGBA
		if grayscale {
			tinted, err = s.Grayscale()
		} else {
			tinted, err = s.ApplyContext(ctx, dark, light)
		}
		if err != nil {
			return err
		}

		format := outFormat
		if format == images.FormatUnknown {
			format = f.Image.Format
		}
		outPath := filepath.Join(outDir, f.Name+format.Extension())
		if err := images.Save(outPath, tinted, quality); err != nil {
			return err
		}
		log.Printf("✅ %s (%s) → %s", f.Path, s.Dimensions(), outPath)
	}
	return nil
}
