package ziparchive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Client compresses published folders into zip files ready for upload
//
//go:generate mockgen -package=ziparchive -destination ./mock.go -source=client.go
type Client interface {
	Archive(ctx context.Context, sourceDir, destinationDir, name string) (zipPath string, err error)
}

// NewClient returns a new ziparchive.Client
func NewClient() Client {
	return &client{}
}

type client struct {
}

// Archive zips the entire contents of sourceDir into
// <destinationDir>/<name>.zip, overwriting any existing zip
func (c *client) Archive(ctx context.Context, sourceDir, destinationDir, name string) (zipPath string, err error) {

	if _, err = os.Stat(destinationDir); os.IsNotExist(err) {
		log.Warn().Msgf("Destination directory %v does not exist, creating it...", destinationDir)
		if err = os.MkdirAll(destinationDir, 0755); err != nil {
			return
		}
	}

	zipPath = filepath.Join(destinationDir, name+".zip")

	log.Info().Msgf("Compressing %v into %v...", sourceDir, zipPath)

	zipFile, err := os.Create(zipPath)
	if err != nil {
		return
	}
	defer zipFile.Close()

	writer := zip.NewWriter(zipFile)

	err = filepath.Walk(sourceDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(sourceDir, path)
		if relErr != nil {
			return relErr
		}

		header, headerErr := zip.FileInfoHeader(info)
		if headerErr != nil {
			return headerErr
		}
		header.Name = filepath.ToSlash(relPath)
		header.Method = zip.Deflate

		entry, entryErr := writer.CreateHeader(header)
		if entryErr != nil {
			return entryErr
		}

		file, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		defer file.Close()

		_, copyErr := io.Copy(entry, file)

		return copyErr
	})
	if err != nil {
		writer.Close()
		return zipPath, fmt.Errorf("compressing %v failed: %w", sourceDir, err)
	}

	err = writer.Close()

	return
}
