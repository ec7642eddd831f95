package gcp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// SavePacketAtomically writes an assembled packet to a GCS object only if it
// doesn't already exist, so re-delivered events never overwrite a finished
// packet. It's a shared utility for the archive and output paths.
func SavePacketAtomically(ctx context.Context, bucket *storage.BucketHandle, objectName string, pdf []byte) error {
	writer := bucket.Object(objectName).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	writer.ContentType = "application/pdf"

	if _, err := io.Copy(writer, bytes.NewReader(pdf)); err != nil {
		_ = writer.Close()
		if gerr, ok := err.(*googleapi.Error); ok && gerr.Code == 412 {
			slog.Info("Skipping write, object already exists.", "gcsObject", objectName)
			return nil // Not a failure in an idempotent workflow.
		}
		slog.Error("Failed to copy packet to GCS object.", "gcsObject", objectName, "error", err)
		return fmt.Errorf("failed to write to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		if gerr, ok := err.(*googleapi.Error); ok && gerr.Code == 412 {
			slog.Info("Skipping write, object already exists.", "gcsObject", objectName)
			return nil
		}
		slog.Error("Failed to close GCS writer.", "gcsObject", objectName, "error", err)
		return fmt.Errorf("failed to finalize GCS write: %w", err)
	}
	return nil
}
