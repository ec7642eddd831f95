package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/pacificaeng/submittalflow/internal/models"
	"github.com/pacificaeng/submittalflow/internal/services"
)

var (
	assemblerInstance *services.AssemblerFunction
	once              sync.Once
	initErr           error
)

func init() {
	// --- Set up structured logging ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Register the CloudEvent function. The framework routes GCS
	// object-finalized events on the manifest bucket here.
	functions.CloudEvent("AssembleFromManifest", assembleFromManifest)
}

// main is required by the Go Functions Framework.
func main() {}

// assembleFromManifest is the Cloud Function entry point: a manifest JSON
// object landing in the manifest bucket triggers one packet assembly.
func assembleFromManifest(ctx context.Context, e cloudevents.Event) error {
	once.Do(func() {
		assemblerInstance, initErr = services.NewAssemblerFunction(context.Background())
	})
	if initErr != nil {
		slog.Error("Critical error during function initialization", "error", initErr)
		return initErr
	}

	var gcsEvent models.GCSEvent
	if err := json.Unmarshal(e.Data(), &gcsEvent); err != nil {
		slog.Error("Failed to unmarshal event data", "error", err, "data", string(e.Data()))
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	// The error is already logged with context inside ProcessManifest.
	// Returning it marks the function invocation as failed.
	return assemblerInstance.ProcessManifest(ctx, gcsEvent)
}
