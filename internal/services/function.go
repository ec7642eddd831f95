package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"

	"github.com/pacificaeng/submittalflow/internal/fetch"
	"github.com/pacificaeng/submittalflow/internal/gcp"
	"github.com/pacificaeng/submittalflow/internal/models"
	"github.com/pacificaeng/submittalflow/internal/render"
)

// AssemblerConfig holds configuration for the hosted assembler service.
type AssemblerConfig struct {
	ProjectID      string
	ContentOrigin  string
	CollectionName string
	ArchiveBucket  string
	OutputBucket   string
}

// AssemblerFunction wraps the Assembler with its cloud dependencies: the GCS
// client used for gs:// fetches, packet archiving, and manifest processing,
// and an optional Firestore client recording job lifecycle.
type AssemblerFunction struct {
	assembler       *Assembler
	storageClient   *storage.Client
	firestoreClient *firestore.Client
	config          AssemblerConfig
}

// NewAssemblerFunction builds the hosted service from environment
// configuration. CONTENT_ORIGIN is required; PROJECT_ID enables job records,
// PACKET_ARCHIVE_BUCKET enables archiving, PACKET_OUTPUT_BUCKET is required
// only by the manifest watcher.
func NewAssemblerFunction(ctx context.Context) (*AssemblerFunction, error) {
	contentOrigin := gcp.GetEnv("CONTENT_ORIGIN", "")
	if contentOrigin == "" {
		return nil, fmt.Errorf("CONTENT_ORIGIN environment variable must be set")
	}

	config := AssemblerConfig{
		ProjectID:      gcp.GetEnv("PROJECT_ID", ""),
		ContentOrigin:  contentOrigin,
		CollectionName: gcp.GetEnv("FIRESTORE_COLLECTION", "packetJobs"),
		ArchiveBucket:  gcp.GetEnv("PACKET_ARCHIVE_BUCKET", ""),
		OutputBucket:   gcp.GetEnv("PACKET_OUTPUT_BUCKET", ""),
	}

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}

	var firestoreClient *firestore.Client
	if config.ProjectID != "" {
		firestoreClient, err = gcp.NewFirestoreClient(ctx, config.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to create firestore client: %w", err)
		}
	}

	fetcher := fetch.New(fetch.Config{ContentOrigin: config.ContentOrigin}, nil, storageClient)
	renderer := render.New(BrandFromEnv())

	f := &AssemblerFunction{
		assembler:       NewAssembler(fetcher, renderer),
		storageClient:   storageClient,
		firestoreClient: firestoreClient,
		config:          config,
	}
	slog.Info("Packet assembler initialized.", "contentOrigin", config.ContentOrigin, "jobTracking", firestoreClient != nil)
	return f, nil
}

// BrandFromEnv loads the cover-sheet brand constants, with the company
// defaults baked in. Shared with the CLI entry point.
func BrandFromEnv() render.Brand {
	return render.Brand{
		Header:       gcp.GetEnv("BRAND_HEADER", "Pacifica Engineering Services"),
		SectionBadge: gcp.GetEnv("BRAND_BADGE", "SUBMITTAL"),
		OrgName:      gcp.GetEnv("ORG_NAME", "Pacifica Engineering Services, Inc."),
		OrgAddress:   gcp.GetEnv("ORG_ADDRESS", "2150 Harbor Blvd, Suite 400, Costa Mesa, CA 92626"),
		OrgPhone:     gcp.GetEnv("ORG_PHONE", "(714) 555-0160"),
		SupportEmail: gcp.GetEnv("SUPPORT_EMAIL", "support@pacificaeng.com"),
		Version:      gcp.GetEnv("PACKET_VERSION", "submittalflow v1.2"),
	}
}

// Process runs one assembly request end to end: job record, pipeline,
// optional archive, job completion. It is the entry for the HTTP function.
func (f *AssemblerFunction) Process(ctx context.Context, req *models.AssemblePacketRequest) (*models.PacketResult, error) {
	logCtx := slog.With("projectName", req.Project.ProjectName)

	jobRef := f.createJobRecord(ctx, logCtx, req)

	result, err := f.assembler.Assemble(ctx, req)
	if err != nil {
		return nil, f.handleError(ctx, logCtx, jobRef, "packet assembly failed", err)
	}

	if f.config.ArchiveBucket != "" {
		objectName := fmt.Sprintf("%s/%s.pdf", time.Now().UTC().Format("2006-01-02"), result.Filename)
		bucket := f.storageClient.Bucket(f.config.ArchiveBucket)
		if err := gcp.SavePacketAtomically(ctx, bucket, objectName, result.PDF); err != nil {
			// The caller still gets their packet; archiving is best-effort.
			logCtx.Error("Failed to archive packet.", "gcsObject", objectName, "error", err)
		}
	}

	f.completeJob(ctx, logCtx, jobRef, result)
	return result, nil
}

// ProcessManifest handles one manifest object landing in the manifest
// bucket: download, decode, assemble, write the packet to the output bucket.
// It is the entry for the CloudEvent function.
func (f *AssemblerFunction) ProcessManifest(ctx context.Context, e models.GCSEvent) error {
	logCtx := slog.With("gcsBucket", e.Bucket, "gcsObject", e.Name)
	logCtx.Info("Processing manifest object.")

	if f.config.OutputBucket == "" {
		return fmt.Errorf("PACKET_OUTPUT_BUCKET environment variable must be set")
	}

	reader, err := f.storageClient.Bucket(e.Bucket).Object(e.Name).NewReader(ctx)
	if err != nil {
		logCtx.Error("Failed to open manifest object.", "error", err)
		return fmt.Errorf("failed to open manifest gs://%s/%s: %w", e.Bucket, e.Name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		logCtx.Error("Failed to read manifest object.", "error", err)
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	var req models.AssemblePacketRequest
	if err := json.Unmarshal(data, &req); err != nil {
		logCtx.Error("Manifest is not a valid assembly request.", "error", err)
		return fmt.Errorf("failed to decode manifest: %w", err)
	}

	result, err := f.Process(ctx, &req)
	if err != nil {
		return err
	}

	objectName := result.Filename + ".pdf"
	bucket := f.storageClient.Bucket(f.config.OutputBucket)
	if err := gcp.SavePacketAtomically(ctx, bucket, objectName, result.PDF); err != nil {
		logCtx.Error("Failed to write packet to output bucket.", "gcsObject", objectName, "error", err)
		return err
	}

	logCtx.Info("Packet written to output bucket.", "gcsObject", objectName, "pageCount", result.PageCount)
	return nil
}

// createJobRecord opens the Firestore record for this run. Job tracking is
// optional; with no Firestore client it returns nil and the lifecycle calls
// become no-ops.
func (f *AssemblerFunction) createJobRecord(ctx context.Context, logCtx *slog.Logger, req *models.AssemblePacketRequest) *firestore.DocumentRef {
	if f.firestoreClient == nil {
		return nil
	}
	job := models.PacketJob{
		ProjectName:   req.Project.ProjectName,
		Filename:      models.PacketFilename(req.Project.ProjectName),
		Status:        models.JobStatusAssembling,
		DocumentCount: len(req.Documents),
		CreatedAt:     time.Now(),
	}
	docRef, _, err := f.firestoreClient.Collection(f.config.CollectionName).Add(ctx, job)
	if err != nil {
		logCtx.Error("Failed to create job record.", "error", err)
		return nil
	}
	return docRef
}

func (f *AssemblerFunction) completeJob(ctx context.Context, logCtx *slog.Logger, jobRef *firestore.DocumentRef, result *models.PacketResult) {
	if jobRef == nil {
		return
	}
	updates := []firestore.Update{
		{Path: "status", Value: models.JobStatusComplete},
		{Path: "pageCount", Value: result.PageCount},
	}
	if _, err := jobRef.Update(ctx, updates); err != nil {
		logCtx.Error("Failed to update job record to COMPLETE.", "error", err)
	}
}

func (f *AssemblerFunction) handleError(ctx context.Context, logCtx *slog.Logger, jobRef *firestore.DocumentRef, message string, originalErr error) error {
	fullError := fmt.Sprintf("%s: %v", message, originalErr)
	logCtx.Error(message, "error", originalErr)
	if jobRef != nil {
		updates := []firestore.Update{
			{Path: "status", Value: models.JobStatusFailed},
			{Path: "errorDetails", Value: fullError},
		}
		if _, err := jobRef.Update(ctx, updates); err != nil {
			logCtx.Error("CRITICAL: Failed to update job record to FAILED after a processing error.", "updateError", err)
		}
	}
	return fmt.Errorf("%s", fullError)
}
