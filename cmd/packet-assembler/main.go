package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

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

	functions.HTTP("AssemblePacket", handleAssemblePacket)
}

// main is required by the Go Functions Framework.
func main() {}

// handleAssemblePacket is the HTTP handler for the packet-assembly service.
// Success streams the finished packet; the only failure surface is a
// structured JSON error for the whole run.
func handleAssemblePacket(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		assemblerInstance, initErr = services.NewAssemblerFunction(context.Background())
	})
	if initErr != nil {
		slog.Error("Critical: Assembler initialization failed", "error", initErr)
		writeError(w, http.StatusInternalServerError, "failed to initialize service")
		return
	}

	var req models.AssemblePacketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Could not decode request body", "error", err)
		writeError(w, http.StatusBadRequest, "could not parse JSON request")
		return
	}

	result, err := assemblerInstance.Process(r.Context(), &req)
	if err != nil {
		// Error is already logged with context in the Process method.
		writeError(w, http.StatusInternalServerError, "packet assembly failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`.pdf"`)
	if _, err := w.Write(result.PDF); err != nil {
		slog.Error("Failed to write packet response", "error", err, "filename", result.Filename)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
