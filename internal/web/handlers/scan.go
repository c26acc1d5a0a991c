package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/kozaktomas/skin-advisor/internal/constants"
	"github.com/kozaktomas/skin-advisor/internal/scan"
)

// ScanHandler accepts a face photo upload and returns detected issues plus
// the follow-up questionnaire. Nothing about the upload is persisted.
type ScanHandler struct {
	scanner *scan.Scanner
}

func NewScanHandler(scanner *scan.Scanner) *ScanHandler {
	return &ScanHandler{scanner: scanner}
}

// Scan handles POST /scan with a multipart "file" field.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(constants.MaxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	// The scan id only ties log lines of one request together; it is not
	// returned to the client and nothing is stored under it.
	scanID := uuid.NewString()
	log.Printf("scan %s: received %s (%d bytes)", scanID, header.Filename, len(imageData))

	result, err := h.scanner.Scan(r.Context(), imageData)
	if err != nil {
		if errors.Is(err, scan.ErrInvalidImage) {
			log.Printf("scan %s: rejected upload: %v", scanID, err)
			respondError(w, http.StatusBadRequest, "uploaded file is not a valid image")
			return
		}
		log.Printf("scan %s: analysis failed: %v", scanID, err)
		respondError(w, http.StatusBadGateway, "face analysis failed")
		return
	}

	log.Printf("scan %s: detected issues %v", scanID, result.Issues)
	respondJSON(w, http.StatusOK, result)
}
