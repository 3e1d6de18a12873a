package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

type playerPathParams struct {
	PlayerID string `validate:"required,number,max=20"`
}

type setLineRequest struct {
	Value string `json:"value" validate:"max=500"`
}

type setColorRequest struct {
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type setKeyFactsRequest struct {
	Rows []annotation.KeyFact `json:"rows" validate:"max=100,dive"`
}

func (h *Handler) playerID(r *http.Request) (string, error) {
	params := playerPathParams{PlayerID: player.CanonicalID(chi.URLParam(r, "playerID"))}
	if err := h.validateRequest(r.Context(), params); err != nil {
		return "", err
	}
	return params.PlayerID, nil
}

func (h *Handler) GetAnnotations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAnnotations")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(h.annotationService.State(ctx)))
}

func (h *Handler) GetPlayerAnnotation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerAnnotation")
	defer span.End()

	playerID, err := h.playerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, annotationToDTO(h.annotationService.Get(ctx, playerID)))
}

func (h *Handler) PutPlayerAnnotation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutPlayerAnnotation")
	defer span.End()

	playerID, err := h.playerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req annotationDTO
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.annotationService.Put(ctx, playerID, annotationFromDTO(req)); err != nil {
		h.logger.WarnContext(ctx, "put annotation failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, annotationToDTO(h.annotationService.Get(ctx, playerID)))
}

func (h *Handler) SetAnnotationLine(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAnnotationLine")
	defer span.End()

	playerID, err := h.playerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req setLineRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	field := chi.URLParam(r, "field")
	if err := h.annotationService.SetNote(ctx, playerID, field, req.Value); err != nil {
		h.logger.WarnContext(ctx, "set annotation line failed", "player_id", playerID, "field", field, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, annotationToDTO(h.annotationService.Get(ctx, playerID)))
}

func (h *Handler) SetAnnotationColor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAnnotationColor")
	defer span.End()

	playerID, err := h.playerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req setColorRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.annotationService.SetColor(ctx, playerID, req.Color); err != nil {
		h.logger.WarnContext(ctx, "set annotation color failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, annotationToDTO(h.annotationService.Get(ctx, playerID)))
}

func (h *Handler) SetKeyFacts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetKeyFacts")
	defer span.End()

	var req setKeyFactsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	table := chi.URLParam(r, "table")
	if err := h.annotationService.SetKeyFacts(ctx, table, req.Rows); err != nil {
		h.logger.WarnContext(ctx, "set key facts failed", "table", table, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(h.annotationService.State(ctx)).KeyFacts)
}

func (h *Handler) SetMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetMatchup")
	defer span.End()

	var req matchupDTO
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.annotationService.SetMatchup(ctx, annotation.Matchup{Home: req.Home, Guest: req.Guest}); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(h.annotationService.State(ctx)).Matchup)
}

func (h *Handler) ExportAnnotations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportAnnotations")
	defer span.End()

	data, filename, err := h.annotationService.Export(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "export annotations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	attachment(w, filename)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) ImportAnnotations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportAnnotations")
	defer span.End()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read import body: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.annotationService.Import(ctx, data)
	if err != nil {
		if !errors.Is(err, usecase.ErrImportRejected) {
			h.logger.ErrorContext(ctx, "import annotations failed", "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importResultDTO{
		OK:      result.OK,
		Message: result.Message,
		Players: result.Players,
	})
}
