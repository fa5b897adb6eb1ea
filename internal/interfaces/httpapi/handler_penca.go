package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/participant"
	"github.com/riskibarqy/penca/internal/domain/penca"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
	"github.com/riskibarqy/penca/internal/usecase"
)

func (h *Handler) CreatePenca(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePenca")
	defer span.End()

	var req createPencaRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.pencaService.CreatePenca(ctx, usecase.CreatePencaInput{
		Name:   req.Name,
		Format: penca.Format(req.Format),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create penca failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, pencaToDTO(view))
}

func (h *Handler) ListPencas(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPencas")
	defer span.End()

	views, err := h.pencaService.ListPencas(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list pencas failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(views, pencaToSummaryDTO))
}

func (h *Handler) GetPenca(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.GetPenca")
	defer span.End()

	pencaID := penca.ID(r.PathValue("pencaID"))
	view, err := h.pencaService.GetPenca(ctx, pencaID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pencaToDTO(view))
}

func (h *Handler) SetPencaFormat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.SetPencaFormat")
	defer span.End()

	var req setFormatRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pencaID := penca.ID(r.PathValue("pencaID"))
	view, err := h.pencaService.SetFormat(ctx, pencaID, penca.Format(req.Format))
	if err != nil {
		h.logger.WarnContext(ctx, "set penca format failed", "penca_id", string(pencaID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pencaToDTO(view))
}

func (h *Handler) SetPencaStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.SetPencaStatus")
	defer span.End()

	var req setStatusRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pencaID := penca.ID(r.PathValue("pencaID"))
	view, err := h.pencaService.SetStatus(ctx, pencaID, penca.Status(req.Status))
	if err != nil {
		h.logger.WarnContext(ctx, "set penca status failed", "penca_id", string(pencaID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pencaToDTO(view))
}

func (h *Handler) SetPencaWildcards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.SetPencaWildcards")
	defer span.End()

	var req setWildcardsRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teamIDs := make([]team.ID, 0, len(req.TeamIDs))
	for _, teamID := range req.TeamIDs {
		teamIDs = append(teamIDs, team.ID(teamID))
	}

	pencaID := penca.ID(r.PathValue("pencaID"))
	view, err := h.pencaService.SetWildcards(ctx, pencaID, teamIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "set penca wildcards failed", "penca_id", string(pencaID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pencaToDTO(view))
}

func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.AddParticipant")
	defer span.End()

	var req addParticipantRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pencaID := penca.ID(r.PathValue("pencaID"))
	item, err := h.pencaService.AddParticipant(ctx, usecase.AddParticipantInput{
		PencaID:        pencaID,
		Name:           req.Name,
		Country:        participantCountry(req.Country, r),
		TeamIDs:        [2]team.ID{team.ID(req.TeamIDs[0]), team.ID(req.TeamIDs[1])},
		FriendPlayerID: player.ID(req.FriendPlayerID),
		Division:       participant.Division(req.Division),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add participant failed", "penca_id", string(pencaID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, participantToDTO(item))
}

func (h *Handler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.ScheduleMatch")
	defer span.End()

	var req scheduleMatchRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var date time.Time
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: date must be RFC3339: %v", usecase.ErrInvalidInput, err))
			return
		}
		date = parsed.UTC()
	}

	pencaID := penca.ID(r.PathValue("pencaID"))
	item, err := h.pencaService.ScheduleMatch(ctx, usecase.ScheduleMatchInput{
		PencaID:          pencaID,
		HomeTeamID:       team.ID(req.HomeTeamID),
		AwayTeamID:       team.ID(req.AwayTeamID),
		Date:             date,
		IsFriendly:       req.IsFriendly,
		Kind:             match.Kind(req.Kind),
		Level:            match.Difficulty(req.Level),
		SelectedPlayerID: player.ID(req.SelectedPlayerID),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule match failed", "penca_id", string(pencaID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.RecordMatchResult")
	defer span.End()

	var req recordResultRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pencaID := penca.ID(r.PathValue("pencaID"))
	matchID := match.ID(r.PathValue("matchID"))
	item, err := h.pencaService.RecordResult(ctx, usecase.RecordResultInput{
		PencaID:   pencaID,
		MatchID:   matchID,
		HomeGoals: *req.HomeGoals,
		AwayGoals: *req.AwayGoals,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "penca_id", string(pencaID), "match_id", string(matchID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.SubmitPrediction")
	defer span.End()

	var req submitPredictionRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pencaID := penca.ID(r.PathValue("pencaID"))
	item, err := h.pencaService.SubmitPrediction(ctx, usecase.SubmitPredictionInput{
		PencaID:            pencaID,
		ParticipantID:      participant.ID(req.ParticipantID),
		MatchID:            match.ID(req.MatchID),
		ExpectedResult:     match.Result(req.ExpectedResult),
		PredictedHomeGoals: req.PredictedHomeGoals,
		PredictedAwayGoals: req.PredictedAwayGoals,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit prediction failed", "penca_id", string(pencaID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, predictionToDTO(item))
}

func (h *Handler) AggregatePenca(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.AggregatePenca")
	defer span.End()

	pencaID := penca.ID(r.PathValue("pencaID"))
	standings, err := h.pencaService.Aggregate(ctx, pencaID)
	if err != nil {
		h.logger.WarnContext(ctx, "aggregate penca failed", "penca_id", string(pencaID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(standings))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startPencaSpan(r, "httpapi.Handler.ListStandings")
	defer span.End()

	pencaID := penca.ID(r.PathValue("pencaID"))
	standings, err := h.pencaService.Standings(ctx, pencaID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(standings))
}
