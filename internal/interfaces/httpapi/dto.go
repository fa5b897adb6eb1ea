package httpapi

import (
	"time"

	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/participant"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/prediction"
	"github.com/riskibarqy/penca/internal/domain/team"
	"github.com/riskibarqy/penca/internal/usecase"
)

type createPencaRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Format string `json:"format" validate:"omitempty,max=20"`
}

type setFormatRequest struct {
	Format string `json:"format" validate:"required"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type setWildcardsRequest struct {
	TeamIDs []string `json:"teamIds" validate:"dive,required"`
}

type addParticipantRequest struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Country        string   `json:"country" validate:"omitempty,max=60"`
	TeamIDs        []string `json:"teamIds" validate:"required,len=2,dive,required"`
	FriendPlayerID string   `json:"friendPlayerId" validate:"required"`
	Division       string   `json:"division" validate:"required"`
}

type scheduleMatchRequest struct {
	HomeTeamID       string `json:"homeTeamId" validate:"required"`
	AwayTeamID       string `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
	Date             string `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IsFriendly       bool   `json:"isFriendly"`
	Kind             string `json:"kind" validate:"required"`
	Level            string `json:"level"`
	SelectedPlayerID string `json:"selectedPlayerId"`
}

type recordResultRequest struct {
	HomeGoals *int `json:"homeGoals" validate:"required,min=0"`
	AwayGoals *int `json:"awayGoals" validate:"required,min=0"`
}

type submitPredictionRequest struct {
	ParticipantID      string `json:"participantId" validate:"required"`
	MatchID            string `json:"matchId" validate:"required"`
	ExpectedResult     string `json:"expectedResult" validate:"required"`
	PredictedHomeGoals int    `json:"predictedHomeGoals" validate:"min=0"`
	PredictedAwayGoals int    `json:"predictedAwayGoals" validate:"min=0"`
}

type leagueDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type teamDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LeagueID string `json:"leagueId"`
}

type playerStatsDTO struct {
	Goals       int `json:"goals"`
	OwnGoals    int `json:"ownGoals"`
	Assists     int `json:"assists"`
	YellowCards int `json:"yellowCards"`
	RedCards    int `json:"redCards"`
}

type playerDTO struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	TeamID string         `json:"teamId"`
	Stats  playerStatsDTO `json:"stats"`
}

type participantDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Country        string   `json:"country"`
	TeamIDs        []string `json:"teamIds"`
	FriendPlayerID string   `json:"friendPlayerId"`
	Division       string   `json:"division"`
	TotalScore     int      `json:"totalScore"`
	MatchesPlayed  int      `json:"matchesPlayed"`
}

type matchDTO struct {
	ID               string `json:"id"`
	HomeTeamID       string `json:"homeTeamId"`
	AwayTeamID       string `json:"awayTeamId"`
	HomeGoals        int    `json:"homeGoals"`
	AwayGoals        int    `json:"awayGoals"`
	Date             string `json:"date,omitempty"`
	IsFriendly       bool   `json:"isFriendly"`
	Kind             string `json:"kind"`
	Level            string `json:"level,omitempty"`
	SelectedPlayerID string `json:"selectedPlayerId,omitempty"`
	Played           bool   `json:"played"`
}

type predictionDTO struct {
	ParticipantID      string `json:"participantId"`
	MatchID            string `json:"matchId"`
	ExpectedResult     string `json:"expectedResult"`
	PredictedHomeGoals int    `json:"predictedHomeGoals"`
	PredictedAwayGoals int    `json:"predictedAwayGoals"`
}

type pencaDTO struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Format           string           `json:"format"`
	Status           string           `json:"status"`
	Participants     []participantDTO `json:"participants"`
	Wildcards        []string         `json:"wildcards"`
	Matches          []matchDTO       `json:"matches"`
	Predictions      []predictionDTO  `json:"predictions"`
	LastAggregatedAt string           `json:"lastAggregatedAt,omitempty"`
}

type pencaSummaryDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Format       string `json:"format"`
	Status       string `json:"status"`
	Participants int    `json:"participants"`
	Matches      int    `json:"matches"`
}

type standingDTO struct {
	Rank          int    `json:"rank"`
	ParticipantID string `json:"participantId"`
	Name          string `json:"name"`
	Division      string `json:"division"`
	TotalScore    int    `json:"totalScore"`
}

type aggregateTaskDTO struct {
	PencaID      string `json:"pencaId"`
	Participants int    `json:"participants"`
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	DurationMs   int64  `json:"durationMs"`
}

type aggregateAllDTO struct {
	Pools        []aggregateTaskDTO `json:"pools"`
	SuccessCount int                `json:"successCount"`
	SkippedCount int                `json:"skippedCount"`
}

func mapSlice[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{ID: string(v.ID), Name: v.Name}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{ID: string(v.ID), Name: v.Name, LeagueID: string(v.LeagueID)}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:     string(v.ID),
		Name:   v.Name,
		TeamID: string(v.TeamID),
		Stats: playerStatsDTO{
			Goals:       v.Stats.Goals,
			OwnGoals:    v.Stats.OwnGoals,
			Assists:     v.Stats.Assists,
			YellowCards: v.Stats.YellowCards,
			RedCards:    v.Stats.RedCards,
		},
	}
}

func participantToDTO(v participant.Participant) participantDTO {
	return participantDTO{
		ID:             string(v.ID),
		Name:           v.Name,
		Country:        v.Country,
		TeamIDs:        []string{string(v.TeamIDs[0]), string(v.TeamIDs[1])},
		FriendPlayerID: string(v.FriendPlayerID),
		Division:       string(v.Division),
		TotalScore:     v.TotalScore,
		MatchesPlayed:  v.MatchesPlayed,
	}
}

func matchToDTO(v match.Match) matchDTO {
	out := matchDTO{
		ID:         string(v.ID),
		HomeTeamID: string(v.HomeTeamID),
		AwayTeamID: string(v.AwayTeamID),
		HomeGoals:  v.HomeGoals,
		AwayGoals:  v.AwayGoals,
		IsFriendly: v.IsFriendly,
		Kind:       string(v.Kind()),
		Played:     v.Played,
	}
	if !v.Date.IsZero() {
		out.Date = v.Date.UTC().Format(time.RFC3339)
	}
	if predicted, ok := v.Type.(match.Predicted); ok {
		out.Level = string(predicted.Level)
		out.SelectedPlayerID = string(predicted.SelectedPlayerID)
	}
	return out
}

func predictionToDTO(v prediction.Prediction) predictionDTO {
	return predictionDTO{
		ParticipantID:      string(v.ParticipantID),
		MatchID:            string(v.MatchID),
		ExpectedResult:     string(v.ExpectedResult),
		PredictedHomeGoals: v.PredictedHomeGoals,
		PredictedAwayGoals: v.PredictedAwayGoals,
	}
}

func pencaToDTO(v usecase.PencaView) pencaDTO {
	out := pencaDTO{
		ID:           string(v.ID),
		Name:         v.Name,
		Format:       string(v.Format),
		Status:       string(v.Status),
		Participants: mapSlice(v.Participants, participantToDTO),
		Wildcards:    mapSlice(v.Wildcards, func(id team.ID) string { return string(id) }),
		Matches:      mapSlice(v.Matches, matchToDTO),
		Predictions:  mapSlice(v.Predictions, predictionToDTO),
	}
	if v.LastAggregatedAt != nil {
		out.LastAggregatedAt = v.LastAggregatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func pencaToSummaryDTO(v usecase.PencaView) pencaSummaryDTO {
	return pencaSummaryDTO{
		ID:           string(v.ID),
		Name:         v.Name,
		Format:       string(v.Format),
		Status:       string(v.Status),
		Participants: len(v.Participants),
		Matches:      len(v.Matches),
	}
}

func standingsToDTO(items []participant.Participant) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for i, item := range items {
		out = append(out, standingDTO{
			Rank:          i + 1,
			ParticipantID: string(item.ID),
			Name:          item.Name,
			Division:      string(item.Division),
			TotalScore:    item.TotalScore,
		})
	}
	return out
}

func aggregateTaskToDTO(item usecase.AggregateTaskResult) aggregateTaskDTO {
	return aggregateTaskDTO{
		PencaID:      string(item.PencaID),
		Participants: item.Participants,
		Status:       item.Status,
		Message:      item.Message,
		DurationMs:   item.DurationMs,
	}
}

func aggregateAllToDTO(v usecase.AggregateAllResult) aggregateAllDTO {
	return aggregateAllDTO{
		Pools:        mapSlice(v.Pools, aggregateTaskToDTO),
		SuccessCount: v.SuccessCount,
		SkippedCount: v.SkippedCount,
	}
}
