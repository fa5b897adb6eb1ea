package penca

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/participant"
	"github.com/riskibarqy/penca/internal/domain/prediction"
	"github.com/riskibarqy/penca/internal/domain/team"
	idgen "github.com/riskibarqy/penca/internal/platform/id"
)

var (
	ErrMatchNotFound       = errors.New("match not found in penca")
	ErrParticipantNotFound = errors.New("participant not found in penca")
)

// ID identifies a penca.
type ID string

// Format describes how a penca is played. It does not change scoring.
type Format string

const (
	FormatTraditional Format = "TRADITIONAL"
	FormatClubMode    Format = "CLUB_MODE"
	FormatMixMode     Format = "MIX_MODE"
)

var AllFormats = map[Format]struct{}{
	FormatTraditional: {},
	FormatClubMode:    {},
	FormatMixMode:     {},
}

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusClosed     Status = "CLOSED"
	StatusFinished   Status = "FINISHED"
)

var allowedTransitions = map[Status]map[Status]struct{}{
	StatusOpen: {
		StatusInProgress: {},
		StatusClosed:     {},
	},
	StatusInProgress: {
		StatusClosed:   {},
		StatusFinished: {},
	},
	StatusClosed: {
		StatusFinished: {},
	},
	StatusFinished: {},
}

// ValidationError reports a rejected change to a penca.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("penca validation failed: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Penca is a tipping pool. It is not safe for concurrent use.
type Penca struct {
	id           ID
	name         string
	format       Format
	status       Status
	participants []participant.Participant
	wildcards    map[team.ID]struct{}
	matches      []match.Match
	predictions  []prediction.Prediction
}

func New(gen idgen.Generator, name string, format Format) (*Penca, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	if _, ok := AllFormats[format]; !ok {
		return nil, invalid("format", "unknown format %q", format)
	}

	value, err := gen.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate penca id: %w", err)
	}

	return &Penca{
		id:        ID(value),
		name:      name,
		format:    format,
		status:    StatusOpen,
		wildcards: make(map[team.ID]struct{}),
	}, nil
}

func (p *Penca) ID() ID         { return p.id }
func (p *Penca) Name() string   { return p.name }
func (p *Penca) Format() Format { return p.format }
func (p *Penca) Status() Status { return p.status }

// AddParticipant appends a participant. Duplicates are not detected.
func (p *Penca) AddParticipant(item participant.Participant) error {
	if err := item.Validate(); err != nil {
		return invalid("participant", "%v", err)
	}
	for _, teamID := range item.TeamIDs {
		if p.IsWildcard(teamID) {
			return invalid("participant", "team %s is a wildcard", teamID)
		}
	}

	p.participants = append(p.participants, item)
	return nil
}

func (p *Penca) AddMatch(item match.Match) {
	p.matches = append(p.matches, item)
}

// SetWildcards replaces the wildcard set.
func (p *Penca) SetWildcards(teamIDs []team.ID) error {
	next := make(map[team.ID]struct{}, len(teamIDs))
	for _, teamID := range teamIDs {
		if err := p.checkWildcard(teamID); err != nil {
			return err
		}
		next[teamID] = struct{}{}
	}

	p.wildcards = next
	return nil
}

func (p *Penca) AddWildcard(teamID team.ID) error {
	if err := p.checkWildcard(teamID); err != nil {
		return err
	}

	p.wildcards[teamID] = struct{}{}
	return nil
}

func (p *Penca) checkWildcard(teamID team.ID) error {
	if teamID == "" {
		return invalid("wildcards", "team id is required")
	}
	for _, item := range p.participants {
		if item.OwnsTeam(teamID) {
			return invalid("wildcards", "team %s is owned by participant %s", teamID, item.ID)
		}
	}
	return nil
}

func (p *Penca) IsWildcard(teamID team.ID) bool {
	_, ok := p.wildcards[teamID]
	return ok
}

func (p *Penca) SetFormat(format Format) error {
	if _, ok := AllFormats[format]; !ok {
		return invalid("format", "unknown format %q", format)
	}

	p.format = format
	return nil
}

// SetStatus moves the penca through its lifecycle. Setting the current status is a no-op.
func (p *Penca) SetStatus(status Status) error {
	if _, ok := allowedTransitions[status]; !ok {
		return invalid("status", "unknown status %q", status)
	}
	if status == p.status {
		return nil
	}
	if _, ok := allowedTransitions[p.status][status]; !ok {
		return invalid("status", "cannot move from %s to %s", p.status, status)
	}

	p.status = status
	return nil
}

// RecordResult records the final score on the penca's copy of a match.
func (p *Penca) RecordResult(matchID match.ID, homeGoals, awayGoals int) (match.Match, error) {
	idx := p.matchIndex(matchID)
	if idx < 0 {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrMatchNotFound, matchID)
	}
	if err := p.matches[idx].RecordResult(homeGoals, awayGoals); err != nil {
		return match.Match{}, err
	}

	return p.matches[idx], nil
}

// AddPrediction stores a prediction for an unplayed predicted match.
func (p *Penca) AddPrediction(item prediction.Prediction) error {
	if err := item.Validate(); err != nil {
		return invalid("prediction", "%v", err)
	}
	if p.participantIndex(item.ParticipantID) < 0 {
		return fmt.Errorf("%w: participant=%s", ErrParticipantNotFound, item.ParticipantID)
	}
	idx := p.matchIndex(item.MatchID)
	if idx < 0 {
		return fmt.Errorf("%w: match=%s", ErrMatchNotFound, item.MatchID)
	}
	target := p.matches[idx]
	if target.Kind() != match.KindPredicted {
		return invalid("prediction", "match %s is not a predicted match", target.ID)
	}
	if target.Played {
		return fmt.Errorf("%w: match=%s", match.ErrAlreadyPlayed, target.ID)
	}

	p.predictions = append(p.predictions, item)
	return nil
}

func (p *Penca) Participants() []participant.Participant {
	return append([]participant.Participant(nil), p.participants...)
}

func (p *Penca) Matches() []match.Match {
	return append([]match.Match(nil), p.matches...)
}

func (p *Penca) Predictions() []prediction.Prediction {
	return append([]prediction.Prediction(nil), p.predictions...)
}

// Wildcards returns the wildcard teams sorted by id.
func (p *Penca) Wildcards() []team.ID {
	out := make([]team.ID, 0, len(p.wildcards))
	for teamID := range p.wildcards {
		out = append(out, teamID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (p *Penca) Participant(participantID participant.ID) (participant.Participant, bool) {
	idx := p.participantIndex(participantID)
	if idx < 0 {
		return participant.Participant{}, false
	}
	return p.participants[idx], true
}

func (p *Penca) Match(matchID match.ID) (match.Match, bool) {
	idx := p.matchIndex(matchID)
	if idx < 0 {
		return match.Match{}, false
	}
	return p.matches[idx], true
}

// Standings orders participants by total score, then name, then join order.
func (p *Penca) Standings() []participant.Participant {
	out := p.Participants()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalScore != out[j].TotalScore {
			return out[i].TotalScore > out[j].TotalScore
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (p *Penca) participantIndex(participantID participant.ID) int {
	for i := range p.participants {
		if p.participants[i].ID == participantID {
			return i
		}
	}
	return -1
}

func (p *Penca) matchIndex(matchID match.ID) int {
	for i := range p.matches {
		if p.matches[i].ID == matchID {
			return i
		}
	}
	return -1
}
