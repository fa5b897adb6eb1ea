package league

import (
	"fmt"
	"strings"

	idgen "github.com/riskibarqy/penca/internal/platform/id"
)

// ID identifies a league.
type ID string

// League is a competition teams belong to. Pools only reference it.
type League struct {
	ID   ID
	Name string
}

func New(gen idgen.Generator, name string) (League, error) {
	value, err := gen.NewID()
	if err != nil {
		return League{}, fmt.Errorf("generate league id: %w", err)
	}

	l := League{
		ID:   ID(value),
		Name: strings.TrimSpace(name),
	}
	if err := l.Validate(); err != nil {
		return League{}, err
	}

	return l, nil
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
