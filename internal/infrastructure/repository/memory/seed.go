package memory

import (
	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
)

const (
	LeagueIDChampionsLeague league.ID = "champions-league"
	LeagueIDMundialFemenino league.ID = "mundial-femenino"

	TeamIDRealMadrid team.ID = "real-madrid"
	TeamIDBarcelona  team.ID = "barcelona"
	TeamIDFrancia    team.ID = "francia"
	TeamIDArgentina  team.ID = "argentina"
	TeamIDUruguay    team.ID = "uruguay"
	TeamIDBrasil     team.ID = "brasil"

	PlayerIDValverde player.ID = "federico-valverde"
	PlayerIDMessi    player.ID = "lionel-messi"
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDChampionsLeague, Name: "Champions League"},
		{ID: LeagueIDMundialFemenino, Name: "Mundial femenino"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDRealMadrid, Name: "Real Madrid", LeagueID: LeagueIDChampionsLeague},
		{ID: TeamIDBarcelona, Name: "Barcelona", LeagueID: LeagueIDChampionsLeague},
		{ID: TeamIDFrancia, Name: "Francia", LeagueID: LeagueIDMundialFemenino},
		{ID: TeamIDArgentina, Name: "Argentina", LeagueID: LeagueIDMundialFemenino},
		{ID: TeamIDUruguay, Name: "Uruguay", LeagueID: LeagueIDMundialFemenino},
		{ID: TeamIDBrasil, Name: "Brasil", LeagueID: LeagueIDMundialFemenino},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: PlayerIDValverde, Name: "Federico Valverde", TeamID: TeamIDRealMadrid},
		{ID: "vinicius-junior", Name: "Vinicius Junior", TeamID: TeamIDRealMadrid},
		{ID: PlayerIDMessi, Name: "Lionel Messi", TeamID: TeamIDBarcelona},
		{ID: "pedri", Name: "Pedri", TeamID: TeamIDBarcelona},
		{ID: "wendie-renard", Name: "Wendie Renard", TeamID: TeamIDFrancia},
		{ID: "estefania-banini", Name: "Estefania Banini", TeamID: TeamIDArgentina},
		{ID: "esperanza-pizarro", Name: "Esperanza Pizarro", TeamID: TeamIDUruguay},
		{ID: "marta-vieira", Name: "Marta", TeamID: TeamIDBrasil},
	}
}
