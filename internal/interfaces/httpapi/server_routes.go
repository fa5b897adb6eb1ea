package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListPlayersByTeam)
}

func registerPencaRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/pencas", handler.CreatePenca)
	mux.HandleFunc("GET /v1/pencas", handler.ListPencas)
	mux.HandleFunc("GET /v1/pencas/{pencaID}", handler.GetPenca)
	mux.HandleFunc("PUT /v1/pencas/{pencaID}/format", handler.SetPencaFormat)
	mux.HandleFunc("PUT /v1/pencas/{pencaID}/status", handler.SetPencaStatus)
	mux.HandleFunc("PUT /v1/pencas/{pencaID}/wildcards", handler.SetPencaWildcards)
	mux.HandleFunc("POST /v1/pencas/{pencaID}/participants", handler.AddParticipant)
	mux.HandleFunc("POST /v1/pencas/{pencaID}/matches", handler.ScheduleMatch)
	mux.HandleFunc("PUT /v1/pencas/{pencaID}/matches/{matchID}/result", handler.RecordMatchResult)
	mux.HandleFunc("POST /v1/pencas/{pencaID}/predictions", handler.SubmitPrediction)
	mux.HandleFunc("POST /v1/pencas/{pencaID}/aggregate", handler.AggregatePenca)
	mux.HandleFunc("GET /v1/pencas/{pencaID}/standings", handler.ListStandings)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/aggregate", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunAggregateJob)))
}
