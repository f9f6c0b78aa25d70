// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/internal/types"
	"github.com/canonical/team-member-service/pkg/authentication"
)

const (
	maxBodyBytes = 1 << 20

	allowedHeaders = "authorization, x-client-info, apikey, content-type"

	msgConfiguration = "Server configuration error"
	msgUnauthorized  = "Unauthorized"
	msgForbidden     = "Access denied. Only admins can create team members."
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreatedResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.HandleFunc("/create-team-member", a.CreateTeamMember)
	mux.HandleFunc("/functions/v1/create-team-member", a.CreateTeamMember)
}

// CreateTeamMember answers every method, OPTIONS is the browser preflight
func (a *API) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.CreateTeamMember")
	defer span.End()

	a.setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	a.logger.Info("starting team member creation")

	if err := a.service.CheckConfiguration(ctx); err != nil {
		a.writeError(w, http.StatusInternalServerError, msgConfiguration)
		return
	}

	credential, _ := authentication.BearerToken(r.Header)

	callerID, err := a.service.AuthorizeCaller(ctx, credential)
	switch {
	case errors.Is(err, ErrUnauthorized):
		a.writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	case errors.Is(err, ErrForbidden):
		a.writeError(w, http.StatusForbidden, msgForbidden)
		return
	case err != nil:
		a.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx = authentication.WithUserID(ctx, callerID)

	member := new(types.NewMember)
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(member); err != nil {
		a.logger.Errorf("error in create-team-member: %v", err)
		a.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	outcome, err := a.service.CreateTeamMember(ctx, callerID, member)
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			a.writeError(w, http.StatusBadRequest, rejected.Message)
			return
		}

		a.logger.Errorf("error in create-team-member: %v", err)
		a.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.writeJSON(
		w,
		http.StatusOK,
		CreatedResponse{
			Success: true,
			UserID:  outcome.User.ID,
			Message: fmt.Sprintf("Membro %s criado com sucesso. Login: %s, Senha: %s", member.Nome, member.Email, member.Password),
		},
	)
}

func (a *API) setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, ErrorResponse{Error: message})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
