package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow/internal/httperr"
)

// writeError maps a workflow error onto the HTTP surface. Business codes
// become 4xx; anything else is a 500 (in practice: a store write failure).
func writeError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	switch code {
	case "":
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
	case "invalid_credentials":
		httperr.Unauthorized(c, code, "Credenciais inválidas. Verifique telefone e senha.")
	case "appointment_not_found", "service_not_found", "day_not_found":
		httperr.NotFound(c, code, "Registro não encontrado.")
	case "slot_taken":
		httperr.Conflict(c, code, "Este horário acabou de ser preenchido.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
}
