package api

import (
	"net/http"

	resdto "github.com/Fox-16s/reservat-io/internal/handler/dto/response"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BankingHandler struct {
	q queries.BankingQueries
}

func NewBankingHandler(q queries.BankingQueries) *BankingHandler {
	return &BankingHandler{q: q}
}

// @Summary Banking aliases
// @Description Transfer aliases shown on the banking card
// @Tags banking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BankingAliasResponse
// @Router /banking [get]
func (h *BankingHandler) Aliases(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromBankingAliases(h.q.Aliases()))
}
