package handler

import (
	"net/http"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/middleware"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/context"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/response"
	"github.com/edaha-kurose/Buyer-matchingSystem/service"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"github.com/gin-gonic/gin"
)

// Buyer バイヤー向けAPI。提案の閲覧・評価の参照・採用判断を提供する。
type Buyer struct {
	Config            *config.Config
	EvaluationService service.IEvaluationService
}

func (b *Buyer) RegisterRouter(r gin.IRouter) {
	buyer := r.Group("/v1/buyer",
		middleware.Auth([]byte(b.Config.Jwt.Secret)),
		middleware.RequireRole(string(models.RoleBuyer)),
	)
	buyer.GET("/proposals", context.Wrap(b.ListProposals))
	buyer.GET("/evaluations", context.Wrap(b.ListEvaluations))
	buyer.GET("/proposals/:id/evaluation", context.Wrap(b.Evaluation))
	buyer.GET("/proposals/:id/fact-check", context.Wrap(b.FactCheck))
	buyer.POST("/proposals/:id/decision", context.Wrap(b.Decide))
}

func (b *Buyer) ListProposals(c *gin.Context) error {
	var req types.ListProposalsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	resp, err := b.EvaluationService.ListProposals(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (b *Buyer) ListEvaluations(c *gin.Context) error {
	var req types.ListEvaluationsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	resp, err := b.EvaluationService.ListEvaluations(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (b *Buyer) Evaluation(c *gin.Context) error {
	proposalID, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := b.EvaluationService.GetEvaluation(c.Request.Context(), proposalID)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (b *Buyer) FactCheck(c *gin.Context) error {
	proposalID, err := parseID(c)
	if err != nil {
		return err
	}

	result, err := b.EvaluationService.GetFactCheck(c.Request.Context(), proposalID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (b *Buyer) Decide(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	proposalID, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.DecisionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := b.EvaluationService.Decide(c.Request.Context(), uid, proposalID, &req)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
