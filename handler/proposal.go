package handler

import (
	"net/http"
	"strconv"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/middleware"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/context"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/response"
	"github.com/edaha-kurose/Buyer-matchingSystem/service"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"github.com/gin-gonic/gin"
)

type Proposal struct {
	Config          *config.Config
	AuthService     service.IAuthService
	ProposalService service.IProposalService
}

func (p *Proposal) RegisterRouter(r gin.IRouter) {
	auth := middleware.Auth([]byte(p.Config.Jwt.Secret))
	supplier := middleware.RequireRole(string(models.RoleSupplier))

	proposals := r.Group("/v1/proposals", auth, supplier)
	proposals.POST("", context.Wrap(p.Create))
	proposals.GET("", context.Wrap(p.List))
	proposals.GET("/:id", context.Wrap(p.Detail))
	proposals.POST("/:id/submit", context.Wrap(p.Submit))
	proposals.GET("/:id/progress", context.Wrap(p.Progress))

	r.Group("/v1", auth, supplier).GET("/dashboard", context.Wrap(p.Dashboard))
}

func (p *Proposal) Create(c *gin.Context) error {
	user, err := p.currentUser(c)
	if err != nil {
		return err
	}

	var req types.ProposalCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := p.ProposalService.Create(c.Request.Context(), user, &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (p *Proposal) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.ListProposalsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	items, err := p.ProposalService.ListBySupplier(c.Request.Context(), uid, req.Status, req.Offset, req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (p *Proposal) Detail(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	proposalID, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := p.ProposalService.GetDetail(c.Request.Context(), uid, proposalID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (p *Proposal) Submit(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	proposalID, err := parseID(c)
	if err != nil {
		return err
	}

	result, err := p.ProposalService.Submit(c.Request.Context(), uid, proposalID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (p *Proposal) Progress(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	proposalID, err := parseID(c)
	if err != nil {
		return err
	}

	items, err := p.ProposalService.ListProgress(c.Request.Context(), uid, proposalID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (p *Proposal) Dashboard(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	stats, err := p.ProposalService.Dashboard(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}

func (p *Proposal) currentUser(c *gin.Context) (*models.User, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		return nil, err
	}
	return p.AuthService.FindUser(c.Request.Context(), uid)
}

// parseID パスパラメータ :id の解釈
func parseID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.NewValidation("不正なIDです: " + c.Param("id"))
	}
	return id, nil
}
