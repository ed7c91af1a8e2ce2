package handler

import (
	"net/http"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/middleware"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/context"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/response"
	"github.com/edaha-kurose/Buyer-matchingSystem/service"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"github.com/gin-gonic/gin"
)

type Point struct {
	Config       *config.Config
	PointService service.IPointService
}

func (p *Point) RegisterRouter(r gin.IRouter) {
	points := r.Group("/v1/points", middleware.Auth([]byte(p.Config.Jwt.Secret)))
	points.GET("/balance", context.Wrap(p.Balance))
	points.GET("/transactions", context.Wrap(p.Transactions))
	points.GET("/packages", context.Wrap(p.Packages))
	points.POST("/purchase", context.Wrap(p.Purchase))
}

func (p *Point) Balance(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	balance, err := p.PointService.GetBalance(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, balance)
	return nil
}

func (p *Point) Transactions(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.ListTransactionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	items, err := p.PointService.ListTransactions(c.Request.Context(), uid, req.Offset, req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (p *Point) Packages(c *gin.Context) error {
	items, err := p.PointService.ListPackages(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (p *Point) Purchase(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.PurchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := p.PointService.Purchase(c.Request.Context(), uid, req.PackageID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
