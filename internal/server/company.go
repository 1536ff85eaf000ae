package server

import (
	"net/http"

	companydomain "github.com/billfold/billfold/internal/company/domain"
	"github.com/gin-gonic/gin"
)

type updateCompanyRequest struct {
	Name    *string `json:"name"`
	Logo    *string `json:"logo"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

func (s *Server) GetCompany(c *gin.Context) {
	company, err := s.companySvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": company})
}

func (s *Server) UpdateCompany(c *gin.Context) {
	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	company, err := s.companySvc.Update(c.Request.Context(), companydomain.UpdateCompanyRequest{
		Name:    req.Name,
		Logo:    req.Logo,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": company})
}

func (s *Server) ClearCompany(c *gin.Context) {
	if err := s.companySvc.Clear(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": companydomain.Company{}})
}
