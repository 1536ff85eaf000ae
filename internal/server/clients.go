package server

import (
	"net/http"
	"strings"

	clientdomain "github.com/billfold/billfold/internal/client/domain"
	"github.com/gin-gonic/gin"
)

type createClientRequest struct {
	Logo    string `json:"logo"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
}

type updateClientRequest struct {
	Logo    *string `json:"logo"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Mobile  *string `json:"mobile"`
	Email   *string `json:"email"`
}

func (s *Server) ListClients(c *gin.Context) {
	clients, err := s.clientSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": clients})
}

func (s *Server) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	client, err := s.clientSvc.Create(c.Request.Context(), clientdomain.CreateClientRequest{
		Logo:    req.Logo,
		Name:    strings.TrimSpace(req.Name),
		Address: req.Address,
		Mobile:  strings.TrimSpace(req.Mobile),
		Email:   strings.TrimSpace(req.Email),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": client})
}

func (s *Server) UpdateClient(c *gin.Context) {
	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	err := s.clientSvc.Update(c.Request.Context(), id, clientdomain.UpdateClientRequest{
		Logo:    req.Logo,
		Name:    req.Name,
		Address: req.Address,
		Mobile:  req.Mobile,
		Email:   req.Email,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}

func (s *Server) DeleteClient(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.clientSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}
