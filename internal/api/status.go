package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse estado do sistema
type StatusResponse struct {
	Success        bool   `json:"success"`
	StorageBackend string `json:"storageBackend"`
	RegistryCount  int    `json:"registryCount"`
	UploadCount    int    `json:"uploadCount"`
}

// GetStatus devolve o estado do sistema, conferindo o armazenamento primário
// antes da leitura
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	h.registry.VerifyAndRecover()

	c.JSON(http.StatusOK, StatusResponse{
		Success:        true,
		StorageBackend: h.registry.Backend(),
		RegistryCount:  h.registry.Count(),
		UploadCount:    h.sessions.UploadCount(),
	})
}
