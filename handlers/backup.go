package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/workflow"
)

// ExportBackup streams the full store snapshot as one JSON document.
func ExportBackup(c *gin.Context) {
	doc, err := workflow.Backup(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="pos-backup.json"`)
	c.JSON(http.StatusOK, doc)
}

// RestoreBackup replaces the entire store with the uploaded snapshot.
func RestoreBackup(c *gin.Context) {
	var doc workflow.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := workflow.Restore(c.Request.Context(), &doc); err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, gin.H{"message": "backup restored"})
}

// RestoreMergeBackup imports only records missing locally.
func RestoreMergeBackup(c *gin.Context) {
	var doc workflow.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := workflow.RestoreMerge(c.Request.Context(), &doc); err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, gin.H{"message": "backup merged"})
}
