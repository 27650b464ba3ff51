package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/models"
)

func GetExchangeRates(c *gin.Context) {
	rates, err := models.GetExchangeRates(config.GetDB().WithContext(c.Request.Context()))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	respondOK(c, rates)
}

func SetExchangeRates(c *gin.Context) {
	var rates models.ExchangeRates
	if err := c.ShouldBindJSON(&rates); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := models.SetExchangeRates(config.GetDB().WithContext(c.Request.Context()), rates); err != nil {
		respondBadRequest(c, err)
		return
	}
	respondOK(c, rates)
}

func GetCompanyInfo(c *gin.Context) {
	info, err := models.GetCompanyInfo(config.GetDB().WithContext(c.Request.Context()))
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, info)
}

func SetCompanyInfo(c *gin.Context) {
	var info models.CompanyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := models.SetCompanyInfo(config.GetDB().WithContext(c.Request.Context()), info); err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, info)
}

func GetPrinterSettings(c *gin.Context) {
	settings, err := models.GetPrinterSettings(config.GetDB().WithContext(c.Request.Context()))
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, settings)
}

func SetPrinterSettings(c *gin.Context) {
	var settings models.PrinterSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := models.SetPrinterSettings(config.GetDB().WithContext(c.Request.Context()), settings); err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, settings)
}

func GetSetupStatus(c *gin.Context) {
	completed, err := models.IsSetupCompleted(config.GetDB().WithContext(c.Request.Context()))
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, gin.H{"isSetupCompleted": completed})
}

func CompleteSetup(c *gin.Context) {
	if err := models.SetSetupCompleted(true); err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, gin.H{"isSetupCompleted": true})
}
