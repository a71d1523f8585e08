package http

import (
	"github.com/rajeshk/portfolio/services/portfolio"
)

// PortfolioHandler handles the portfolio content endpoints
type PortfolioHandler struct {
	portfolioUC portfolio.PortfolioUC
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(portfolioUC portfolio.PortfolioUC) *PortfolioHandler {
	return &PortfolioHandler{portfolioUC: portfolioUC}
}
