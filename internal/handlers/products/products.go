package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/dto"
	"github.com/GlebRadaev/snackvote/internal/service/productservice"
	"github.com/GlebRadaev/snackvote/pkg/auth"
	"github.com/GlebRadaev/snackvote/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=products.go -destination=mock_products.go -package=products

type Service interface {
	Create(ctx context.Context, addedBy string, product domain.Product) (*domain.Product, error)
	List(ctx context.Context, includeInactive bool) ([]domain.Product, error)
	SetActive(ctx context.Context, productID string, active bool) error
}

type ProductHandler struct {
	productService Service
}

func New(productService Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// List godoc
//
//	@Summary		List products
//	@Description	The snack catalog. Soft deleted products are included only with all=true.
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Param			all	query		bool				false	"Include inactive products"
//	@Success		200	{array}		dto.ProductDTO		"Products"
//	@Failure		400	{object}	utils.Response		"Invalid query"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	includeInactive := false
	if raw := r.URL.Query().Get("all"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid all parameter")
			return
		}
		includeInactive = parsed
	}

	list, err := h.productService.List(r.Context(), includeInactive)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ProductDTO, len(list))
	for i, p := range list {
		response[i] = ToProductDTO(p)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Add product
//	@Description	Adds an active product to the catalog. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProductRequestDTO	true	"Product"
//	@Success		201		{object}	dto.ProductDTO				"Created product"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		403		{object}	utils.Response				"Admin only"
//	@Failure		422		{object}	utils.Response				"Invalid product"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Create(r.Context(), userID, domain.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, productservice.ErrInvalidProduct):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, ToProductDTO(*product))
}

// SetActive godoc
//
//	@Summary		Soft delete or restore product
//	@Description	Inactive products leave the catalog and the leaderboard; their votes are kept. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Param			productID	path	string					true	"Product id"
//	@Param			request		body	dto.SetActiveRequestDTO	true	"Active flag"
//	@Success		204			"Product updated"
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		403			{object}	utils.Response	"Admin only"
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{productID}/active [put]
func (h *ProductHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req dto.SetActiveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.productService.SetActive(r.Context(), chi.URLParam(r, "productID"), req.Active)
	if err != nil {
		switch {
		case errors.Is(err, productservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func ToProductDTO(p domain.Product) dto.ProductDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.ProductDTO{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Tags:      tags,
		IsActive:  p.IsActive,
		AddedBy:   p.AddedBy,
		CreatedAt: p.CreatedAt,
	}
}
