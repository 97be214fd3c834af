package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tokoku/store-api/internal/api/metrics"
	"github.com/tokoku/store-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for the item catalog.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List returns the full catalog. Public, no authentication required.
//
// @Summary      List catalog items
// @Tags         items
// @Produce      json
// @Success      200  {object}  listItemsResponse
// @Failure      500  {object}  map[string]string
// @Router       /items [get]
func (h *CatalogHandler) List(c echo.Context) error {
	items, err := h.catalog.ListItems(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listItemsResponse{Items: make([]itemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, itemResponse{ID: item.ID, Name: item.Name, Price: item.Price})
	}
	return c.JSON(http.StatusOK, resp)
}

// Add creates a catalog item. Admin only.
//
// @Summary      Add a catalog item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addItemRequest  true  "Item name and price"
// @Success      201   {object}  addItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /items/add [post]
func (h *CatalogHandler) Add(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and integer price are required"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.catalog.AddItem(c.Request().Context(), ports.AddItemInput{
		Name:  req.Name,
		Price: *req.Price,
	})
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, addItemResponse{
		Message: "Item created successfully",
		Item:    itemResponse{ID: created.ID, Name: created.Name, Price: created.Price},
	})
}
