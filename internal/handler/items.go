package handler

import (
	"net/http"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
)

// CreateItemRequest defines or redefines a catalog item by name
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string `json:"description" validate:"max=1000"`
	Type        string `json:"type" validate:"required,item_type"`
	EffectType  string `json:"effect_type" validate:"effect_type"`
	EffectValue int    `json:"effect_value"`
	// InitialQuantity, when positive, overwrites the quantity of every
	// existing ledger row of this item.
	InitialQuantity int `json:"initial_quantity" validate:"min=0,max=10000"`
}

func (req CreateItemRequest) definition() (domain.ItemDefinition, error) {
	itemType, err := domain.ParseItemType(req.Type)
	if err != nil {
		return domain.ItemDefinition{}, err
	}
	effect, err := domain.ParseEffectType(req.EffectType)
	if err != nil {
		return domain.ItemDefinition{}, err
	}
	return domain.ItemDefinition{
		Name:        req.Name,
		Description: req.Description,
		Type:        itemType,
		Effect:      effect,
		EffectValue: req.EffectValue,
	}, nil
}

// HandleCreateItem handles catalog writes
// @Summary Define an item
// @Description Upserts an item by name. Admin only.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item definition"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/items [post]
func HandleCreateItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireCaller(w, r)
		if !ok {
			return
		}

		var req CreateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpCreateItem); err != nil {
			return
		}
		def, err := req.definition()
		if err != nil {
			respondServiceError(w, r, OpCreateItem, err)
			return
		}

		item, err := svc.CreateItem(r.Context(), caller, def, req.InitialQuantity)
		if err != nil {
			respondServiceError(w, r, OpCreateItem, err)
			return
		}

		logger.FromContext(r.Context()).Info("Item defined via API", "item_id", item.ID, "name", item.Name)
		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleListItems returns the catalog
// @Summary List items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Item
// @Router /api/v1/items [get]
func HandleListItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListItems, err)
			return
		}
		if items == nil {
			items = []domain.Item{}
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetItem returns one catalog item
// @Summary Get item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param itemID path int true "Item id"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemID} [get]
func HandleGetItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := pathID(w, r, PathParamItemID)
		if !ok {
			return
		}
		item, err := svc.GetItem(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, OpGetItem, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}
