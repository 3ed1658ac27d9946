package handler

import (
	"net/http"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
)

// AssignItemRequest grants units of an item to a user
type AssignItemRequest struct {
	ItemID   int64 `json:"item_id" validate:"required,min=1"`
	Quantity int   `json:"quantity" validate:"min=1,max=10000"`
}

// AssignItemResponse reports the new total held
type AssignItemResponse struct {
	UserID int64 `json:"user_id"`
	ItemID int64 `json:"item_id"`
	Total  int   `json:"total"`
}

// ActOnItemRequest applies an action to held units
type ActOnItemRequest struct {
	// One of consume, delete, equip or unequip. By default a delete reverses the
	// equip bonus only when it removes the last unit of an equipped entry; with
	// FORCE_UNEQUIP_ON_DELETE=true every delete reverses the item bonus and
	// clears the equipped flag.
	Action   string `json:"action" validate:"required,action" enums:"consume,delete,equip,unequip"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// InventoryResponse lists what a user holds
type InventoryResponse struct {
	UserID int64                  `json:"user_id"`
	Items  []domain.InventorySlot `json:"items"`
}

// HandleAssignItem grants items to a user
// @Summary Assign item
// @Description Adds units of an item to a user's inventory. Admin only; stats are not touched.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User id"
// @Param request body AssignItemRequest true "Item and quantity"
// @Success 200 {object} AssignItemResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/inventory [post]
func HandleAssignItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireCaller(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, PathParamUserID)
		if !ok {
			return
		}

		var req AssignItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAssignItem); err != nil {
			return
		}

		total, err := svc.AssignItem(r.Context(), caller, userID, req.ItemID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, OpAssignItem, err)
			return
		}
		respondJSON(w, http.StatusOK, AssignItemResponse{UserID: userID, ItemID: req.ItemID, Total: total})
	}
}

// HandleActOnItem consumes, equips, unequips or deletes held items
// @Summary Act on item
// @Description Applies an action to held units; the ledger and stat changes commit together.
// @Description Delete behavior for equipped items depends on FORCE_UNEQUIP_ON_DELETE, see ActOnItemRequest.action.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User id"
// @Param itemID path int true "Item id"
// @Param request body ActOnItemRequest true "Action"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users/{userID}/inventory/{itemID}/actions [post]
func HandleActOnItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireCaller(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, PathParamUserID)
		if !ok {
			return
		}
		itemID, ok := pathID(w, r, PathParamItemID)
		if !ok {
			return
		}

		var req ActOnItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpActOnItem); err != nil {
			return
		}
		action, err := domain.ParseAction(req.Action)
		if err != nil {
			respondServiceError(w, r, OpActOnItem, err)
			return
		}

		result, err := svc.ActOnItem(r.Context(), caller, userID, itemID, req.Quantity, action)
		if err != nil {
			respondServiceError(w, r, OpActOnItem, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Item action via API", "user_id", userID, "item_id", itemID, "action", action)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetInventory lists a user's inventory
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User id"
// @Success 200 {object} InventoryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireCaller(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, PathParamUserID)
		if !ok {
			return
		}

		slots, err := svc.GetUserInventory(r.Context(), caller, userID)
		if err != nil {
			respondServiceError(w, r, OpGetInventory, err)
			return
		}
		if slots == nil {
			slots = []domain.InventorySlot{}
		}
		respondJSON(w, http.StatusOK, InventoryResponse{UserID: userID, Items: slots})
	}
}
