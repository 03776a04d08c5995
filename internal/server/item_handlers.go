package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/checklist/internal/checkerror"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/pkg/errors"
)

// item contains all checklist item handlers.
// Every operation is scoped by the (checklistId, checklistItemId) pair;
// a pair that matches no row behaves as not found, never as a hit on
// another checklist's item.
type item struct {
	db database.Client
}

// Create creates a new item under the given checklist, status defaulting to false.
func (h *item) Create(c echo.Context) error {
	checklistID, err := strconv.Atoi(c.Param("checklistId"))
	if err != nil {
		return checkerror.NotFound("Checklist not found")
	}

	var params struct {
		ItemName string `json:"itemName"`
	}
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Could not get item's params."})
	}

	item, err := h.db.CreateItem(checklistID, params.ItemName)
	if err != nil {
		if h.db.IsNotFound(err) {
			return checkerror.NotFound("Checklist not found")
		}
		return errors.Wrap(err, "could not persist item")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"checklist": item,
	})
}

// List returns all the items of the given checklist.
func (h *item) List(c echo.Context) error {
	checklistID, err := strconv.Atoi(c.Param("checklistId"))
	if err != nil {
		return checkerror.NotFound("Checklist not found")
	}

	items, err := h.db.FindItemsByChecklist(checklistID)
	if err != nil {
		return errors.Wrap(err, "could not list items")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"checklist": items,
	})
}

// Get returns the item matching the (checklistId, checklistItemId) pair.
// A pair that matches no row renders a null payload, not an error.
func (h *item) Get(c echo.Context) error {
	checklistID, itemID, err := h.params(c)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{
			"message":   "success",
			"checklist": nil,
		})
	}

	item, err := h.db.FindItem(checklistID, itemID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return c.JSON(http.StatusOK, echo.Map{
				"message":   "success",
				"checklist": nil,
			})
		}
		return errors.Wrap(err, "could not get item")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"checklist": item,
	})
}

// Toggle flips the item's completion status.
func (h *item) Toggle(c echo.Context) error {
	checklistID, itemID, err := h.params(c)
	if err != nil {
		return checkerror.NotFound("Checklist not found")
	}

	item, err := h.db.ToggleItemStatus(checklistID, itemID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return checkerror.NotFound("Checklist not found")
		}
		return errors.Wrap(err, "could not toggle item status")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"checklist": item,
	})
}

// Rename updates the item's name.
func (h *item) Rename(c echo.Context) error {
	checklistID, itemID, err := h.params(c)
	if err != nil {
		return checkerror.NotFound("Checklist not found")
	}

	var params struct {
		ItemName string `json:"itemName"`
	}
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Could not get item's params."})
	}

	item, err := h.db.RenameItem(checklistID, itemID, params.ItemName)
	if err != nil {
		if h.db.IsNotFound(err) {
			return checkerror.NotFound("Checklist not found")
		}
		return errors.Wrap(err, "could not rename item")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"checklist": item,
	})
}

// Delete deletes the item matching the (checklistId, checklistItemId) pair.
func (h *item) Delete(c echo.Context) error {
	checklistID, itemID, err := h.params(c)
	if err != nil {
		return checkerror.NotFound("Checklist not found")
	}

	item, err := h.db.DeleteItem(checklistID, itemID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return checkerror.NotFound("Checklist not found")
		}
		return errors.Wrap(err, "could not delete item")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"checklist": item,
	})
}

func (h *item) params(c echo.Context) (checklistID, itemID int, err error) {
	checklistID, err = strconv.Atoi(c.Param("checklistId"))
	if err != nil {
		return 0, 0, err
	}

	itemID, err = strconv.Atoi(c.Param("checklistItemId"))
	if err != nil {
		return 0, 0, err
	}
	return checklistID, itemID, nil
}
