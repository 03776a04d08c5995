package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/checklist/internal/checkerror"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/model"
	"github.com/pkg/errors"
)

// checklist contains all checklist handlers.
type checklist struct {
	db database.Client
}

// Create creates a new checklist.
func (h *checklist) Create(c echo.Context) error {
	var params struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Could not get checklist's params."})
	}

	checklist := &model.Checklist{
		Name: params.Name,
	}
	if err := h.db.Save(checklist); err != nil {
		return errors.Wrap(err, "could not persist checklist")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"checklist": checklist,
	})
}

// List returns all the checklists.
func (h *checklist) List(c echo.Context) error {
	checklists, err := h.db.FindChecklists()
	if err != nil {
		return errors.Wrap(err, "could not list checklists")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"checklist": checklists,
	})
}

// Delete deletes the checklist for the given id.
// Its items are kept as-is, integrity being only enforced at item creation.
func (h *checklist) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("checklistId"))
	if err != nil {
		return checkerror.NotFound("Checklist not found")
	}

	checklist, err := h.db.DeleteChecklist(id)
	if err != nil {
		if h.db.IsNotFound(err) {
			return checkerror.NotFound("Checklist not found")
		}
		return errors.Wrap(err, "could not delete checklist")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"checklist": checklist,
	})
}
