package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/server/service"
	"github.com/sirupsen/logrus"
)

// auth contains all authentication handlers.
type auth struct {
	db         database.Client
	signingKey []byte
}

///// Register
////
//

// Register handler is used to register the user.
func (h *auth) Register(c echo.Context) error {
	// Filter params
	var params service.RegisterParams
	if err := c.Bind(&params); err != nil {
		logrus.Errorln("Could not get parameters:", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Could not get user's params."})
	}

	if params.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No email provided."})
	}
	if params.Username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No username provided."})
	}
	if params.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No password provided."})
	}

	service := service.NewUser(h.db, h.signingKey)
	register, err := service.Register(params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, register)
}

///// Login
////
//

// Login authenticates a user and returns a signed token.
func (h *auth) Login(c echo.Context) error {
	// Filter params
	var params service.LoginParams
	if err := c.Bind(&params); err != nil {
		logrus.Errorln("Could not get parameters:", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Could not get credentials."})
	}

	if params.Username == "" || params.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No username or password provided."})
	}

	service := service.NewUser(h.db, h.signingKey)
	login, err := service.Login(params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, login)
}
