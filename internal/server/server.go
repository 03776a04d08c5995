package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/server/middlewares"
)

// An IOC is an Inversion Of Control pattern used to init the server package.
type IOC struct {
	Version        string
	Database       database.Client
	NoRegistration bool
	// JWT params
	SigningKey []byte
}

// EchoEngine instantiates the wep server.
func EchoEngine(ctrl IOC) *echo.Echo {
	engine := echo.New()
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler

	engine.Pre(middleware.Rewrite(map[string]string{
		"/": "/version",
	}))

	////////////
	// Router //
	////////////

	router := engine.Group("")
	restricted := router.Group("")
	restricted.Use(middlewares.Authenticate(ctrl.SigningKey))

	// generic handlers
	//
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// auth handlers
	//
	auth := &auth{
		db:         ctrl.Database,
		signingKey: ctrl.SigningKey,
	}
	if !ctrl.NoRegistration {
		router.POST("/register", auth.Register)
	}
	router.POST("/login", auth.Login)

	//
	// checklist handlers
	//
	checklist := &checklist{
		db: ctrl.Database,
	}
	restricted.POST("/checklist", checklist.Create)
	restricted.GET("/checklist", checklist.List)
	restricted.DELETE("/checklist/:checklistId", checklist.Delete)

	//
	// item handlers
	//
	item := &item{
		db: ctrl.Database,
	}
	restricted.POST("/checklist/:checklistId/item", item.Create)
	restricted.GET("/checklist/:checklistId/item", item.List)
	restricted.GET("/checklist/:checklistId/item/:checklistItemId", item.Get)
	restricted.PUT("/checklist/:checklistId/item/:checklistItemId", item.Toggle)
	restricted.DELETE("/checklist/:checklistId/item/:checklistItemId", item.Delete)
	restricted.PUT("/checklist/:checklistId/item/rename/:checklistItemId", item.Rename)

	return engine
}

// PrintRoutes prints the Echo engin exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}
