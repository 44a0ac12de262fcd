package http

import (
	"net/http"

	"warehouse/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	echoswagger "github.com/swaggo/echo-swagger"
)

// LoadOpenAPISpec parses and validates the embedded OpenAPI document.
func LoadOpenAPISpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(api.OpenAPISpec)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}

// RegisterOpenAPI serves the contract at /openapi.json, mounts the Swagger UI
// against it, and installs request validation for the documented routes.
func RegisterOpenAPI(e *echo.Echo, doc *openapi3.T) error {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return err
	}

	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoswagger.EchoWrapHandler(echoswagger.URL("/openapi.json")))
	e.Use(validateRequests(router))

	return nil
}

// validateRequests rejects requests that violate the contract before they
// reach a handler. Undocumented routes pass through untouched.
func validateRequests(router routers.Router) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return writeBadRequest(ctx, err)
			}

			return next(ctx)
		}
	}
}
