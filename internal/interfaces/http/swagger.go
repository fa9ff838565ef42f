package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// MountSwagger registra la UI de Swagger solo si el archivo de especificación
// existe. El middleware entra en pánico con un FilePath inexistente, y el spec
// se genera en el build (swag init): un despliegue sin docs debe arrancar igual,
// solo sin la UI. Devuelve true si la UI quedó montada.
func MountSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
